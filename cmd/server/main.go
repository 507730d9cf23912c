package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/persona"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Portfolio Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Optional PostgreSQL (enquiry persistence) ────
	var enquiryRepo *repository.EnquiryRepo
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()

		enquiryRepo = repository.NewEnquiryRepo(pool)
		if err := enquiryRepo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("✗ Database schema setup failed: %v", err)
		}
		log.Println("✓ PostgreSQL connected, enquiries will be persisted")
	} else {
		log.Println("⚠ DATABASE_URL not set, enquiries will not be persisted")
	}

	// ──── Step 3: Optional Redis (shared rate limiting) ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		var err error
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		log.Println("✓ Redis connected, rate limits are shared")
	}

	// ──── Step 4: Initialize Assistant ────
	apiKey := ""
	if cfg.GeminiConfigured() {
		apiKey = cfg.GeminiAPIKey
	}
	assistant, err := services.NewAssistantService(apiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer assistant.Close()
	if assistant.Enabled() {
		log.Printf("✓ Gemini assistant initialized (%s)", cfg.GeminiModel)
	} else {
		log.Println("⚠ GEMINI_API_KEY not configured, assistant will answer with its fallback reply")
	}

	// ──── Step 5: Initialize Services ────
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.ContactTo)
	resumeService := services.NewResumeService(cfg.ResumePath)

	// ──── Step 6: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(assistant)
	profileHandler := handlers.NewProfileHandler(persona.Default())
	resumeHandler := handlers.NewResumeHandler(resumeService)

	var contactHandler *handlers.ContactHandler
	if enquiryRepo != nil {
		contactHandler = handlers.NewContactHandler(emailService, enquiryRepo)
	} else {
		contactHandler = handlers.NewContactHandler(emailService, nil)
	}

	var jwtAuth *middleware.JWTAuth
	var adminHandler *handlers.AdminHandler
	if cfg.AdminEnabled() {
		jwtAuth = middleware.NewJWTAuth(cfg.JWTSecret)
		if enquiryRepo != nil {
			adminHandler = handlers.NewAdminHandler(jwtAuth, enquiryRepo, cfg.AdminPasswordHash)
		} else {
			adminHandler = handlers.NewAdminHandler(jwtAuth, nil, cfg.AdminPasswordHash)
		}
		log.Println("✓ Admin surface enabled")
	}

	// ──── Step 7: Start HTTP Server ────
	r := router.New(router.Options{
		FrontendURL:      cfg.FrontendURL,
		ChatRateLimit:    cfg.ChatRateLimit,
		ContactRateLimit: cfg.ContactRateLimit,
		Redis:            redisClient,
		Chat:             chatHandler,
		Contact:          contactHandler,
		Profile:          profileHandler,
		Resume:           resumeHandler,
		JWTAuth:          jwtAuth,
		Admin:            adminHandler,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Portfolio Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
