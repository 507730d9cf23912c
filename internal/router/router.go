package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
)

type Options struct {
	FrontendURL      string
	ChatRateLimit    int
	ContactRateLimit int
	Redis            *redis.Client // nil: per-instance rate limiting

	Chat    *handlers.ChatHandler
	Contact *handlers.ContactHandler
	Profile *handlers.ProfileHandler
	Resume  *handlers.ResumeHandler

	// Admin surface; both nil when disabled.
	JWTAuth *middleware.JWTAuth
	Admin   *handlers.AdminHandler
}

func New(opts Options) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(opts.FrontendURL))

	chatLimiter := middleware.NewRateLimiter("chat", opts.ChatRateLimit, time.Minute, opts.Redis)
	contactLimiter := middleware.NewRateLimiter("contact", opts.ContactRateLimit, time.Minute, opts.Redis)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Assistant ────
		r.Group(func(r chi.Router) {
			r.Use(chatLimiter.Middleware)
			r.Post("/chat", opts.Chat.Ask)
		})

		// ──── Contact relay ────
		r.Group(func(r chi.Router) {
			r.Use(contactLimiter.Middleware)
			r.Post("/contact", opts.Contact.Submit)
		})

		// ──── Public site data ────
		r.Get("/profile", opts.Profile.Get)
		r.Get("/resume", opts.Resume.Download)
		r.Get("/resume/status", opts.Resume.Status)

		// ──── Admin ────
		if opts.Admin != nil && opts.JWTAuth != nil {
			r.Route("/admin", func(r chi.Router) {
				r.Post("/login", opts.Admin.Login)

				r.Group(func(r chi.Router) {
					r.Use(opts.JWTAuth.Middleware)
					r.Get("/enquiries", opts.Admin.ListEnquiries)
				})
			})
		}
	})

	return r
}
