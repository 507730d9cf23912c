package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// PlaceholderGeminiKey is what a freshly copied .env ships with. It counts
// as "not configured" so the assistant degrades to its canned reply instead
// of failing every request upstream.
const PlaceholderGeminiKey = "your_gemini_api_key_here"

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI (optional: missing key disables the assistant, not the server)
	GeminiAPIKey string
	GeminiModel  string

	// SMTP contact relay
	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	SMTPFrom  string
	ContactTo string

	// Optional persistence
	DatabaseURL string
	RedisURL    string

	// Admin surface (enabled only when both are set)
	JWTSecret         string
	AdminPasswordHash string

	// Static assets
	ResumePath string

	// Rate limits (requests per minute per IP)
	ChatRateLimit    int
	ContactRateLimit int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		Env:               getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:      getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		SMTPHost:          getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:          getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:          getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:          getEnvOrDefault("SMTP_PASS", ""),
		SMTPFrom:          getEnvOrDefault("SMTP_FROM", "Portfolio Contact <noreply@localhost>"),
		ContactTo:         getEnvOrDefault("CONTACT_TO", "hrushi.2501@gmail.com"),
		DatabaseURL:       getEnvOrDefault("DATABASE_URL", ""),
		RedisURL:          getEnvOrDefault("REDIS_URL", ""),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", ""),
		AdminPasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),
		ResumePath:        getEnvOrDefault("RESUME_PATH", "./assets/resume.pdf"),
		ChatRateLimit:     getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 20),
		ContactRateLimit:  getEnvAsIntOrDefault("CONTACT_RATE_LIMIT", 5),
		FrontendURL:       getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

// GeminiConfigured reports whether a usable upstream credential is present.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != "" && c.GeminiAPIKey != PlaceholderGeminiKey
}

// AdminEnabled reports whether the admin surface can be mounted.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
