package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Media storage root; uploads live under resumes/, photos/, logos/ and tmp/
	MediaRoot string
	// Frontend origins allowed to call the API with credentials
	AllowedOrigins []string
	FrontendURL    string
	// Session Configuration
	CookieSecure bool
	SessionTTL   time.Duration
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Payment Processor Configuration
	PaymentAPIURL    string
	PaymentSecretKey string
	// Admin / Staff Configuration
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	frontend := strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/")

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		MediaRoot:      getEnv("MEDIA_ROOT", "./media"),
		FrontendURL:    frontend,
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", frontend)),
		// Session Configuration
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
		SessionTTL:   time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Payment Processor Configuration
		PaymentAPIURL:    getEnv("PAYMENT_API_URL", ""),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		// Admin / Staff Configuration
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Sessions and rate limiting will use in-memory fallback.")
	}
	if cfg.PaymentAPIURL == "" || cfg.PaymentSecretKey == "" {
		log.Println("WARNING: payment processor not configured. Checkout will be unavailable.")
	}

	return cfg, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
