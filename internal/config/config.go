package config

import (
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Postgres connection string. Empty means the API falls back to the
	// in-memory appointment store.
	DatabaseURL string

	// Admin access gate credentials and token signing secret.
	AdminUsername  string
	AdminPassword  string
	AdminJWTSecret string

	CORSAllowedOrigins []string

	// SendGrid Email Configuration. An empty API key degrades outbound
	// email to a logged no-op.
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// ContactEmail is surfaced in customer-facing email bodies.
	ContactEmail string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		AdminUsername:  getEnv("ADMIN_USERNAME", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "noreply@summitit.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Summit IT Services"),

		ContactEmail: getEnv("CONTACT_EMAIL", "support@summitit.com"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable as a slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
