package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	Env    string // "local" or "production"
	JWTKey string

	// Only accounts from this email domain may hold a session
	AllowedEmailDomain string

	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string

	AnalyticsURL string // empty disables event tracking

	SendgridApiKey string
	EmailSender    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	env := getEnv("ENV", "local")

	// The OAuth callback host follows the runtime environment unless pinned
	defaultRedirect := "http://localhost:3000/auth/google/callback"
	if env == "production" {
		defaultRedirect = "https://api.mcitcentral.com/auth/google/callback"
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		Env:    env,
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		AllowedEmailDomain: getEnv("ALLOWED_EMAIL_DOMAIN", "seas.upenn.edu"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectURL:   getEnv("OAUTH_REDIRECT_URL", defaultRedirect),

		AnalyticsURL: getEnv("ANALYTICS_URL", ""),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@mcitcentral.com"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID is not set. OAuth login will not work.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
