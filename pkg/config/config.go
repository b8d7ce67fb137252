package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the gateway
type Config struct {
	// Server
	Port        string
	Environment string

	// Public base URL used to build payment return URLs
	PublicBaseURL string

	// Upstream bakery REST API
	UpstreamAPIURL  string
	UpstreamTimeout time.Duration

	// Payment gateway
	PaymentAPIURL string

	// Session
	SessionSecret string

	// Database (pending-order store)
	DatabaseURL string

	// Allowed Origins
	AllowedOrigins string

	// Search rate limiting
	SearchRatePerSecond float64
	SearchBurst         int
}

var AppConfig *Config

// LoadConfig loads environment variables into Config struct
func LoadConfig() {
	// Load .env file if it exists (optional in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:                getEnv("PORT", "5500"),
		Environment:         getEnv("APP_ENV", "development"),
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:5500"),
		UpstreamAPIURL:      getEnv("UPSTREAM_API_URL", ""),
		UpstreamTimeout:     getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second),
		PaymentAPIURL:       getEnv("PAYMENT_API_URL", ""),
		SessionSecret:       getEnv("SESSION_SECRET", ""),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		AllowedOrigins:      getEnv("ALLOWED_ORIGINS", ""),
		SearchRatePerSecond: getEnvFloat("SEARCH_RATE_PER_SECOND", 4),
		SearchBurst:         getEnvInt("SEARCH_BURST", 8),
	}

	// Validate required config
	if AppConfig.UpstreamAPIURL == "" {
		log.Fatal("UPSTREAM_API_URL is required")
	}
	if AppConfig.PaymentAPIURL == "" {
		log.Fatal("PAYMENT_API_URL is required")
	}
	if AppConfig.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required")
	}
	if AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Println("✅ Configuration loaded successfully")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid %s, using default %v", key, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid %s, using default %v", key, defaultValue)
	}
	return defaultValue
}

// IsProduction returns true if running in production mode
func IsProduction() bool {
	return AppConfig.Environment == "production"
}

// IsDevelopment returns true if running in development mode
func IsDevelopment() bool {
	return AppConfig.Environment == "development" || AppConfig.Environment == ""
}
