package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	TokenSecret  string
	ServerPort   string
	Environment  string
	TokenExpiry  time.Duration
	AuditLogPath string
}

func Load() *Config {
	// Try to load .env file, but don't fail if it doesn't exist
	// (containers use environment variables directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		TokenSecret:  os.Getenv("TOKEN_SECRET"),
		ServerPort:   getEnv("SERVER_PORT", ":4000"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		TokenExpiry:  getEnvAsDuration("TOKEN_EXPIRY", "2h"),
		AuditLogPath: getEnv("AUDIT_LOG_PATH", "data/audit.log"),
	}

	// Running without these would mean unsigned tokens or no storage;
	// refuse to start instead of limping along.
	if cfg.DatabaseURL == "" {
		log.Fatal("Missing required environment variable DATABASE_URL")
	}
	if cfg.TokenSecret == "" {
		log.Fatal("Missing required environment variable TOKEN_SECRET")
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves environment variable with default value
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvAsDuration retrieves environment variable as duration with default value
func getEnvAsDuration(key string, defaultVal string) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		valStr = defaultVal
	}
	duration, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %s", key, defaultVal)
		duration, _ = time.ParseDuration(defaultVal)
	}
	return duration
}
