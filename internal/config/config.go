package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mestakip/tiretrack/pkg/database"
	"github.com/mestakip/tiretrack/pkg/logger"
)

// Config holds all service configuration, loaded from the environment
type Config struct {
	ServiceName  string
	Environment  string
	LogLevel     string
	HTTPPort     string
	Database     database.Config
	RedisAddr    string
	RedisPass    string
	KafkaBrokers []string
}

// Load reads configuration from a .env file (if present) and the environment
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Logger.Debug().Msg("No .env file found, using environment")
	}

	return Config{
		ServiceName: getEnv("SERVICE_NAME", "tiretrack"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "tiretrack"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
	}
}

// IsDevelopment reports whether the service runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
