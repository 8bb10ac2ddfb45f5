package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all server configuration, sourced from the environment with
// an optional .env file.
type Config struct {
	Port    string
	DataDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheTTL        time.Duration
	RateLimitPerMin int
}

// Load reads configuration from a .env file (if present) and the
// environment. Every field has a working default; nothing here is required.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	return Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		DataDir:         getEnvOrDefault("DATA_DIR", "./data"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvIntOrDefault("REDIS_DB", 0),
		CacheTTL:        getEnvDurationOrDefault("CACHE_TTL", 15*time.Minute),
		RateLimitPerMin: getEnvIntOrDefault("RATE_LIMIT_PER_MIN", 30),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return parsed
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return parsed
}
