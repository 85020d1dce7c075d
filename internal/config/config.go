package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backend selectors.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	Storage     string // "redis" or "memory"
	RedisURL    string
	DataDir     string // Directory scanned for adventure data files
	EndMode     string // "halt" or "continue" after victory/game over
}

// Load reads configuration from the environment, with a .env file as a
// convenience for development. Missing keys fall back to defaults.
func Load() *Config {
	// Ignore a missing .env file; real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Storage:     strings.ToLower(getEnv("STORAGE", StorageMemory)),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		EndMode:     strings.ToLower(getEnv("END_MODE", "halt")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
