// Package config loads tool configuration from the environment, with an
// optional .env file for local use.
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven defaults for a conversion run.
// Command-line flags override these.
type Config struct {
	// Workers is the mapping goroutine count. 1 maps sequentially; 0
	// means one per CPU.
	Workers int
	// LogLevel is the zap level name (debug, info, warn, error).
	LogLevel string
	// Sheet is the default worksheet name. Empty means the first sheet.
	Sheet string
}

// Load reads configuration from CLIENTFEED_* environment variables. A
// .env file in the working directory is honored when present.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		Workers:  getEnvAsInt("CLIENTFEED_WORKERS", 1),
		LogLevel: getEnv("CLIENTFEED_LOG_LEVEL", "info"),
		Sheet:    getEnv("CLIENTFEED_SHEET", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.New("worker count cannot be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
