package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server configuration loaded from the environment
type Config struct {
	// Port is the HTTP listen port
	Port int
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string
	// RedisURL is the Redis connection URL (required when StorageType is "redis")
	RedisURL string
	// SessionDuration is how long agent login sessions stay valid
	SessionDuration time.Duration
}

// Default configuration values
const (
	DefaultPort            = 8080
	DefaultStorageType     = "memory"
	DefaultSessionDuration = 24 * time.Hour
)

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:            DefaultPort,
		StorageType:     DefaultStorageType,
		SessionDuration: DefaultSessionDuration,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.StorageType = v
	}

	cfg.RedisURL = os.Getenv("REDIS_URL")
	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
	}

	if v := os.Getenv("SESSION_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_DURATION %q: %w", v, err)
		}
		cfg.SessionDuration = d
	}

	return cfg, nil
}
