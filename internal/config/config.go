package config

import (
	"os"
	"strconv"
	"time"

	"govariate/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig `validate:"required"`
	Draw     DrawConfig   `validate:"required"`
}

// DatabaseConfig holds database connection settings. URL may be empty, in
// which case the API falls back to the in-memory run ledger.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string `validate:"required"`
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DrawConfig bounds draw execution
type DrawConfig struct {
	MaxCount     int
	DefaultCount int
	BatchWorkers int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: loadDatabaseConfig(),
		Server:   loadServerConfig(),
		Draw:     loadDrawConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL: getEnvOrDefault("DATABASE_URL", ""),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		ReadTimeout:     getEnvDurationOrDefault("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDurationOrDefault("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadDrawConfig() DrawConfig {
	return DrawConfig{
		MaxCount:     getEnvIntOrDefault("DRAW_MAX_COUNT", 1_000_000),
		DefaultCount: getEnvIntOrDefault("DRAW_DEFAULT_COUNT", 1000),
		BatchWorkers: getEnvIntOrDefault("DRAW_BATCH_WORKERS", 4),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Draw.MaxCount <= 0 {
		return errors.ConfigInvalid("DRAW_MAX_COUNT must be positive")
	}
	if config.Draw.DefaultCount <= 0 {
		return errors.ConfigInvalid("DRAW_DEFAULT_COUNT must be positive")
	}
	if config.Draw.DefaultCount > config.Draw.MaxCount {
		return errors.ConfigInvalid("DRAW_DEFAULT_COUNT cannot exceed DRAW_MAX_COUNT")
	}
	if config.Draw.BatchWorkers <= 0 {
		return errors.ConfigInvalid("DRAW_BATCH_WORKERS must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
