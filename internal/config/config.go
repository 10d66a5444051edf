// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Backend names for the persistence adapter.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	// Persistence
	Backend      string
	DataDir      string
	SQLiteDBPath string

	// Store
	WriteTimeout time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Backend:      getEnv("SPENDLOG_BACKEND", BackendFile),
		DataDir:      getEnv("SPENDLOG_DATA_DIR", "./data"),
		SQLiteDBPath: getEnv("SPENDLOG_SQLITE_PATH", "./data/spendlog.db"),
		WriteTimeout: getEnvDuration("SPENDLOG_WRITE_TIMEOUT", 10*time.Second),
		LogLevel:     getEnv("SPENDLOG_LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	switch c.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		errs = append(errs, fmt.Sprintf("invalid backend '%s': must be one of %s, %s, %s",
			c.Backend, BackendMemory, BackendFile, BackendSQLite))
	}

	if c.Backend == BackendFile && c.DataDir == "" {
		errs = append(errs, "data directory cannot be empty when using the file backend")
	}

	if c.Backend == BackendSQLite {
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using the sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.WriteTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid write timeout %v: must be at least 1 second", c.WriteTimeout))
	} else if c.WriteTimeout > time.Hour {
		errs = append(errs, fmt.Sprintf("invalid write timeout %v: must be at most 1 hour", c.WriteTimeout))
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
