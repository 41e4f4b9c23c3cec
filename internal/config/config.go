// Package config contains everything related to configuration
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	UsageSource   string
	FxSource      string
	LogLevel      string
	LogFile       string
	FetchTimeout  time.Duration
	NotifyOnError bool
	WatchFiles    bool
}

// Default values
const (
	defaultUsageSource  = "data/usage_daily.json"
	defaultFxSource     = "data/fx.json"
	defaultFetchTimeout = 30 * time.Second
	defaultLogLevel     = "info"
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// The first .env found wins; real environment variables still take precedence.
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		UsageSource:   getEnvString("USAGE_SOURCE", defaultUsageSource),
		FxSource:      getEnvString("FX_SOURCE", defaultFxSource),
		FetchTimeout:  getEnvDuration("FETCH_TIMEOUT", defaultFetchTimeout),
		NotifyOnError: getEnvBool("NOTIFY_ON_ERROR", false),
		WatchFiles:    getEnvBool("WATCH_FILES", false),
		LogLevel:      getEnvString("LOG_LEVEL", defaultLogLevel),
		LogFile:       getEnvString("LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		if err := ensureDir(filepath.Dir(cfg.LogFile)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks that both document sources are set and the timeout is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.UsageSource) == "" {
		return errors.New("USAGE_SOURCE must not be empty")
	}
	if strings.TrimSpace(c.FxSource) == "" {
		return errors.New("FX_SOURCE must not be empty")
	}
	if c.FetchTimeout < 0 {
		return errors.New("FETCH_TIMEOUT must not be negative")
	}
	return nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "costboard", ".env"))
	}

	// Parent directories (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		parent := filepath.Dir(cwd)
		paths = append(paths, filepath.Join(parent, ".env"))
		grandparent := filepath.Dir(parent)
		paths = append(paths, filepath.Join(grandparent, ".env"))
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
// Accepts anything strconv.ParseBool does, plus "yes"/"no" and "on"/"off".
func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "":
		return defaultValue
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
