// Package config provides environment-driven configuration for graphqd.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	DatabaseURL  Secret
	Port         string
	ListenHost   string
	MetricsPort  string
	CORSOrigins  []string
	LogLevel     string
	MaxMaxDepth  int
	MaxLimit     int
	QueryTimeout int // seconds
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: Secret(envOrDefault("DATABASE_URL", "")),
		Port:        envOrDefault("PORT", "8080"),
		ListenHost:  envOrDefault("LISTEN_HOST", "127.0.0.1"),
		MetricsPort: envOrDefault("METRICS_PORT", "9090"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
	}

	maxMaxDepth, err := strconv.Atoi(envOrDefault("MAX_MAX_DEPTH", "20"))
	if err != nil || maxMaxDepth < 1 {
		return nil, fmt.Errorf("MAX_MAX_DEPTH must be a positive integer")
	}
	cfg.MaxMaxDepth = maxMaxDepth

	maxLimit, err := strconv.Atoi(envOrDefault("MAX_LIMIT", "1000"))
	if err != nil || maxLimit < 1 {
		return nil, fmt.Errorf("MAX_LIMIT must be a positive integer")
	}
	cfg.MaxLimit = maxLimit

	queryTimeout, err := strconv.Atoi(envOrDefault("QUERY_TIMEOUT_SECONDS", "30"))
	if err != nil || queryTimeout < 1 {
		return nil, fmt.Errorf("QUERY_TIMEOUT_SECONDS must be a positive integer")
	}
	cfg.QueryTimeout = queryTimeout

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
