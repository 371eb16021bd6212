// Package config loads process configuration exactly once, at startup.
//
// Nothing else in the codebase reads environment variables. main.go calls
// Load(), and the resulting Config is passed by reference down the dependency
// graph — handlers and services receive the values they need through their
// constructors, never through ambient lookups. This keeps every component
// testable with a plain struct literal.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort        = 8080
	DefaultDatabaseURL = "data/blog.db"
	DefaultTokenTTL    = 24 * time.Hour
)

// Config holds everything the server needs to run.
type Config struct {
	Port        int           // PORT — HTTP listen port
	DatabaseURL string        // DATABASE_URL — SQLite path (":memory:" works for tests)
	JWTSecret   string        // JWT_SECRET — HMAC key for session tokens (required)
	TokenTTL    time.Duration // TOKEN_TTL — session token lifetime
}

// Load reads the environment and returns a validated Config.
//
// JWT_SECRET is mandatory: a blogging API without a signing key cannot issue
// or verify sessions, so we fail fast here rather than at the first signup.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        DefaultPort,
		DatabaseURL: DefaultDatabaseURL,
		TokenTTL:    DefaultTokenTTL,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("config: invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET must be set")
	}

	if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("config: invalid TOKEN_TTL %q: %w", ttlStr, err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("config: TOKEN_TTL must be positive, got %s", ttl)
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}
