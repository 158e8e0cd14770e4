// Package config loads runtime settings from the process environment once at
// startup. Missing required values are a deployment error, reported before
// the server binds.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds every runtime setting for the backend.
//
// Fields:
//   - Port: HTTP listen port (PORT, default 8080).
//   - DatabaseURL: Postgres DSN (DATABASE_URL, required).
//   - JWTSecret: HMAC secret for signing bearer tokens (JWT_SECRET, required).
//   - TokenTTL: bearer token validity (TOKEN_TTL, default 1h).
//   - CORSOrigin: allowed CORS origin (CORS_ORIGIN, default *).
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigin  string
}

// FromEnv builds a Config from the environment. It fails when DATABASE_URL or
// JWT_SECRET is absent so the secret can never silently fall back to a
// compiled-in value.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:       "8080",
		TokenTTL:   time.Hour,
		CORSOrigin: "*",
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	if v := strings.TrimSpace(os.Getenv("TOKEN_TTL")); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TOKEN_TTL is invalid: %w", err)
		}
		cfg.TokenTTL = ttl
	}

	if v := strings.TrimSpace(os.Getenv("CORS_ORIGIN")); v != "" {
		cfg.CORSOrigin = v
	}

	return cfg, nil
}
