// Package config loads application configuration from environment
// variables with development defaults.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values
type Config struct {
	Host      string
	Port      string
	Env       string // "development" or "production"
	DBPath    string // BadgerDB data directory
	JWTSecret string
}

// Load reads configuration from environment variables. The JWT secret
// must be set explicitly in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host:      envOrDefault("APP_HOST", "0.0.0.0"),
		Port:      envOrDefault("APP_PORT", "8080"),
		Env:       envOrDefault("APP_ENV", "development"),
		DBPath:    envOrDefault("DB_PATH", "data/badger"),
		JWTSecret: envOrDefault("JWT_SECRET", "dev-secret"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port)
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true in development mode
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
