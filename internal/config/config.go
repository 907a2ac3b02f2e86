package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config is built once in main and passed by reference; nothing reads
// the environment after startup.
type Config struct {
	ListenAddr     string
	DatabaseURL    string
	JWTSecret      string
	JWTIssuer      string
	JWTAudience    string
	TokenTTL       time.Duration
	AllowedOrigins []string
	LogLevel       string
}

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  ":" + getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "quotely"),
		JWTAudience: getEnv("JWT_AUDIENCE", "quotely-clients"),
		TokenTTL:    time.Hour * 168,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	// The browser extension posts from arbitrary page origins, so the
	// default mirrors the original deployment's wide-open policy.
	cfg.AllowedOrigins = []string{"*"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
