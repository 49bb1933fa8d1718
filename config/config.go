package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is built once at startup
// and passed explicitly into constructors; nothing reads the
// environment after Load returns.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Port        string
	CORSOrigins string

	// RejectInactiveUsers makes the auth middleware refuse tokens for
	// deactivated accounts. Off by default.
	RejectInactiveUsers bool
}

const defaultTokenExpireMinutes = 60 * 24 * 8 // 8 days

func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        envOr("PORT", "3000"),
		CORSOrigins: os.Getenv("BACKEND_CORS_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	minutes, err := strconv.Atoi(envOr("ACCESS_TOKEN_EXPIRE_MINUTES", strconv.Itoa(defaultTokenExpireMinutes)))
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %q", os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"))
	}
	cfg.TokenTTL = time.Duration(minutes) * time.Minute

	cfg.RejectInactiveUsers, _ = strconv.ParseBool(envOr("REJECT_INACTIVE_USERS", "false"))

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
