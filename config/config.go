package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all process configuration. It is parsed once at startup and
// injected into the modules that need it.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":3000"`
	// DBPath is the path to the SQLite database file.
	DBPath string `env:"USERS_DB_PATH" envDefault:"users.db"`
	// JWTSecret signs and verifies access tokens.
	// In production this must be set via the environment.
	JWTSecret string `env:"JWT_SECRET_KEY" envDefault:"your-secret-key-change-in-production"`
	// JWTIssuer is the issuer claim stamped on every token.
	JWTIssuer string `env:"JWT_ISSUER" envDefault:"user-account-service"`
	// AccessTokenTTL is how long an issued token stays valid.
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
