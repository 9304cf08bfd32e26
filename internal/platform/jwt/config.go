package jwtmw

import (
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"

	// DefaultExpiration is the lifetime of an issued session token.
	DefaultExpiration = 30 * 24 * time.Hour
)

// Config holds the token signing configuration.
type Config struct {
	Secret     string
	Expiration time.Duration
}

// LoadConfig reads the token configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Secret:     os.Getenv(EnvKeyJWTSecret),
		Expiration: DefaultExpiration,
	}
}
