package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config is the process-wide configuration, read once from the environment.
type Config struct {
	MongoURI    string
	MongoDB     string
	TokenSecret []byte
	TokenTTL    time.Duration
	Port        string
	CORSOrigins []string
	LogLevel    string
	Env         string // dev|prod
	SentryDSN   string
	Release     string
}

// Load reads the environment; MONGO_URI and ACCESS_TOKEN_SECRET are required.
func Load() (*Config, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is not set")
	}

	ttl, err := time.ParseDuration(getenv("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	return &Config{
		MongoURI:    uri,
		MongoDB:     getenv("MONGO_DB", "learnverseDB"),
		TokenSecret: []byte(secret),
		TokenTTL:    ttl,
		Port:        getenv("PORT", "5000"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Env:         getenv("ENV", "dev"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
		Release:     os.Getenv("RELEASE"),
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) == 0 {
		return []string{"*"}
	}
	return parts
}
