package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	LogLevel       string
	ListenAddr     string
	StorageBackend string
	SQLitePath     string
	PostgresDSN    string
	SessionSecret  string
	SessionTTL     time.Duration
	TemplatesGlob  string
}

const minSessionSecretBytes = 32

// Load reads configuration from the environment, with .env support for
// local development. SESSION_SECRET has no default on purpose.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttlHours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		return nil, errors.New("SESSION_TTL_HOURS must be a positive integer")
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", "sqlite"),
		SQLitePath:     getEnv("SQLITE_PATH", "data/sleeplog.db"),
		PostgresDSN:    getEnv("POSTGRES_DSN", ""),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionTTL:     time.Duration(ttlHours) * time.Hour,
		TemplatesGlob:  getEnv("TEMPLATES_GLOB", "web/templates/*.html"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.SessionSecret) < minSessionSecretBytes {
		return errors.New("SESSION_SECRET is required and must be at least 32 bytes")
	}
	switch c.StorageBackend {
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
