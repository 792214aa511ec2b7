package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Addr      string
	DBDriver  string
	DBDSN     string
	SecretKey string
}

// Load reads configuration from a .env file (if present) and the process
// environment. SECRET_KEY has no fallback on purpose: sessions signed with
// a well-known default key are forgeable.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		Addr:      getEnv("ADDR", ":8080"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:     getEnv("DB_DSN", "newel.db"),
		SecretKey: os.Getenv("SECRET_KEY"),
	}

	if cfg.SecretKey == "" {
		return Config{}, errors.New("SECRET_KEY is not set")
	}
	if cfg.DBDriver != "sqlite3" && cfg.DBDriver != "postgres" {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
