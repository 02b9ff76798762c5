package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a variable from the environment, loading .env once on first use.
func Config(key string) string {
	loadEnv.Do(func() {
		godotenv.Load(".env")
	})
	return os.Getenv(key)
}

// ConfigDefault returns the fallback when the variable is unset or empty.
func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
