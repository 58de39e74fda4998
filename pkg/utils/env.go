package utils

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rs/zerolog/log"
)

// LoadEnv loads variables from a .env file if one is present. Missing files
// are fine; real deployments configure the environment directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}
}

// Getenv retrieves the value of the environment variable named by the key.
// If the variable is not present or its value is empty, Getenv returns the fallback string.
func Getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}
