package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of the environment variable or the fallback
// if it is unset or empty.
func getEnvString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt parses the environment variable as an integer, returning the
// fallback if it is unset or malformed.
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// getEnvDuration parses the environment variable with time.ParseDuration,
// returning the fallback if it is unset or malformed.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// parseEnv overlays Config fields from environment variables.
//
// Variable names follow the original deployment where one existed
// (DATABASE_URL, JWT_SECRET_KEY, JWT_ALGORITHM, JWT_EXPIRATION_HOURS,
// OLLAMA_URL); the token lifetime is accepted as an integer number of hours.
func parseEnv(config *Config) {
	config.EndpointAddr = getEnvString("ADDRESS", config.EndpointAddr)
	config.DatabaseDSN = getEnvString("DATABASE_URL", config.DatabaseDSN)
	config.JWTSecret = getEnvString("JWT_SECRET_KEY", config.JWTSecret)
	config.JWTAlgorithm = getEnvString("JWT_ALGORITHM", config.JWTAlgorithm)

	hours := getEnvInt("JWT_EXPIRATION_HOURS", int(config.TokenValidityDuration.Hours()))
	config.TokenValidityDuration = time.Duration(hours) * time.Hour

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				trimmed = append(trimmed, s)
			}
		}
		if len(trimmed) > 0 {
			config.AllowedOrigins = trimmed
		}
	}

	config.OllamaBaseURL = getEnvString("OLLAMA_URL", config.OllamaBaseURL)
	config.DBRequestTimeout = getEnvDuration("DB_REQUEST_TIMEOUT", config.DBRequestTimeout)
	config.OllamaRequestTimeout = getEnvDuration("OLLAMA_REQUEST_TIMEOUT", config.OllamaRequestTimeout)
}
