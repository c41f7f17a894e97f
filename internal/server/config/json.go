package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/homelab-dashboard/internal/flagx"
	"github.com/dmitrijs2005/homelab-dashboard/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	JWTSecret             string         `json:"jwt_secret"`
	JWTAlgorithm          string         `json:"jwt_algorithm"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	AllowedOrigins        []string       `json:"allowed_origins"`
	OllamaBaseURL         string         `json:"ollama_base_url"`
	DBRequestTimeout      timex.Duration `json:"db_request_timeout"`
	OllamaRequestTimeout  timex.Duration `json:"ollama_request_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags.
// If neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.JWTAlgorithm != "" {
		config.JWTAlgorithm = c.JWTAlgorithm
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.OllamaBaseURL != "" {
		config.OllamaBaseURL = c.OllamaBaseURL
	}
	if c.DBRequestTimeout.Duration != 0 {
		config.DBRequestTimeout = time.Duration(c.DBRequestTimeout.Duration)
	}
	if c.OllamaRequestTimeout.Duration != 0 {
		config.OllamaRequestTimeout = time.Duration(c.OllamaRequestTimeout.Duration)
	}
}
