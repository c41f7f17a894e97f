package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	data := []byte(`{
		"endpoint_addr": ":9000",
		"database_dsn": "postgres://u:p@h:5432/d",
		"jwt_secret": "file-secret",
		"jwt_algorithm": "HS384",
		"token_validity_duration": "48h",
		"allowed_origins": ["http://one.local"],
		"ollama_base_url": "http://ollama:11434",
		"db_request_timeout": "3s"
	}`)

	c := &JsonConfig{}
	require.NoError(t, json.Unmarshal(data, c))

	assert.Equal(t, c.EndpointAddr, ":9000")
	assert.Equal(t, c.JWTSecret, "file-secret")
	assert.Equal(t, c.JWTAlgorithm, "HS384")
	assert.Equal(t, c.TokenValidityDuration.Duration, 48*time.Hour)
	assert.Equal(t, c.AllowedOrigins, []string{"http://one.local"})
	assert.Equal(t, c.DBRequestTimeout.Duration, 3*time.Second)
}

func TestJsonConfig_PartialFileKeepsDefaults(t *testing.T) {
	c := &JsonConfig{}
	require.NoError(t, json.Unmarshal([]byte(`{"jwt_secret":"only-this"}`), c))

	var cfg Config
	cfg.LoadDefaults()

	if c.JWTSecret != "" {
		cfg.JWTSecret = c.JWTSecret
	}

	assert.Equal(t, cfg.JWTSecret, "only-this")
	assert.Equal(t, cfg.EndpointAddr, ":5000")
	assert.Equal(t, cfg.TokenValidityDuration, 24*time.Hour)
}
