package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, int32(16), cfg.MaxDBConns)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_DB_CONNS", "4")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int32(4), cfg.MaxDBConns)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("MAX_DB_CONNS", "not-a-number")

	assert.Equal(t, 16, getEnvInt("MAX_DB_CONNS", 16))
}
