package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "legoland.db", cfg.StorePath)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("STORE_BACKEND", "memory")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "memory", cfg.StoreBackend)
}
