package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.drillingedge.com", cfg.Registry.BaseURL)
	assert.Equal(t, 30, cfg.Registry.TimeoutSecs)
	assert.Equal(t, 3, cfg.Registry.MaxRetries)
	assert.Equal(t, 1.0, cfg.Registry.RequestsPerSec)
	assert.Equal(t, 1, cfg.Pipeline.Workers)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "wells.db", cfg.Store.DatabaseURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WELLS_REGISTRY_BASE_URL", "http://localhost:9999")
	t.Setenv("WELLS_LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Registry.BaseURL)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}

func TestInitLogger_Console(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	assert.NoError(t, err)
}
