package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "vms-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, "vms.db", cfg.Storage.Path)
	assert.Equal(t, "rategain-vms-state", cfg.Storage.Slot)
	assert.True(t, cfg.Seed.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VMS_APP_ENV", "production")
	t.Setenv("VMS_STORAGE_PATH", "/tmp/override.db")
	t.Setenv("VMS_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/override.db", cfg.Storage.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format) // production default
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("VMS_LOG_LEVEL", "verbose")
	_, err := Load()
	assert.Error(t, err)
}
