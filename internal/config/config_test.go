package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load(writeConfig(t, "env: local\n"))
	require.NoError(t, err)

	assert.Equal(t, "assets/catalog.json", cfg.CatalogPath)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 15, cfg.SessionSize)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "sqlite", cfg.Storage.Engine)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.True(t, cfg.Reminders.Enabled)
	assert.Equal(t, 9, cfg.Reminders.Hour)

	assert.ErrorIs(t, cfg.RequireToken(), ErrMissingEnvironmentVariables)
	_, err = cfg.DB.DSN()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REMINDERS_HOUR", "20")
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")

	path := writeConfig(t, `
env: production
catalog_path: data/catalog.xlsx
timezone: Europe/Berlin
session_size: 10
search_debounce: 500ms
storage:
  engine: file
  path: /tmp/vault.json
reminders:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "data/catalog.xlsx", cfg.CatalogPath)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, 10, cfg.SessionSize)
	assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "file", cfg.Storage.Engine)
	assert.Equal(t, "/tmp/vault.json", cfg.Storage.Path)
	assert.False(t, cfg.Reminders.Enabled)
	assert.Equal(t, 20, cfg.Reminders.Hour)
	assert.NoError(t, cfg.RequireToken())
}

func TestLoadPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load(writeConfig(t, "storage:\n  engine: postgres\n"))
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)

	t.Setenv("DATABASE_URL", "postgres://localhost/vault")
	cfg, err := Load(writeConfig(t, "storage:\n  engine: postgres\n"))
	require.NoError(t, err)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/vault", dsn)
}
