package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPrefix+"_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 1, cfg.Reminder.Day)
	assert.Equal(t, "10:00", cfg.Reminder.Time)
	assert.Equal(t, "journal.db", filepath.Base(cfg.Database.Path))
	assert.Equal(t, "settings.toml", filepath.Base(cfg.Settings.Path))
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "/tmp/from-file.db"

[reminder]
day = 15
time = "08:30"
`), 0o644))
	t.Setenv(EnvPrefix+"_CONFIG", path)
	t.Setenv(EnvPrefix+"_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.Database.Path)
	assert.Equal(t, 15, cfg.Reminder.Day)
	assert.Equal(t, "08:30", cfg.Reminder.Time)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database\npath ="), 0o644))
	t.Setenv(EnvPrefix+"_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}
