package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regret-journal/internal/model"
)

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme(" Dark "))
	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeSystem, ParseTheme("system"))
	assert.Equal(t, ThemeSystem, ParseTheme("neon"))
	assert.Equal(t, ThemeSystem, ParseTheme(""))
}

func TestStatusLabelOverrides(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "Healing", s.StatusLabel(model.StatusHealing))

	s.SetStatusName(model.StatusHealing, "  Getting there ")
	assert.Equal(t, "Getting there", s.StatusLabel(model.StatusHealing))
	assert.Equal(t, "Active", s.StatusLabel(model.StatusActive))

	s.SetStatusName(model.StatusHealing, "")
	assert.Equal(t, "Healing", s.StatusLabel(model.StatusHealing))
	assert.Empty(t, s.StatusNames)

	var zero Settings
	zero.SetStatusName(model.StatusAccepted, "At peace")
	assert.Equal(t, "At peace", zero.StatusLabel(model.StatusAccepted))
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")

	missing, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), missing)

	s := DefaultSettings()
	s.Theme = ThemeDark
	s.MonthlyReminder = true
	s.OnboardingComplete = true
	s.SetStatusName(model.StatusHealed, "Free")
	require.NoError(t, SaveSettings(path, s))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got.Theme)
	assert.True(t, got.MonthlyReminder)
	assert.True(t, got.OnboardingComplete)
	assert.Equal(t, "Free", got.StatusLabel(model.StatusHealed))
	assert.Equal(t, "Active", got.StatusLabel(model.StatusActive))
}
