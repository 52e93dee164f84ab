package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"regret-journal/internal/model"
)

// Theme is the preferred color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme reads a stored theme, falling back to ThemeSystem.
func ParseTheme(raw string) Theme {
	switch t := Theme(strings.ToLower(strings.TrimSpace(raw))); t {
	case ThemeLight, ThemeDark:
		return t
	default:
		return ThemeSystem
	}
}

// Settings are the user's preferences. They are passed explicitly to whatever
// renders the journal.
type Settings struct {
	Theme              Theme             `mapstructure:"theme"`
	MonthlyReminder    bool              `mapstructure:"monthly_reminder"`
	OnboardingComplete bool              `mapstructure:"onboarding_complete"`
	StatusNames        map[string]string `mapstructure:"status_names"`
}

func DefaultSettings() Settings {
	return Settings{Theme: ThemeSystem, StatusNames: map[string]string{}}
}

// StatusLabel returns the user's name for status, or the status itself.
func (s Settings) StatusLabel(status model.RegretStatus) string {
	if name := s.StatusNames[statusKey(status)]; name != "" {
		return name
	}
	return string(status)
}

// SetStatusName overrides the label of status. An empty name removes the override.
func (s *Settings) SetStatusName(status model.RegretStatus, name string) {
	if s.StatusNames == nil {
		s.StatusNames = map[string]string{}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		delete(s.StatusNames, statusKey(status))
		return
	}
	s.StatusNames[statusKey(status)] = name
}

// viper folds keys to lower case, so status names are keyed the same way.
func statusKey(status model.RegretStatus) string {
	return strings.ToLower(string(status))
}

// LoadSettings reads preferences from path. A missing file yields DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	s := DefaultSettings()
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := v.Unmarshal(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("unmarshal settings: %w", err)
	}
	s.Theme = ParseTheme(string(s.Theme))
	if s.StatusNames == nil {
		s.StatusNames = map[string]string{}
	}
	return s, nil
}

// SaveSettings writes preferences to path, creating its directory if needed.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("theme", string(ParseTheme(string(s.Theme))))
	v.Set("monthly_reminder", s.MonthlyReminder)
	v.Set("onboarding_complete", s.OnboardingComplete)
	names := make(map[string]any, len(s.StatusNames))
	for k, name := range s.StatusNames {
		names[strings.ToLower(k)] = name
	}
	v.Set("status_names", names)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
