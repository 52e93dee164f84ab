package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. REGRET_JOURNAL_DATABASE_PATH.
const EnvPrefix = "REGRET_JOURNAL"

// Config keeps runtime settings for the journal.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Reminder ReminderConfig
	Settings SettingsConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logrus settings.
type LogConfig struct {
	Level  string
	Format string
}

// ReminderConfig sets when the monthly reflection reminder fires.
type ReminderConfig struct {
	Day  int
	Time string
}

// SettingsConfig locates the user preferences file.
type SettingsConfig struct {
	Path string
}

// Dir returns the directory holding the journal's config files.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "regret-journal")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "regret-journal")
}

// Load reads config.toml and the environment. A .env file in the working
// directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	dir := Dir()
	v.SetDefault("database.path", filepath.Join(dir, "journal.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("reminder.day", 1)
	v.SetDefault("reminder.time", "10:00")
	v.SetDefault("settings.path", filepath.Join(dir, "settings.toml"))

	v.SetConfigType("toml")
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
