// Package config loads and watches application configuration: TOML on
// disk, CLOCKBOARD_* env overrides, and an fsnotify watcher that feeds
// reloads into the running program.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Storage  StorageConfig
	Log      LogConfig
	Rotation RotationConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language  string
	Timezone  string
	Theme     string
	HourCycle string `mapstructure:"hour_cycle"`
}

// StorageConfig holds sqlite settings.
type StorageConfig struct {
	Path string
}

// LogConfig holds the log sink settings. An empty file disables
// logging entirely; stdout is never an option here.
type LogConfig struct {
	Level string
	File  string
}

// RotationConfig holds the dashboard rotation schedule.
type RotationConfig struct {
	Enabled  bool
	Schedule string
}

// Hour cycle settings. Auto defers to the locale's own default.
const (
	HourCycleAuto = "auto"
	HourCycle12   = "12"
	HourCycle24   = "24"
)

// DefaultPath is where Load looks when no -config flag is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "clockboard", "config.toml")
}

// Load reads configuration from path and env. Env var overrides use
// prefix CLOCKBOARD_, e.g. CLOCKBOARD_UI_LANGUAGE=ja. A missing file
// is fine; defaults cover every field.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.timezone", "")
	v.SetDefault("ui.theme", "blue")
	v.SetDefault("ui.hour_cycle", HourCycleAuto)
	v.SetDefault("storage.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "clockboard", "clockboard.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("rotation.enabled", false)
	v.SetDefault("rotation.schedule", "@every 5m")

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "clockboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLOCKBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

// normalize repairs values the rest of the program assumes are sane.
// Bad settings degrade to defaults instead of erroring.
func (c *Config) normalize() {
	switch c.UI.HourCycle {
	case HourCycleAuto, HourCycle12, HourCycle24:
	default:
		c.UI.HourCycle = HourCycleAuto
	}
	if strings.TrimSpace(c.UI.Language) == "" {
		c.UI.Language = "en"
	}
	if strings.TrimSpace(c.Rotation.Schedule) == "" {
		c.Rotation.Schedule = "@every 5m"
	}
}

// Save writes the config to path, creating the directory if needed.
// The TUI settings screen persists language/timezone/theme through
// this; the watcher then picks the write up like any external edit.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.hour_cycle", cfg.UI.HourCycle)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("rotation.enabled", cfg.Rotation.Enabled)
	v.Set("rotation.schedule", cfg.Rotation.Schedule)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
