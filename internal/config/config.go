// Package config loads the user-facing TOML configuration from
// ~/.procpane/config.toml and watches it for changes while the dashboard
// runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the TOML config file name inside the procpane directory.
const FileName = "config.toml"

// Config represents user preferences in TOML format.
type Config struct {
	// Theme sets the color scheme: "dark" (default), "light", or
	// "system" (follow OS dark mode).
	Theme string `toml:"theme"`

	// TickMs is the redraw interval in milliseconds (default: 50).
	TickMs int `toml:"tick_ms"`

	// Logs defines debug log management settings.
	Logs LogSettings `toml:"logs"`
}

// LogSettings controls the rotating debug log.
type LogSettings struct {
	// Level is the minimum level written: "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// MaxSizeMB is the max size in MB before rotation.
	MaxSizeMB int `toml:"max_size_mb"`

	// MaxBackups is rotated files to keep.
	MaxBackups int `toml:"max_backups"`

	// MaxAgeDays is days to keep rotated files.
	MaxAgeDays int `toml:"max_age_days"`

	// Compress rotated files.
	Compress bool `toml:"compress"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:  "dark",
		TickMs: 50,
		Logs: LogSettings{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 10,
			Compress:   true,
		},
	}
}

// Dir returns the procpane state directory (~/.procpane).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".procpane"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config at path. A missing file yields the defaults; a
// malformed file is an error and the caller decides whether to fall back.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize fills zero values back in so a partial file doesn't zero out
// settings the user never mentioned.
func (c *Config) normalize() {
	def := Default()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.TickMs <= 0 {
		c.TickMs = def.TickMs
	}
	if c.Logs.Level == "" {
		c.Logs.Level = def.Logs.Level
	}
	if c.Logs.MaxSizeMB <= 0 {
		c.Logs.MaxSizeMB = def.Logs.MaxSizeMB
	}
	if c.Logs.MaxBackups <= 0 {
		c.Logs.MaxBackups = def.Logs.MaxBackups
	}
	if c.Logs.MaxAgeDays <= 0 {
		c.Logs.MaxAgeDays = def.Logs.MaxAgeDays
	}
}
