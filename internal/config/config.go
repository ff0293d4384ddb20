package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full Daybook configuration
type Config struct {
	DataDir string    `json:"dataDir"`
	UI      UIConfig  `json:"ui"`
	Log     LogConfig `json:"log"`
}

// UIConfig contains presentation settings
type UIConfig struct {
	// DefaultView is the view shown on startup: "board" or "dashboard"
	DefaultView string `json:"defaultView"`
	// DueSoonDays is the horizon for the due-soon filter and card badges
	DueSoonDays int `json:"dueSoonDays"`
	// ShowResolved toggles the resolved column on the board
	ShowResolved bool `json:"showResolved"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		DataDir: filepath.Join(homeDir, ".daybook"),
		UI: UIConfig{
			DefaultView:  "board",
			DueSoonDays:  3,
			ShowResolved: true,
		},
		Log: LogConfig{
			File:  filepath.Join(homeDir, ".daybook", "daybook.log"),
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the given directory with priority:
// 1. .daybook.json in the directory (with version migration support)
// 2. Defaults
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".daybook.json")
	data, err := os.ReadFile(path)
	if err != nil {
		// No config file is the common case; fall back to defaults
		return DefaultConfig(), nil
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(cfg), nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}

	if cfg.UI.DefaultView == "" {
		cfg.UI.DefaultView = defaults.UI.DefaultView
	}
	if cfg.UI.DueSoonDays == 0 {
		cfg.UI.DueSoonDays = defaults.UI.DueSoonDays
	}

	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from the home directory
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadConfig(homeDir)
}
