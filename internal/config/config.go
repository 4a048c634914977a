package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo editor settings.
type Config struct {
	// ShowBeforeLineNumbers places heading markers left of line numbers.
	ShowBeforeLineNumbers bool `toml:"show_before_line_numbers"`
	LivePreview           bool `toml:"live_preview"`
	LineNumbers           bool `toml:"line_numbers"`
	HistoryLimit          int  `toml:"history_limit"`
	TabWidth              int  `toml:"tab_width"`

	// MarkerColors maps a heading level ("1".."6") to a lipgloss color.
	MarkerColors map[string]string `toml:"marker_colors"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ShowBeforeLineNumbers: true,
		LivePreview:           true,
		LineNumbers:           true,
		HistoryLimit:          1000,
		TabWidth:              4,
		MarkerColors: map[string]string{
			"1": "212",
			"2": "177",
			"3": "141",
			"4": "105",
			"5": "69",
			"6": "33",
		},
	}
}

// Load loads the config file from the standard location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile loads config from a specific file. Keys missing from the
// file keep their defaults; a missing file yields Default().
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the standard config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lapel", "config.toml"), nil
}
