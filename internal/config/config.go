// Package config loads the application settings file and supplies defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ivorkchan/subtle/internal/platform"
)

// FileName is the settings file looked up in the platform config directory.
const FileName = "config.yaml"

// Config holds the full application configuration.
type Config struct {
	Format FormatConfig `yaml:"format"`
	Wrap   WrapConfig   `yaml:"wrap"`
	Watch  WatchConfig  `yaml:"watch"`
}

// FormatConfig controls how timecodes are rendered.
type FormatConfig struct {
	FractionDigits int    `yaml:"fraction_digits"`
	Separator      string `yaml:"separator"`
}

// WrapConfig holds characters-per-line limits for text rewrapping.
type WrapConfig struct {
	CJKCharsPerLine   int `yaml:"cjk_chars_per_line"`
	LatinCharsPerLine int `yaml:"latin_chars_per_line"`
}

// WatchConfig tunes the directory watcher.
type WatchConfig struct {
	DebounceMS    int `yaml:"debounce_ms"`
	FileTimeoutMS int `yaml:"file_timeout_ms"`
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			FractionDigits: 3,
			Separator:      ",",
		},
		Wrap: WrapConfig{
			CJKCharsPerLine:   25,
			LatinCharsPerLine: 42,
		},
		Watch: WatchConfig{
			DebounceMS:    500,
			FileTimeoutMS: 10000,
			MaxConcurrent: 2,
		},
	}
}

// Validate fills zero values with defaults and rejects values the rest of
// the program cannot work with.
func (c *Config) Validate() error {
	defaults := Default()

	if c.Format.FractionDigits == 0 {
		c.Format.FractionDigits = defaults.Format.FractionDigits
	}
	if c.Format.FractionDigits < 0 {
		return fmt.Errorf("format.fraction_digits must be positive, got %d", c.Format.FractionDigits)
	}
	if c.Format.Separator == "" {
		c.Format.Separator = defaults.Format.Separator
	}
	if len([]rune(c.Format.Separator)) != 1 {
		return fmt.Errorf("format.separator must be a single character, got %q", c.Format.Separator)
	}

	if c.Wrap.CJKCharsPerLine == 0 {
		c.Wrap.CJKCharsPerLine = defaults.Wrap.CJKCharsPerLine
	}
	if c.Wrap.LatinCharsPerLine == 0 {
		c.Wrap.LatinCharsPerLine = defaults.Wrap.LatinCharsPerLine
	}
	if c.Wrap.CJKCharsPerLine < 0 || c.Wrap.LatinCharsPerLine < 0 {
		return errors.New("wrap limits must be positive")
	}

	if c.Watch.DebounceMS == 0 {
		c.Watch.DebounceMS = defaults.Watch.DebounceMS
	}
	if c.Watch.FileTimeoutMS == 0 {
		c.Watch.FileTimeoutMS = defaults.Watch.FileTimeoutMS
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = defaults.Watch.MaxConcurrent
	}
	if c.Watch.MaxConcurrent < 0 {
		return errors.New("watch.max_concurrent must be positive")
	}

	return nil
}

// SeparatorRune returns the configured separator as a rune.
func (c *Config) SeparatorRune() rune {
	return []rune(c.Format.Separator)[0]
}

// Load reads and validates the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadDefault loads the settings file from the platform config directory,
// falling back to the built-in defaults when none exists.
func LoadDefault() (*Config, error) {
	dir, err := platform.ConfigDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
