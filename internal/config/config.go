// Package config provides configuration management for socialxml using
// Viper, loading from a .socialxml.yml file, SOCIALXML_-prefixed
// environment variables, and bound command-line flags, in that order of
// increasing priority.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Format FormatConfig `yaml:"format" mapstructure:"format"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Watch  WatchConfig  `yaml:"watch" mapstructure:"watch"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// FormatConfig controls the pretty-printer.
type FormatConfig struct {
	IndentWidth int `yaml:"indent_width" mapstructure:"indent_width"`
	WrapWidth   int `yaml:"wrap_width" mapstructure:"wrap_width"`
}

// OutputConfig controls how commands report results.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format" mapstructure:"format"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// DebounceMillis batches rapid filesystem events before revalidating.
	DebounceMillis int `yaml:"debounce_ms" mapstructure:"debounce_ms"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: FormatConfig{IndentWidth: 4, WrapWidth: 80},
		Output: OutputConfig{Format: "text"},
		Watch:  WatchConfig{DebounceMillis: 300},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds the effective configuration from viper's merged sources and
// validates it.
func Load() (*Config, error) {
	config := Default()
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	// Zero values from a partial config file fall back to the defaults
	// rather than producing degenerate output.
	if config.Format.IndentWidth == 0 {
		config.Format.IndentWidth = 4
	}
	if config.Format.WrapWidth == 0 {
		config.Format.WrapWidth = 80
	}
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
	if config.Watch.DebounceMillis == 0 {
		config.Watch.DebounceMillis = 300
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Format.IndentWidth < 1 || c.Format.IndentWidth > 16 {
		return fmt.Errorf("format.indent_width %d is not in valid range 1-16", c.Format.IndentWidth)
	}
	if c.Format.WrapWidth < 20 {
		return fmt.Errorf("format.wrap_width %d is below the minimum of 20", c.Format.WrapWidth)
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format %q is not supported (text, json)", c.Output.Format)
	}
	if c.Watch.DebounceMillis < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not supported (debug, info, warn, error)", c.Log.Level)
	}
	return nil
}

// WriteDefault writes the built-in configuration to path as YAML, the
// starting point produced by `socialxml init`. It refuses to overwrite an
// existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
