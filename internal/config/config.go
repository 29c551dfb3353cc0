// Package config provides configuration loading for the scripref CLI.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/internal/logging"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config represents the complete scripref configuration.
type Config struct {
	Log    LogConfig    `yaml:"log" json:"log"`
	Cache  CacheConfig  `yaml:"cache" json:"cache"`
	Output OutputConfig `yaml:"output" json:"output"`
}

// LogConfig configures diagnostics on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: warn)
	Level string `yaml:"level" json:"level"`
	// Format is json or text (default: text)
	Format string `yaml:"format" json:"format"`
}

// CacheConfig configures memoization of scan results.
type CacheConfig struct {
	// Size is the number of memoized input texts (default: 1024)
	Size int `yaml:"size" json:"size"`
	// Disabled turns memoization off regardless of Size
	Disabled bool `yaml:"disabled" json:"disabled"`
}

// OutputConfig configures result rendering on stdout.
type OutputConfig struct {
	// Format is text or json (default: text)
	Format string `yaml:"format" json:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Cache: CacheConfig{
			Size: 1024,
		},
		Output: OutputConfig{
			Format: OutputText,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.NewValidation("log.level", err.Error())
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return errors.NewValidation("log.format", err.Error())
	}
	if c.Cache.Size < 0 {
		return errors.NewValidation("cache.size", "must not be negative")
	}
	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return errors.NewValidation("output.format", "must be text or json")
	}
	return nil
}

// CacheSize returns the effective memoization size; 0 means disabled.
func (c *Config) CacheSize() int {
	if c.Cache.Disabled {
		return 0
	}
	return c.Cache.Size
}

// LogLevel returns the parsed log level. Call Validate first.
func (c *Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Log.Level)
	return l
}

// LogFormat returns the parsed log format. Call Validate first.
func (c *Config) LogFormat() logging.Format {
	f, _ := logging.ParseFormat(c.Log.Format)
	return f
}

// readFile decodes a YAML file without applying defaults, so that Merge
// only sees the keys the file sets.
func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.NewParse("YAML", path, err.Error())
	}
	return config, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	file, err := readFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	config.Merge(file)
	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewIO("mkdir", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}

	if other.Cache.Size != 0 {
		c.Cache.Size = other.Cache.Size
	}
	if other.Cache.Disabled {
		c.Cache.Disabled = true
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
}
