// Package config handles configuration loading and validation for factprobe.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	PHP       PHPConfig       `yaml:"php"`
	Collector CollectorConfig `yaml:"collector"`
	Facts     FactsConfig     `yaml:"facts"`
}

// PHPConfig controls how the php facts invoke the interpreter.
type PHPConfig struct {
	Binary   string        `yaml:"binary"`   // executable name or path looked up on PATH
	Timezone string        `yaml:"timezone"` // date.timezone forced before phpinfo()
	Timeout  time.Duration `yaml:"timeout"`  // upper bound for a single interpreter run
}

// CollectorConfig controls fact resolution.
type CollectorConfig struct {
	Workers int `yaml:"workers"`
}

// FactsConfig selects which facts are registered.
type FactsConfig struct {
	// Disabled lists doublestar patterns; matching facts are never registered.
	Disabled []string `yaml:"disabled"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PHP: PHPConfig{
			Binary:   "php",
			Timezone: "UTC",
			Timeout:  10 * time.Second,
		},
		Collector: CollectorConfig{
			Workers: 4,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.PHP.Binary == "" {
		c.PHP.Binary = defaults.PHP.Binary
	}
	if c.PHP.Timezone == "" {
		c.PHP.Timezone = defaults.PHP.Timezone
	}
	if c.PHP.Timeout == 0 {
		c.PHP.Timeout = defaults.PHP.Timeout
	}
	if c.Collector.Workers == 0 {
		c.Collector.Workers = defaults.Collector.Workers
	}
}
