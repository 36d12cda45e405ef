package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the scraper configuration
type Config struct {
	// Concurrency is the maximum number of source fetches running at once
	Concurrency int `yaml:"concurrency"`

	Retry struct {
		MaxAttempts int `yaml:"max_attempts"`
		BaseDelayMs int `yaml:"base_delay_ms"`
		// MaxDelayMs caps the backoff delay; 0 means no cap
		MaxDelayMs int `yaml:"max_delay_ms"`
	} `yaml:"retry"`

	Browser struct {
		Headless   bool `yaml:"headless"`
		PageWaitMs int  `yaml:"page_wait_ms"`
	} `yaml:"browser"`

	// Limit is the default per-source result limit (0 = unlimited)
	Limit int `yaml:"limit"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	if cfg.Retry.MaxAttempts < 1 {
		return nil, fmt.Errorf("retry.max_attempts must be at least 1, got %d", cfg.Retry.MaxAttempts)
	}

	return cfg, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Concurrency = 3
	cfg.Retry.MaxAttempts = 3
	cfg.Retry.BaseDelayMs = 500
	cfg.Retry.MaxDelayMs = 0
	cfg.Browser.Headless = true
	cfg.Browser.PageWaitMs = 3000
	cfg.Limit = 10
	return cfg
}
