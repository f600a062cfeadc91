// Package models defines the data structures shared across the scraper.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultUserAgent is the stable client signature sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Config holds runtime configuration for a scrape run. There are no
// process-wide singletons: the config is built once from flags (optionally
// seeded from a YAML file) and passed down explicitly.
type Config struct {
	URLs      []string `yaml:"urls"`
	Delay     float64  `yaml:"delay"`      // seconds to sleep between pages
	Timeout   float64  `yaml:"timeout"`    // per-request timeout in seconds
	UserAgent string   `yaml:"user_agent"` // client identity header
	DBPath    string   `yaml:"db_path"`
}

// DefaultConfig returns a Config with the default timeout, delay, client
// identity and database path.
func DefaultConfig() Config {
	return Config{
		Delay:     1.0,
		Timeout:   10.0,
		UserAgent: DefaultUserAgent,
		DBPath:    "scraper_data.db",
	}
}

// LoadConfig reads a YAML config file on top of the defaults. Fields absent
// from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}
