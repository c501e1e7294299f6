// Package config loads the csvlookup configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults carries site-wide overrides for the per-term option defaults.
// Empty fields keep the built-in defaults.
type Defaults struct {
	File      string `yaml:"file"`
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"`
}

// Config is the full configuration. It is populated once and never mutated
// afterwards.
type Config struct {
	SearchPath []string `yaml:"search_path"`
	Defaults   Defaults `yaml:"defaults"`
}

// Load reads and decodes a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
