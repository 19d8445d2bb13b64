// Package config handles configuration loading for the lint tool.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Sets []Set `yaml:"sets"`
}

// Set is a named group of GeoJSON documents to validate together.
type Set struct {
	Name  string   `yaml:"name"`
	Paths []string `yaml:"paths"`

	// ExpectInvalid inverts the check: every document in the set must
	// fail to parse.
	ExpectInvalid bool `yaml:"expect_invalid,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
