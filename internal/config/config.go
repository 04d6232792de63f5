// Package config handles configuration loading for the server binary.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	// Dataset is the path to the georeferenced elevation raster.
	Dataset string `yaml:"dataset"`

	Addr string `yaml:"addr,omitempty"`
	Port int    `yaml:"port,omitempty"`

	// Default direction range for queries that do not pass start/end.
	StartDirection int `yaml:"start_direction,omitempty"`
	EndDirection   int `yaml:"end_direction,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified
// path. Absent keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Config{
		Addr:           "0.0.0.0",
		Port:           8080,
		StartDirection: 0,
		EndDirection:   359,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Dataset == "" {
		return nil, fmt.Errorf("config %s: dataset path is required", path)
	}

	return &cfg, nil
}
