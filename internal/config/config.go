// Package config loads the countish CLI's optional YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI's flag surface. Zero values mean "not set";
// command-line flags take precedence over file values.
type Config struct {
	Algorithm      string  `yaml:"algorithm"`
	Threshold      float64 `yaml:"threshold"`
	Support        float64 `yaml:"support"`
	ErrorTolerance float64 `yaml:"error_tolerance"`
	FailureProb    float64 `yaml:"failure_prob"`
	Hashed         bool    `yaml:"hashed"`
}

// Load reads the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	return &cfg, nil
}

// Validate checks the algorithm name. Parameter ranges are validated by the
// counter constructors.
func (c *Config) Validate() error {
	switch c.Algorithm {
	case "", "naive", "lossy", "sticky":
		return nil
	default:
		return fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
}
