// Package config provides configuration loading and management for cputemps.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Processing parameters
	Processing struct {
		// Workers bounds how many cores are modeled concurrently
		Workers int `yaml:"workers"`

		// TimeStep is the number of seconds between consecutive input lines
		TimeStep int64 `yaml:"timeStep"`

		// PivotTolerance is the relative pivot magnitude below which the
		// least-squares system is treated as singular
		PivotTolerance float64 `yaml:"pivotTolerance"`
	} `yaml:"processing"`

	// Output parameters
	Output struct {
		// Dir is where report files are written. Empty means next to the input file.
		Dir string `yaml:"dir"`

		// StemMode selects how the report file prefix is derived from the
		// input file name: "legacy" or "exact"
		StemMode string `yaml:"stemMode"`

		// ModelFormat additionally exports the fitted models: "", "json" or "msgpack"
		ModelFormat string `yaml:"modelFormat"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Processing.Workers = runtime.NumCPU()
	cfg.Processing.TimeStep = 30
	cfg.Processing.PivotTolerance = 1e-12

	cfg.Output.Dir = ""
	cfg.Output.StemMode = "legacy"
	cfg.Output.ModelFormat = ""
	cfg.Output.Verbose = false

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks that every setting has a usable value
func (c *Config) Validate() error {
	if c.Processing.Workers < 1 {
		return fmt.Errorf("processing.workers must be at least 1, got %d", c.Processing.Workers)
	}
	if c.Processing.TimeStep < 1 {
		return fmt.Errorf("processing.timeStep must be positive, got %d", c.Processing.TimeStep)
	}
	if c.Processing.PivotTolerance < 0 {
		return fmt.Errorf("processing.pivotTolerance must not be negative, got %g", c.Processing.PivotTolerance)
	}

	switch c.Output.StemMode {
	case "legacy", "exact":
	default:
		return fmt.Errorf("output.stemMode must be legacy or exact, got %q", c.Output.StemMode)
	}

	switch c.Output.ModelFormat {
	case "", "json", "msgpack":
	default:
		return fmt.Errorf("output.modelFormat must be empty, json or msgpack, got %q", c.Output.ModelFormat)
	}

	return nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
