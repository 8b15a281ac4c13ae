// Package config handles configuration loading for the linter and the server.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/woozymasta/geojson"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	// AllowedTypes restricts which object types may appear anywhere in a
	// document. Empty allows all.
	AllowedTypes []string `yaml:"allowed_types,omitempty" json:"allowed_types,omitempty"`

	// Strict turns warnings into failures.
	Strict bool `yaml:"strict,omitempty" json:"strict,omitempty"`

	// Concurrency is the number of files linted in parallel.
	Concurrency int `yaml:"concurrency,omitempty" json:"concurrency,omitempty"`

	// Precision is the number of significant digits kept when minifying
	// output, 0 keeps the input as is.
	Precision int `yaml:"precision,omitempty" json:"precision,omitempty"`

	// MaxBodySize limits HTTP request bodies, in bytes.
	MaxBodySize int64 `yaml:"max_body_size,omitempty" json:"max_body_size,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Concurrency: runtime.NumCPU(),
		MaxBodySize: 10 << 20,
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Unset values fall back to Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks type names and numeric limits.
func (c *Config) Validate() error {
	for _, name := range c.AllowedTypes {
		if !geojson.IsGeometryType(name) &&
			name != string(geojson.TypeFeature) &&
			name != string(geojson.TypeFeatureCollection) {
			return fmt.Errorf("allowed_types: unknown type %q", name)
		}
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Concurrency == 0 {
		c.Concurrency = runtime.NumCPU()
	}

	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = Default().MaxBodySize
	}

	return nil
}

// Allows reports whether the type name is permitted.
func (c *Config) Allows(name string) bool {
	if len(c.AllowedTypes) == 0 {
		return true
	}
	for _, t := range c.AllowedTypes {
		if t == name {
			return true
		}
	}
	return false
}
