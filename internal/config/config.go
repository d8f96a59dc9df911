// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that points at a default
// config file, checked when --config is not passed.
const EnvConfigPath = "RESUME_TAILOR_CONFIG"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	JD     string `json:"jd,omitempty"`     // Path to job description document
	Resume string `json:"resume,omitempty"` // Path to resume document
	Corpus string `json:"corpus,omitempty"` // Path to experience corpus document
	Edits  string `json:"edits,omitempty"`  // Path to proposed edits JSON
	Output string `json:"output,omitempty"` // Path to write the report to

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate input paths exist (if specified). Output is a destination,
	// so it is not checked.
	inputs := []struct {
		name string
		path string
	}{
		{"jd", c.JD},
		{"resume", c.Resume},
		{"corpus", c.Corpus},
		{"edits", c.Edits},
	}
	for _, in := range inputs {
		if in.path == "" {
			continue
		}
		if _, err := os.Stat(in.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", in.name, in.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Corpus == "" {
		result.Corpus = defaults.Corpus
	}
	if result.Edits == "" {
		result.Edits = defaults.Edits
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
