// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Input
	Input string `json:"input,omitempty"` // Path to resume text or HTML file
	HTML  bool   `json:"html,omitempty"`  // Treat input as HTML

	// Scoring
	Role       string `json:"role,omitempty"`       // Target role for keyword weighting
	Dictionary string `json:"dictionary,omitempty"` // Path to a custom dictionary JSON file

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed boxes instead of raw JSON
	JSONLog bool `json:"json_log,omitempty"` // Emit JSON-encoded logs
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks configuration invariants after flag merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}
	if c.Dictionary != "" {
		if _, err := os.Stat(c.Dictionary); err != nil {
			return fmt.Errorf("dictionary file not accessible: %w", err)
		}
	}
	return nil
}
