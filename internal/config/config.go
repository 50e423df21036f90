// Package config loads tubesort configuration from baseDir/config.json.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// MaxExpansions is the default bound on how many states one solve may
	// expand before aborting. 0 means unbounded search to exhaustion.
	// A CLI flag overrides it per invocation.
	MaxExpansions int `json:"max_expansions,omitempty"`

	// OneBased displays tube indices starting at 1 in step output.
	// The core and the JSON output always use 0-based indices.
	OneBased bool `json:"one_based,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.tubesort.
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, "config.json")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.MaxExpansions < 0 {
		cfg.MaxExpansions = 0
	}
	return cfg, nil
}
