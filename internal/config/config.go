package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoHomeDir indicates the user's home directory could not be determined.
var ErrNoHomeDir = errors.New("home directory not available")

// Config holds the optional settings read from ~/.gitstamp/config.yaml.
// Every field has a working default; the file only tunes how the queries
// run and never changes the output contract.
type Config struct {
	GitBin         string `yaml:"git_bin"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	NoColor        bool   `yaml:"no_color"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{GitBin: "git"}
}

// ConfigPath returns the config file location.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	return filepath.Join(home, ".gitstamp", "config.yaml"), nil
}

// Load reads the config file. A missing file is not an error; defaults
// apply. Unreadable or malformed files are errors for the caller to handle.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	return cfg, nil
}

// normalize replaces unusable values with their defaults.
func (c *Config) normalize() {
	if c.GitBin == "" {
		c.GitBin = "git"
	}
	if c.TimeoutSeconds < 0 {
		c.TimeoutSeconds = 0
	}
}
