package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	defaultServerURL = "http://localhost:8080"
	envVarServerURL  = "ORGANIZER_SERVER_URL"
	configFileName   = ".organizer/config.yml"
)

// Config holds the taskctl configuration
type Config struct {
	ServerURL string `yaml:"server"`
}

// Load loads configuration from ~/.organizer/config.yml. A missing file is
// not an error.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFrom(filepath.Join(homeDir, configFileName))
}

// LoadFrom loads configuration from path. A missing file yields defaults; a
// malformed one is an error.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetServerURL returns the server URL with priority: env var > config file > default
func (c *Config) GetServerURL() string {
	// Priority 1: Environment variable
	if url := os.Getenv(envVarServerURL); url != "" {
		return url
	}

	// Priority 2: Config file
	if c.ServerURL != "" {
		return c.ServerURL
	}

	// Priority 3: Default
	return defaultServerURL
}
