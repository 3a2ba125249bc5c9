// Package config provides file-based configuration for the downloader.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/VLeins/oii-fsds-wikipedia/fetcher"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingDataDir  = errors.New("data_dir is required")
	ErrInvalidBaseURL  = errors.New("base_url is not a valid URL")
	ErrInvalidLogLevel = errors.New("log_level must be one of: debug, info, warn, error")
)

// Config represents the downloader configuration.
type Config struct {
	// BaseURL is the wiki index endpoint exports are requested from.
	BaseURL string `yaml:"base_url"`

	// DataDir is the root directory revisions are stored under.
	DataDir string `yaml:"data_dir"`

	// LogLevel controls logging verbosity.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		BaseURL:  fetcher.DefaultBaseURL,
		DataDir:  "data",
		LogLevel: "error",
	}
}

// Load reads a YAML configuration file. Fields absent from the file keep
// their default values.
func Load(filepath string) (Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrMissingDataDir
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}
