// Package config handles loading and saving user configuration for nameparts.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for nameparts.
type Config struct {
	Dictionary         string   `yaml:"dictionary,omitempty"`          // Path to a custom dictionary YAML file
	NicknameExclusions []string `yaml:"nickname_exclusions,omitempty"` // Bracketed texts that are not nicknames
	Format             string   `yaml:"format"`                        // json, yaml, csv, tsv, table, template
	Template           string   `yaml:"template,omitempty"`            // text/template used by the template format
	Database           string   `yaml:"database,omitempty"`            // SQLite file for stored results
	Workers            int      `yaml:"workers"`                       // Batch worker count
	SplitPartners      bool     `yaml:"split_partners"`                // Split "John and Jane Smith" before parsing
	LogLevel           string   `yaml:"log_level,omitempty"`           // debug, info, warn, error
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format:  "table",
		Workers: 4,
	}
}

// Load loads configuration from a YAML file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// LoadDir loads config.yaml from dir, returning defaults if it does not exist.
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save saves configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nameparts"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return nil
}
