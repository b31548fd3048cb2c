// Package config holds gesfix configuration with YAML file support.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all gesfix configuration.
type Config struct {
	// Extension is the project-file extension to search for. The suffix
	// match is case-sensitive.
	Extension string `yaml:"extension"`

	// BackupSuffix is appended to a project file's path to derive its
	// backup path. An existing backup is never overwritten.
	BackupSuffix string `yaml:"backup_suffix"`

	// SkipDirs are directory names pruned during traversal.
	SkipDirs []string `yaml:"skip_dirs"`
}

// DefaultConfig returns the built-in defaults. ".original" matches the
// backup suffix the Pitivi migration script used, so trees already treated
// by it are not backed up a second time.
func DefaultConfig() *Config {
	return &Config{
		Extension:    ".xges",
		BackupSuffix: ".original",
		SkipDirs:     []string{".git"},
	}
}

// Load loads configuration from a YAML file, returning defaults if the file
// does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension must start with a dot, got %q", c.Extension)
	}
	if c.BackupSuffix == "" {
		return fmt.Errorf("backup_suffix must not be empty")
	}
	if strings.HasSuffix(c.BackupSuffix, c.Extension) {
		return fmt.Errorf("backup_suffix %q would make backups match the search extension", c.BackupSuffix)
	}
	return nil
}
