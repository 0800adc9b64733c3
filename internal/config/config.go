// Package config loads truthtable settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all truthtable configuration.
type Config struct {
	// Most-recent table cache
	Store StoreConfig `yaml:"store"`

	// Caller-side bounds on a computation
	Limits LimitsConfig `yaml:"limits"`

	// Table rendering
	Display DisplayConfig `yaml:"display"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects the table cache backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // sqlite, memory, none
	Path    string `yaml:"path"`    // SQLite database path
}

// DisplayConfig configures how tables are printed.
type DisplayConfig struct {
	TrueLabel  string `yaml:"true_label"`
	FalseLabel string `yaml:"false_label"`
	ShowTiming bool   `yaml:"show_timing"`
	Color      bool   `yaml:"color"`
}

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
			Path:    "truthtable.db",
		},
		Limits: LimitsConfig{
			MaxVariables:  12,
			MaxStatements: 64,
		},
		Display: DisplayConfig{
			TrueLabel:  "T",
			FalseLabel: "F",
			ShowTiming: true,
			Color:      true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if path := os.Getenv("TRUTHTABLE_DB"); path != "" {
		c.Store.Path = path
		c.Store.Backend = BackendSQLite
	}
	if backend := os.Getenv("TRUTHTABLE_STORE"); backend != "" {
		c.Store.Backend = backend
	}
	if v := os.Getenv("TRUTHTABLE_MAX_VARIABLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TRUTHTABLE_MAX_VARIABLES: %w", err)
		}
		c.Limits.MaxVariables = n
	}
	if level := os.Getenv("TRUTHTABLE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the sqlite backend")
		}
	case BackendMemory, BackendNone:
	default:
		return fmt.Errorf("unknown store backend %q (use sqlite, memory or none)", c.Store.Backend)
	}
	if err := c.ValidateLimits(); err != nil {
		return err
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	return nil
}
