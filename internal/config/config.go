// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Environment variables consulted by FromEnv.
const (
	EnvDOTDatabase = "VE_DOT_DATABASE"
	EnvWorkbook    = "VE_WORKBOOK"
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "VE_LOG_LEVEL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Occupation record sources
	DOTDatabase string `json:"dot_database,omitempty"` // SQLite DOT database path
	Workbook    string `json:"workbook,omitempty"`     // DOT spreadsheet export path
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Reference overrides
	GridRules    string `json:"grid_rules,omitempty"`   // Medical-Vocational Guidelines JSON
	Obsolescence string `json:"obsolescence,omitempty"` // Obsolete occupation list JSON

	// Behavior
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=json console"`
	Workers   int    `json:"workers,omitempty" validate:"gte=0,lte=256"`
	Verbose   bool   `json:"verbose,omitempty"` // Print summary boxes to stderr
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Workers:   4,
	}
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
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
func FromEnv() Config {
	return Config{
		DOTDatabase: os.Getenv(EnvDOTDatabase),
		Workbook:    os.Getenv(EnvWorkbook),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		LogLevel:    os.Getenv(EnvLogLevel),
	}
}

// Validate checks that the configuration has valid values. Referenced
// files must exist.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	files := []struct {
		key, path string
	}{
		{"dot_database", c.DOTDatabase},
		{"workbook", c.Workbook},
		{"grid_rules", c.GridRules},
		{"obsolescence", c.Obsolescence},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.key, f.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer CLI flags over the config file, environment and
// built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DOTDatabase == "" {
		result.DOTDatabase = defaults.DOTDatabase
	}
	if result.Workbook == "" {
		result.Workbook = defaults.Workbook
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GridRules == "" {
		result.GridRules = defaults.GridRules
	}
	if result.Obsolescence == "" {
		result.Obsolescence = defaults.Obsolescence
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bools cannot distinguish unset from false, so either side enables.
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
