package types

import "fmt"

// Config holds runtime configuration combining flags, the buildfile, and defaults
type Config struct {
	// Database
	DatabasePath string // Path to the SQLite database file

	// Build input
	BuildfilePath string // Path to the JSON buildfile
	Target        string // Target name to build

	// Behavior
	Force  bool // Rebuild scripts even when their checksum is unchanged
	DryRun bool // Execute against a throwaway copy of the database

	// Output
	StateFile string // Build-state data path
	Verbose   bool   // Enable debug logging
	NoColor   bool   // Disable colored console output
}

// Validate checks the configuration for usable values
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return &ConfigError{Field: "db", Message: "database path must not be empty"}
	}
	if c.StateFile == "" {
		return &ConfigError{Field: "state-file", Message: "state file path must not be empty"}
	}
	return nil
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for --%s: %s", e.Field, e.Message)
}
