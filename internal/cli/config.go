package cli

import (
	"github.com/smake-dev/smake/internal/buildfile"
	"github.com/smake-dev/smake/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	BuildfilePath: buildfile.DefaultPath,
	Target:        buildfile.DefaultTarget,
	StateFile:     ".smake/state.json",
	Force:         false,
	DryRun:        false,
	Verbose:       false,
	NoColor:       false,
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, buildfilePath, db, stateFile string,
	force, dryRun, verbose, noColor bool) {

	if buildfilePath != "" {
		c.BuildfilePath = buildfilePath
	}
	if db != "" {
		c.DatabasePath = db
	}
	if stateFile != "" {
		c.StateFile = stateFile
	}
	c.Force = force
	c.DryRun = dryRun
	c.Verbose = verbose
	c.NoColor = noColor
}
