package cli

import (
	"fmt"
	"os"

	"github.com/smake-dev/smake/internal/buildfile"
	"github.com/smake-dev/smake/internal/report"
	"github.com/smake-dev/smake/internal/state"
)

// Status prints what the build state knows about previously built
// scripts, in the requested format. output "-" means stdout.
func Status(config *Config, format, output string) (int, error) {
	if !report.ValidFormat(format) {
		return 2, &ConfigError{
			Field:   "format",
			Message: fmt.Sprintf("unknown format %q (supported: %v)", format, report.SupportedFormats()),
		}
	}

	dbPath := config.DatabasePath
	if dbPath == "" {
		if bf, err := buildfile.Load(config.BuildfilePath); err == nil {
			dbPath = bf.Database
		}
	}
	if dbPath == "" {
		return 2, &ConfigError{Field: "db", Message: "no database path given on the command line or in the buildfile"}
	}

	st, err := state.NewStore(config.StateFile).Load(dbPath)
	if err != nil {
		return 1, err
	}

	writer := os.Stdout
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return 1, fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	if err := report.FormatToWriter(st, report.FormatType(format), writer); err != nil {
		return 1, err
	}
	return 0, nil
}
