package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/smake-dev/smake/internal/logger"
	"github.com/smake-dev/smake/internal/parser"
	"github.com/smake-dev/smake/internal/runner"
)

// RunScript executes one SQL script file against the database, skipping
// the buildfile and the build state entirely. It returns the process
// exit code.
func RunScript(ctx context.Context, config *Config, path string) (int, error) {
	if config.DatabasePath == "" {
		return 2, &ConfigError{Field: "db", Message: "a database path is required to run a script"}
	}

	parsed, err := parser.ParseFile(path)
	if err != nil {
		return 2, err
	}
	logger.Debug("parsed %s: %d statements", path, len(parsed.Statements))

	db, closeDB, err := openDatabase(ctx, config.DatabasePath, config.DryRun)
	if err != nil {
		return 1, err
	}
	defer closeDB()

	executor := runner.NewExecutor(db, config.Verbose)
	run := executor.ExecuteScript(ctx, path, parsed)

	fmt.Printf("\n%s: %s, %d of %d statements failed (%v)\n",
		path, run.Status, run.FailedStatements(), len(run.Results),
		run.Duration().Round(time.Millisecond))
	if config.DryRun {
		fmt.Printf("Dry run: no changes were made to %s\n", config.DatabasePath)
	}

	if run.Status == runner.ScriptFailed {
		return 1, nil
	}
	return 0, nil
}
