package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/smake-dev/smake/internal/buildfile"
	"github.com/smake-dev/smake/internal/database"
	"github.com/smake-dev/smake/internal/discovery"
	"github.com/smake-dev/smake/internal/expand"
	"github.com/smake-dev/smake/internal/logger"
	"github.com/smake-dev/smake/internal/parser"
	"github.com/smake-dev/smake/internal/runner"
	"github.com/smake-dev/smake/internal/state"
)

// Build executes the build workflow for one target and returns the
// process exit code.
func Build(ctx context.Context, config *Config, target string) (int, error) {
	startTime := time.Now()

	if target == "" {
		target = config.Target
	}

	// Step 1: load the buildfile
	bf, err := buildfile.Load(config.BuildfilePath)
	if err != nil {
		return 2, err
	}
	logger.Debug("loaded buildfile %s (targets: %v)", bf.Path, bf.TargetNames())

	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = bf.Database
	}
	if dbPath == "" {
		return 2, &ConfigError{Field: "db", Message: "no database path given on the command line or in the buildfile"}
	}

	// Step 2: resolve the target's scripts
	entries, err := bf.Target(target)
	if err != nil {
		return 2, err
	}
	scripts, err := discovery.Resolve(filepath.Dir(bf.Path), entries)
	if err != nil {
		return 2, fmt.Errorf("failed to resolve target %q: %w", target, err)
	}
	logger.Debug("target %q resolves to %d script(s)", target, len(scripts))

	// Step 3: load build state
	store := state.NewStore(config.StateFile)
	buildState, err := store.Load(dbPath)
	if err != nil {
		return 2, err
	}

	// Step 4: open the database (a throwaway copy for dry runs)
	db, closeDB, err := openDatabase(ctx, dbPath, config.DryRun)
	if err != nil {
		return 1, err
	}
	defer closeDB()
	logger.Info("building target %q into %s", target, dbPath)

	// Step 5: execute scripts in declaration order
	executor := runner.NewExecutor(db, config.Verbose)
	var runs []*runner.ScriptRun

	for _, script := range scripts {
		content, err := os.ReadFile(script.Path)
		if err != nil {
			return 1, fmt.Errorf("failed to read script %s: %w", script.RelativePath, err)
		}

		checksum := state.Checksum(string(content))
		if !config.Force && buildState.UpToDate(script.RelativePath, checksum) {
			logger.Debug("up to date: %s", script.RelativePath)
			runs = append(runs, &runner.ScriptRun{
				Script: script.RelativePath,
				Status: runner.ScriptSkipped,
			})
			continue
		}

		expanded := expand.Apply(string(content), bf.Vars)
		if expanded.Changed() {
			logger.Debug("expanded ${...} placeholders in %s", script.RelativePath)
		}

		parsed := parser.Parse(expanded.Text)
		logger.Info("%s (%d statements)", script.RelativePath, len(parsed.Statements))

		run := executor.ExecuteScript(ctx, script.RelativePath, parsed)
		runs = append(runs, run)

		if run.Status == runner.ScriptPassed && !config.DryRun {
			buildState.Record(script.RelativePath, checksum, target)
		}

		if ctx.Err() != nil {
			break
		}
	}

	// Step 6: persist state (dry runs leave it untouched)
	if !config.DryRun {
		if err := store.Save(buildState); err != nil {
			return 1, err
		}
	}

	// Step 7: summary
	summary := runner.Summarize(runs)
	fmt.Printf("\n")
	fmt.Printf("Scripts:    %d passed, %d failed, %d skipped, %d total\n",
		summary.PassedScripts, summary.FailedScripts, summary.SkippedScripts, summary.TotalScripts)
	fmt.Printf("Statements: %d executed, %d failed\n",
		summary.TotalStatements, summary.FailedStatements)
	fmt.Printf("Time:       %v\n", time.Since(startTime).Round(time.Millisecond))
	if config.DryRun {
		fmt.Printf("\nDry run: no changes were made to %s\n", dbPath)
	}

	return summary.ExitCode(), nil
}

// openDatabase opens either the real database or, for dry runs, a
// throwaway copy of it. The returned func releases whichever was opened.
func openDatabase(ctx context.Context, path string, dryRun bool) (runner.Execer, func(), error) {
	if dryRun {
		tmp, err := database.NewTempCopy(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("dry run against temp copy %s", tmp.TempPath())
		return tmp, func() {
			if err := tmp.Close(); err != nil {
				logger.Error("failed to clean up temp database: %v", err)
			}
		}, nil
	}

	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database: %v", err)
		}
	}, nil
}
