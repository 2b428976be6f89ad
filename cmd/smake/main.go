package main

import (
	"context"
	"fmt"
	"os"

	"github.com/smake-dev/smake/internal/cli"
	"github.com/smake-dev/smake/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func commonFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Buildfile path",
		},
		&urfavecli.StringFlag{
			Name:  "db",
			Usage: "SQLite database file (overrides the buildfile)",
		},
		&urfavecli.StringFlag{
			Name:  "state-file",
			Usage: "Build-state data path",
		},
		&urfavecli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "Rebuild scripts even when unchanged",
		},
		&urfavecli.BoolFlag{
			Name:  "dry-run",
			Usage: "Execute against a throwaway copy of the database",
		},
		&urfavecli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug output",
		},
		&urfavecli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

func main() {
	app := &urfavecli.Command{
		Name:    "smake",
		Usage:   "Build SQLite databases from SQL scripts, make-style",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "build",
				Usage:     "Build a target from the buildfile (default: all)",
				ArgsUsage: "[target]",
				Action:    buildCommand,
				Flags:     commonFlags(),
			},
			{
				Name:      "run",
				Usage:     "Execute a single SQL script against the database",
				ArgsUsage: "<script.sql>",
				Action:    runCommand,
				Flags:     commonFlags(),
			},
			{
				Name:      "new",
				Usage:     "Scaffold a new SQL script (and a buildfile if missing)",
				ArgsUsage: "<name>",
				Action:    newCommand,
				Flags:     commonFlags(),
			},
			{
				Name:   "status",
				Usage:  "Show which scripts the build state considers up to date",
				Action: statusCommand,
				Flags: append(commonFlags(),
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text or json)",
						Value: "text",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
				),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the runtime configuration from flags
func loadConfig(cmd *urfavecli.Command) *cli.Config {
	config := cli.DefaultConfig

	cli.ApplyFlagsToConfig(&config,
		cmd.String("config"),
		cmd.String("db"),
		cmd.String("state-file"),
		cmd.Bool("force"),
		cmd.Bool("dry-run"),
		cmd.Bool("verbose"),
		cmd.Bool("no-color"),
	)

	logger.SetVerbose(config.Verbose)
	if config.NoColor {
		logger.DisableColor()
	}

	return &config
}

// buildCommand handles the 'smake build' command
func buildCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd)
	target := cmd.Args().First()

	exitCode, err := cli.Build(ctx, config, target)
	return exit(exitCode, err)
}

// runCommand handles the 'smake run' command
func runCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd)

	script := cmd.Args().First()
	if script == "" {
		fmt.Fprintln(os.Stderr, "Error: a script path is required")
		os.Exit(2)
	}

	exitCode, err := cli.RunScript(ctx, config, script)
	return exit(exitCode, err)
}

// newCommand handles the 'smake new' command
func newCommand(_ context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd)

	exitCode, err := cli.New(config, cmd.Args().First())
	return exit(exitCode, err)
}

// statusCommand handles the 'smake status' command
func statusCommand(_ context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd)

	exitCode, err := cli.Status(config, cmd.String("format"), cmd.String("output"))
	return exit(exitCode, err)
}

// exit reports the error, if any, and terminates with a non-zero code.
func exit(code int, err error) error {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
