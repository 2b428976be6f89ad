package runner

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/smake-dev/smake/internal/errors"
	"github.com/smake-dev/smake/internal/logger"
	"github.com/smake-dev/smake/internal/parser"
)

// Execer is the database surface the executor needs. *sql.DB and the
// wrappers in internal/database satisfy it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Executor runs parsed scripts statement by statement, strictly in
// source order, against one database. A failed statement is reported
// with its source line range and execution continues with the next
// statement; later statements may well succeed independently.
type Executor struct {
	db      Execer
	out     io.Writer
	verbose bool

	feedback *color.Color
	failure  *color.Color
}

// NewExecutor creates a new executor writing progress to stdout.
func NewExecutor(db Execer, verbose bool) *Executor {
	return &Executor{
		db:       db,
		out:      os.Stdout,
		verbose:  verbose,
		feedback: color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
}

// SetOutput redirects progress output, mainly for tests.
func (e *Executor) SetOutput(w io.Writer) {
	e.out = w
}

// ExecuteScript runs every statement of a parsed script. The returned
// run is never nil; its Status is ScriptFailed when at least one
// statement failed.
func (e *Executor) ExecuteScript(ctx context.Context, script string, parsed parser.Result) *ScriptRun {
	run := &ScriptRun{
		Script:    script,
		StartTime: time.Now(),
		Status:    ScriptRunning,
	}

	if parsed.Tail != nil {
		logger.Error("%s:%d: statement left open at end of script is not executed",
			script, parsed.Tail.Line)
	}

	for _, st := range parsed.Statements {
		if ctx.Err() != nil {
			break
		}

		result := StatementResult{Statement: st}
		if _, err := e.db.ExecContext(ctx, st.Code); err != nil {
			result.Err = errors.NewStatementError(script, st.LineFrom, st.LineTo, err)
			e.failure.Fprintf(e.out, "  %v\n", result.Err)
		} else if st.Feedback != "" {
			e.feedback.Fprintf(e.out, "  %s\n", st.Feedback)
		} else if e.verbose {
			logger.Debug("%s:%d-%d: statement executed", script, st.LineFrom, st.LineTo)
		}
		run.Results = append(run.Results, result)
	}

	run.EndTime = time.Now()
	if run.FailedStatements() > 0 {
		run.Status = ScriptFailed
	} else {
		run.Status = ScriptPassed
	}

	return run
}

// ExecuteBatch runs multiple parsed scripts sequentially, preserving
// order. Scripts after a failed one still run; schema builds are
// expected to be written so that independent scripts stay independent.
func (e *Executor) ExecuteBatch(ctx context.Context, scripts []string, parsed []parser.Result) ([]*ScriptRun, error) {
	if len(scripts) != len(parsed) {
		return nil, fmt.Errorf("got %d scripts but %d parse results", len(scripts), len(parsed))
	}

	var runs []*ScriptRun
	for i := range scripts {
		if e.verbose {
			logger.Debug("running script: %s", scripts[i])
		}
		runs = append(runs, e.ExecuteScript(ctx, scripts[i], parsed[i]))

		if ctx.Err() != nil {
			break
		}
	}
	return runs, nil
}
