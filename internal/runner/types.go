package runner

import (
	"time"

	"github.com/smake-dev/smake/internal/parser"
)

// ScriptRun represents the execution of one script
type ScriptRun struct {
	Script    string // Script path as shown to the user
	StartTime time.Time
	EndTime   time.Time
	Status    ScriptStatus
	Results   []StatementResult
}

// StatementResult records the outcome of one statement
type StatementResult struct {
	Statement parser.Statement
	Err       error // Non-nil if the statement failed
}

// ScriptStatus represents the current state of a script execution
type ScriptStatus int

const (
	ScriptPending ScriptStatus = iota
	ScriptRunning
	ScriptPassed
	ScriptFailed
	ScriptSkipped
)

// String returns a string representation of ScriptStatus
func (s ScriptStatus) String() string {
	switch s {
	case ScriptPending:
		return "pending"
	case ScriptRunning:
		return "running"
	case ScriptPassed:
		return "passed"
	case ScriptFailed:
		return "failed"
	case ScriptSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Duration returns the script execution duration. Skipped runs never
// started and report zero.
func (r *ScriptRun) Duration() time.Duration {
	if r.StartTime.IsZero() {
		return 0
	}
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// FailedStatements returns how many statements in this run failed
func (r *ScriptRun) FailedStatements() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Summary aggregates all script executions of a build
type Summary struct {
	TotalScripts     int
	PassedScripts    int
	FailedScripts    int
	SkippedScripts   int
	TotalStatements  int
	FailedStatements int
	TotalDuration    time.Duration
}

// Summarize aggregates a set of script runs
func Summarize(runs []*ScriptRun) *Summary {
	summary := &Summary{TotalScripts: len(runs)}
	for _, run := range runs {
		summary.TotalDuration += run.Duration()
		summary.TotalStatements += len(run.Results)
		summary.FailedStatements += run.FailedStatements()

		switch run.Status {
		case ScriptPassed:
			summary.PassedScripts++
		case ScriptFailed:
			summary.FailedScripts++
		case ScriptSkipped:
			summary.SkippedScripts++
		}
	}
	return summary
}

// AllPassed returns true if no script failed
func (s *Summary) AllPassed() bool {
	return s.FailedScripts == 0
}

// ExitCode returns the appropriate exit code for the build
func (s *Summary) ExitCode() int {
	if s.AllPassed() {
		return 0
	}
	return 1
}
