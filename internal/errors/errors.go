package errors

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// BuildfileError represents a buildfile loading or validation failure
type BuildfileError struct {
	File    string
	Message string
}

func (e *BuildfileError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// NewBuildfileError creates a new BuildfileError
func NewBuildfileError(file, message string) *BuildfileError {
	return &BuildfileError{
		File:    file,
		Message: message,
	}
}

// ConnectionError represents a SQLite open or configuration failure
type ConnectionError struct {
	Path       string
	Message    string
	Suggestion string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to open database %s: %s", e.Path, e.Message)
}

// NewConnectionError creates a new ConnectionError
func NewConnectionError(path, message string) *ConnectionError {
	return &ConnectionError{
		Path:    path,
		Message: message,
	}
}

// StatementError represents the failure of a single SQL statement.
// LineFrom and LineTo are 1-indexed and inclusive, pointing at the source
// range of the statement within the script.
type StatementError struct {
	Script   string
	LineFrom int
	LineTo   int
	Err      error
}

func (e *StatementError) Error() string {
	var sqliteErr sqlite3.Error
	if errors.As(e.Err, &sqliteErr) {
		return fmt.Sprintf("%s:%d-%d: [%s] %v",
			e.Script, e.LineFrom, e.LineTo, sqliteErr.Code, sqliteErr)
	}
	return fmt.Sprintf("%s:%d-%d: %v", e.Script, e.LineFrom, e.LineTo, e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError
func NewStatementError(script string, lineFrom, lineTo int, err error) *StatementError {
	return &StatementError{
		Script:   script,
		LineFrom: lineFrom,
		LineTo:   lineTo,
		Err:      err,
	}
}
