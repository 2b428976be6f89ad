// Package report renders the build state for the status command.
package report

import (
	"fmt"
	"io"

	"github.com/smake-dev/smake/internal/state"
)

// Formatter is an interface for build-state report formatters
type Formatter interface {
	// Format renders the build state and writes to the writer
	Format(st *state.BuildState, writer io.Writer) error

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatText FormatType = "text"
	FormatJSON FormatType = "json"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextReporter(), nil
	case FormatJSON:
		return NewJSONReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: %v)", format, SupportedFormats())
	}
}

// FormatToWriter renders the build state to a writer using the specified format
func FormatToWriter(st *state.BuildState, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(st, writer)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatJSON)}
}
