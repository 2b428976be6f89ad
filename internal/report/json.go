package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/smake-dev/smake/internal/state"
)

// JSONReporter renders the build state as JSON
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Name returns the name of this formatter
func (r *JSONReporter) Name() string {
	return string(FormatJSON)
}

// Format renders the build state as indented JSON
func (r *JSONReporter) Format(st *state.BuildState, writer io.Writer) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal build state to JSON: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	_, err = writer.Write([]byte("\n"))
	return err
}
