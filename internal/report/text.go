package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/smake-dev/smake/internal/state"
)

// TextReporter renders the build state as a human-readable table
type TextReporter struct{}

// NewTextReporter creates a new text reporter
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// Name returns the name of this formatter
func (r *TextReporter) Name() string {
	return string(FormatText)
}

// Format renders one line per recorded script, sorted by path
func (r *TextReporter) Format(st *state.BuildState, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Database: %s\n", st.Database); err != nil {
		return err
	}

	if len(st.Scripts) == 0 {
		_, err := fmt.Fprintln(writer, "No scripts built yet")
		return err
	}

	paths := make([]string, 0, len(st.Scripts))
	for path := range st.Scripts {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		rec := st.Scripts[path]
		_, err := fmt.Fprintf(writer, "  %s\t%s\ttarget=%s\tbuilt %s\n",
			path, rec.Checksum[:8], rec.Target, rec.BuiltAt.Format("2006-01-02 15:04:05"))
		if err != nil {
			return err
		}
	}
	return nil
}
