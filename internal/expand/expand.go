// Package expand rewrites script text before it is scanned, substituting
// ${name} placeholders with values from the buildfile's vars table.
package expand

import (
	"os"
	"strings"
)

// Expanded pairs a script's original text with its rewritten form. The
// scanner and executor operate on Text; Original is kept for checksums,
// which must reflect what is on disk rather than a particular vars table.
type Expanded struct {
	Original string
	Text     string
}

// Apply substitutes ${name} placeholders in src using vars. Bare $name
// is accepted as well, following os.Expand. Unknown names expand to the
// empty string. "$$" produces a literal "$", so a dollar sign can be
// written without being taken as a placeholder.
func Apply(src string, vars map[string]string) Expanded {
	text := os.Expand(src, func(name string) string {
		if name == "$" {
			return "$"
		}
		return vars[name]
	})
	return Expanded{Original: src, Text: text}
}

// Changed reports whether expansion rewrote anything.
func (e Expanded) Changed() bool {
	return e.Original != e.Text
}

// Names returns the placeholder names referenced in src, in order of
// first appearance.
func Names(src string) []string {
	var names []string
	seen := make(map[string]bool)
	os.Expand(src, func(name string) string {
		if name != "$" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return ""
	})
	return names
}

// HasPlaceholders reports whether src references any placeholder.
func HasPlaceholders(src string) bool {
	return len(Names(src)) > 0 || strings.Contains(src, "$$")
}
