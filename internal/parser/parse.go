package parser

import (
	"fmt"
	"os"
)

// Parse splits a script into statements and attaches a feedback label to
// each one. It is the composition seam between the scanner and the
// classifier; both remain independently testable.
func Parse(script string) Result {
	res := SplitStatements(script)
	for i := range res.Statements {
		res.Statements[i].Feedback = Classify(res.Statements[i].Code)
	}
	return res
}

// ParseFile reads a script from disk and parses it.
func ParseFile(path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(string(content)), nil
}
