package parser

import (
	"regexp"
	"strings"
)

/*
 * classifier.go
 *
 * Extracts a short human-readable label from the leading clause of a
 * statement, e.g. "create table customers" or "insert into orders". The
 * label is printed as progress feedback after the statement executes; it
 * has no semantic role.
 *
 * Classification is an ordered list of case-insensitive prefix patterns,
 * first match wins. More specific patterns come before general ones so
 * that e.g. CREATE TABLE IF NOT EXISTS is not cut short by the plain
 * CREATE TABLE pattern. Target names match a single identifier token;
 * quoted and bracketed identifiers are not recognized and simply yield
 * no label.
 */

// feedbackPatterns is evaluated in order; the first match wins. Every
// pattern is anchored at the start of the (whitespace-trimmed) statement.
var feedbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^--[^\n]*`),
	regexp.MustCompile(`(?i)^create\s+table\s+if\s+not\s+exists\s+\w+`),
	regexp.MustCompile(`(?i)^create\s+table\s+\w+`),
	regexp.MustCompile(`(?i)^create\s+index\s+if\s+not\s+exists\s+\w+`),
	regexp.MustCompile(`(?i)^create\s+index\s+\w+`),
	regexp.MustCompile(`(?i)^create\s+trigger\s+\w+`),
	regexp.MustCompile(`(?i)^drop\s+table\s+\w+`),
	regexp.MustCompile(`(?i)^drop\s+index\s+\w+`),
	regexp.MustCompile(`(?i)^insert\s+into\s+\w+`),
	regexp.MustCompile(`(?i)^update\s+\w+`),
	regexp.MustCompile(`(?i)^delete\s+from\s+\w+`),
	regexp.MustCompile(`(?i)^alter\s+table\s+\w+`),
	regexp.MustCompile(`(?i)^select\s+[\s\S]*`),
	regexp.MustCompile(`(?i)^pragma\s+\w+`),
	regexp.MustCompile(`(?i)^begin\s+transaction`),
	regexp.MustCompile(`(?i)^commit`),
	regexp.MustCompile(`(?i)^rollback`),
	regexp.MustCompile(`(?i)^explain\s+[\s\S]*`),
}

// Classify returns the lowercase label for the leading clause of code,
// or "" when no pattern matches. Absence of a label is not an error;
// callers use it to suppress feedback printing.
func Classify(code string) string {
	trimmed := strings.TrimLeft(code, " \t\n\r\f\v")
	for _, re := range feedbackPatterns {
		if m := re.FindString(trimmed); m != "" {
			return strings.ToLower(m)
		}
	}
	return ""
}
