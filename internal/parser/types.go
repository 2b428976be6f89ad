package parser

// Statement is a single executable SQL statement cut out of a script.
//
// Code is the exact source slice including the terminating semicolon;
// it is never trimmed or rewritten. LineFrom and LineTo are 1-indexed
// source lines, inclusive of the full statement body. Feedback is the
// classifier's lowercase label, or "" when the statement was not
// recognized.
type Statement struct {
	LineFrom int
	LineTo   int
	Code     string
	Feedback string
}

// Result is the outcome of scanning one script.
//
// Statements holds every semicolon-terminated statement in source order.
// Tail carries whatever was left open when the input ended: an
// unterminated statement, string, or comment. Tail is informational
// only; it is never executed.
type Result struct {
	Statements []Statement
	Tail       *Tail
}

// Tail is the source left open at end of input.
type Tail struct {
	Line int    // 1-indexed line on which the open statement began
	Code string // raw source from the statement start to end of input
}

// context is the primary scan state: whether a statement is open, and
// whether it is an ordinary statement or a trigger body awaiting END;.
type context int

const (
	ctxBlank        context = iota // no statement open
	ctxStatement                   // ordinary statement body open
	ctxSubstatement                // inside BEGIN ... END; only "end;" closes
)

// String returns a string representation of context
func (c context) String() string {
	switch c {
	case ctxBlank:
		return "blank"
	case ctxStatement:
		return "statement"
	case ctxSubstatement:
		return "substatement"
	default:
		return "unknown"
	}
}

// subcontext is the lexical scan state, orthogonal to context. While it
// is anything other than subCode, statement boundaries and comment
// starts are not detected.
type subcontext int

const (
	subCode         subcontext = iota
	subBlockComment            // inside /* ... */
	subSingleQuoted            // inside '...'
	subDoubleQuoted            // inside "..."
)

// String returns a string representation of subcontext
func (s subcontext) String() string {
	switch s {
	case subCode:
		return "code"
	case subBlockComment:
		return "block comment"
	case subSingleQuoted:
		return "single-quoted string"
	case subDoubleQuoted:
		return "double-quoted string"
	default:
		return "unknown"
	}
}
