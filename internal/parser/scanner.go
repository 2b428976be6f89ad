/*
 * scanner.go
 *
 * Character-level splitter for SQLite scripts.
 *
 * The scanner makes a single left-to-right pass over the full script text
 * and emits every syntactically complete, semicolon-terminated statement
 * together with its 1-indexed source line range. It understands just
 * enough SQLite lexical structure to know when a semicolon is NOT a
 * statement terminator:
 *
 *   - inside a '...' or "..." literal,
 *   - inside a block comment,
 *   - after "--" on the same line,
 *   - inside a trigger body, where BEGIN ... END; folds its inner
 *     semicolons into the enclosing CREATE TRIGGER statement.
 *
 * Two orthogonal state values drive the pass: context tracks whether a
 * statement is open (and whether it is a trigger body), subcontext tracks
 * the lexical region. While subcontext is not plain code, the scanner is
 * restricted to finding the region's closing token; everything else is
 * suppressed.
 *
 * Known simplifications, kept intentionally:
 *
 *   - A doubled quote inside a string literal is not an escape; the first
 *     matching quote character always closes the string.
 *   - "end;" closes a trigger body only when the three characters
 *     immediately before the semicolon spell "end" with nothing between.
 *   - Malformed input (unterminated string, comment, or statement) is
 *     absorbed without error; whatever is left open at end of input is
 *     reported via Result.Tail and never emitted as a statement.
 */
package parser

import "strings"

// scanner owns the transient cursor state for one pass over a script.
// A fresh value is used per call; nothing persists afterwards except the
// returned Result.
type scanner struct {
	src string
	pos int
	// line counts newlines consumed so far (0-indexed). It advances on
	// every '\n' regardless of context or subcontext.
	line int
	// startPos and startLine mark the beginning of the pending statement.
	startPos  int
	startLine int
	ctx       context
	sub       subcontext
}

// SplitStatements scans src once and returns every semicolon-terminated
// statement in source order. It is a pure function of src: no I/O, no
// shared state, no errors. Malformed input degrades as described in the
// package comment instead of being rejected.
func SplitStatements(src string) Result {
	s := scanner{src: src}
	return s.run()
}

func (s *scanner) run() Result {
	var res Result

	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if ch == '\n' {
			s.line++
		}

		switch s.sub {
		case subBlockComment:
			// Only "*/" matters in here.
			if ch == '*' && s.peek(1) == '/' {
				s.sub = subCode
				s.pos += 2
				continue
			}
			s.pos++

		case subSingleQuoted:
			// The first matching quote closes the string; '' is not
			// treated as an escaped quote.
			if ch == '\'' {
				s.sub = subCode
			}
			s.pos++

		case subDoubleQuoted:
			if ch == '"' {
				s.sub = subCode
			}
			s.pos++

		default:
			s.code(&res, ch)
		}
	}

	if s.ctx != ctxBlank && s.startPos < len(s.src) {
		res.Tail = &Tail{
			Line: s.startLine + 1,
			Code: s.src[s.startPos:],
		}
	}

	return res
}

// code handles one position while the subcontext is plain code.
func (s *scanner) code(res *Result, ch byte) {
	switch {
	case ch == '-' && s.peek(1) == '-':
		// Line comment: skip to (not past) the newline, so the main
		// loop still counts it. A standalone comment before a statement
		// is never attributed to the statement that follows it.
		for s.pos < len(s.src) && s.src[s.pos] != '\n' {
			s.pos++
		}
		if s.ctx == ctxBlank {
			s.startPos = s.pos
			s.startLine = s.line
		}

	case ch == '/' && s.peek(1) == '*':
		s.sub = subBlockComment
		s.pos += 2

	case ch == '\'':
		s.sub = subSingleQuoted
		s.pos++

	case ch == '"':
		s.sub = subDoubleQuoted
		s.pos++

	case ch == ';':
		if s.ctx == ctxStatement || (s.ctx == ctxSubstatement && s.endKeywordPrecedes()) {
			res.Statements = append(res.Statements, Statement{
				LineFrom: s.startLine + 1,
				LineTo:   s.line + 1,
				Code:     s.src[s.startPos : s.pos+1],
			})
			s.startPos = s.pos + 1
			s.startLine = s.line
			s.ctx = ctxBlank
		}
		s.pos++

	case (ch == 'b' || ch == 'B') && s.ctx != ctxSubstatement &&
		s.beginKeywordAt(s.pos) && !s.transactionFollows(s.pos+5):
		// BEGIN opens a trigger body unless the next word is
		// TRANSACTION, which makes it an ordinary statement handled by
		// the branch below.
		if s.ctx == ctxBlank {
			s.startPos = s.pos
			s.startLine = s.line
		}
		s.ctx = ctxSubstatement
		s.pos += len("begin")

	case !isSpace(ch):
		if s.ctx == ctxBlank {
			s.ctx = ctxStatement
			s.startPos = s.pos
			s.startLine = s.line
		}
		s.pos++

	default:
		s.pos++
	}
}

// peek returns the byte at position pos+offset, or 0 if out of bounds.
func (s *scanner) peek(offset int) byte {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

// endKeywordPrecedes reports whether the three characters immediately
// before the current semicolon spell "end" (case-insensitive). No
// whitespace is permitted between the keyword and the semicolon.
func (s *scanner) endKeywordPrecedes() bool {
	return s.pos >= 3 && strings.EqualFold(s.src[s.pos-3:s.pos], "end")
}

// beginKeywordAt reports whether the token "begin" starts at p on a word
// boundary.
func (s *scanner) beginKeywordAt(p int) bool {
	const kw = "begin"
	if p > 0 && isWordChar(s.src[p-1]) {
		return false
	}
	if p+len(kw) > len(s.src) {
		return false
	}
	if !strings.EqualFold(s.src[p:p+len(kw)], kw) {
		return false
	}
	if p+len(kw) < len(s.src) && isWordChar(s.src[p+len(kw)]) {
		return false
	}
	return true
}

// transactionFollows reports whether the next word at or after p, skipping
// whitespace, is "transaction". Pure lookahead; the cursor is not moved.
func (s *scanner) transactionFollows(p int) bool {
	for p < len(s.src) && isSpace(s.src[p]) {
		p++
	}
	const kw = "transaction"
	if p+len(kw) > len(s.src) {
		return false
	}
	if !strings.EqualFold(s.src[p:p+len(kw)], kw) {
		return false
	}
	if p+len(kw) < len(s.src) && isWordChar(s.src[p+len(kw)]) {
		return false
	}
	return true
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isWordChar(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
