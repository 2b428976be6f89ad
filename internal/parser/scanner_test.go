package parser

import (
	"strings"
	"testing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// codes returns just the Code fields from SplitStatements.
func codes(src string) []string {
	res := SplitStatements(src)
	out := make([]string, len(res.Statements))
	for i, st := range res.Statements {
		out[i] = st.Code
	}
	return out
}

// assertCount fails the test when src does not split into want statements.
func assertCount(t *testing.T, src string, want int) []Statement {
	t.Helper()
	res := SplitStatements(src)
	if len(res.Statements) != want {
		t.Fatalf("src=%q\n  got %d statements, want %d\n  %v",
			src, len(res.Statements), want, codes(src))
	}
	return res.Statements
}

// assertLines fails the test when the statement's line range does not match.
func assertLines(t *testing.T, st Statement, from, to int) {
	t.Helper()
	if st.LineFrom != from || st.LineTo != to {
		t.Fatalf("statement %q: got lines %d-%d, want %d-%d",
			st.Code, st.LineFrom, st.LineTo, from, to)
	}
}

// ── basic splitting ──────────────────────────────────────────────────────────

func TestEmptyScript(t *testing.T) {
	res := SplitStatements("")
	if len(res.Statements) != 0 {
		t.Fatalf("got %d statements, want 0", len(res.Statements))
	}
	if res.Tail != nil {
		t.Fatalf("unexpected tail: %+v", res.Tail)
	}
}

func TestWhitespaceOnlyScript(t *testing.T) {
	res := SplitStatements("  \n\t\n  ")
	if len(res.Statements) != 0 || res.Tail != nil {
		t.Fatalf("got %d statements, tail=%v", len(res.Statements), res.Tail)
	}
}

func TestSingleStatement(t *testing.T) {
	sts := assertCount(t, "SELECT 1;", 1)
	if sts[0].Code != "SELECT 1;" {
		t.Fatalf("got %q", sts[0].Code)
	}
	assertLines(t, sts[0], 1, 1)
}

func TestMultipleStatementsInOrder(t *testing.T) {
	src := "CREATE TABLE a (x INT);\nINSERT INTO a VALUES (1);\nSELECT x FROM a;\n"
	sts := assertCount(t, src, 3)

	want := []string{
		"CREATE TABLE a (x INT);",
		"INSERT INTO a VALUES (1);",
		"SELECT x FROM a;",
	}
	for i, st := range sts {
		if st.Code != want[i] {
			t.Fatalf("statement[%d]: got %q, want %q", i, st.Code, want[i])
		}
	}
}

// The statement codes, ignoring inter-statement whitespace, must
// reassemble the original script.
func TestCodesReassembleScript(t *testing.T) {
	src := "CREATE TABLE a (x INT);  INSERT INTO a VALUES (1);\n\nSELECT x FROM a;"
	var joined strings.Builder
	for _, c := range codes(src) {
		joined.WriteString(c)
	}
	stripped := strings.NewReplacer(" ", "", "\n", "").Replace(src)
	got := strings.NewReplacer(" ", "", "\n", "").Replace(joined.String())
	if got != stripped {
		t.Fatalf("reassembled %q, want %q", got, stripped)
	}
}

func TestMultiLineStatementRange(t *testing.T) {
	src := "CREATE TABLE a (\n\tx INT,\n\ty INT\n);\n"
	sts := assertCount(t, src, 1)
	assertLines(t, sts[0], 1, 4)
}

func TestLaterStatementRange(t *testing.T) {
	src := "SELECT 1;\n\nUPDATE a\nSET x = 2;\n"
	sts := assertCount(t, src, 2)
	assertLines(t, sts[0], 1, 1)
	assertLines(t, sts[1], 3, 4)
}

// ── strings and comments ─────────────────────────────────────────────────────

func TestSemicolonInsideSingleQuotedString(t *testing.T) {
	sts := assertCount(t, "INSERT INTO t VALUES ('a;b');", 1)
	if sts[0].Code != "INSERT INTO t VALUES ('a;b');" {
		t.Fatalf("got %q", sts[0].Code)
	}
}

func TestSemicolonInsideDoubleQuotedString(t *testing.T) {
	assertCount(t, `UPDATE "odd;name" SET x = 1;`, 1)
}

func TestSemicolonInsideBlockComment(t *testing.T) {
	sts := assertCount(t, "/* drop table t; */ SELECT 1;", 1)
	if sts[0].Code != "SELECT 1;" {
		t.Fatalf("leading block comment not excluded: %q", sts[0].Code)
	}
	assertLines(t, sts[0], 1, 1)
}

func TestSemicolonInsideLineComment(t *testing.T) {
	sts := assertCount(t, "SELECT 1 -- no; terminator here\n;", 1)
	assertLines(t, sts[0], 1, 2)
}

func TestLeadingLineCommentExcluded(t *testing.T) {
	src := "-- create it\nCREATE TABLE a (x INT);\n"
	sts := assertCount(t, src, 1)
	if sts[0].Code != "CREATE TABLE a (x INT);" {
		t.Fatalf("leading comment attributed to statement: %q", sts[0].Code)
	}
	assertLines(t, sts[0], 2, 2)
}

func TestLeadingBlockCommentMultiLine(t *testing.T) {
	src := "/* header\ncomment\n*/\nSELECT 1;\n"
	sts := assertCount(t, src, 1)
	if sts[0].Code != "SELECT 1;" {
		t.Fatalf("got %q", sts[0].Code)
	}
	assertLines(t, sts[0], 4, 4)
}

// A doubled quote is NOT an escaped quote here: the first matching quote
// always closes the string, so the third quote reopens one that never
// terminates and the whole script becomes an unterminated tail. SQLite
// itself would read ''' as a literal containing one quote; this scanner
// intentionally does not.
func TestDoubledQuoteClosesStringEarly(t *testing.T) {
	res := SplitStatements("SELECT '''; SELECT 1;")
	if len(res.Statements) != 0 {
		t.Fatalf("got %d statements, want 0: %v", len(res.Statements), codes("SELECT '''; SELECT 1;"))
	}
	if res.Tail == nil {
		t.Fatal("expected unterminated tail")
	}
}

// ── trigger bodies ───────────────────────────────────────────────────────────

func TestTriggerBodySpansToEnd(t *testing.T) {
	src := "CREATE TRIGGER trg AFTER INSERT ON t BEGIN UPDATE t SET x=1; DELETE FROM t; END;"
	sts := assertCount(t, src, 1)
	if sts[0].Code != src {
		t.Fatalf("trigger split too early: %q", sts[0].Code)
	}
}

func TestTriggerBodyMultiLine(t *testing.T) {
	src := "CREATE TRIGGER trg AFTER INSERT ON t\nBEGIN\n\tUPDATE t SET x = 1;\nEND;\nSELECT 1;\n"
	sts := assertCount(t, src, 2)
	assertLines(t, sts[0], 1, 4)
	assertLines(t, sts[1], 5, 5)
}

func TestBeginTransactionIsOrdinary(t *testing.T) {
	src := "BEGIN TRANSACTION; SELECT 1; COMMIT;"
	sts := assertCount(t, src, 3)
	if sts[0].Code != "BEGIN TRANSACTION;" {
		t.Fatalf("got %q", sts[0].Code)
	}
}

func TestBeginTransactionLowercase(t *testing.T) {
	assertCount(t, "begin transaction;\ninsert into t values (1);\ncommit;", 3)
}

func TestEndNeedsAdjacentSemicolon(t *testing.T) {
	// "END ;" with a space does not close the body; the next bare "END;"
	// does. The intervening semicolon stays inside the statement.
	src := "CREATE TRIGGER trg AFTER INSERT ON t BEGIN UPDATE t SET x=1; END ; END;"
	sts := assertCount(t, src, 1)
	if !strings.HasSuffix(sts[0].Code, "END;") {
		t.Fatalf("got %q", sts[0].Code)
	}
}

func TestBeginInsideWordNotKeyword(t *testing.T) {
	// "beginning" must not open a trigger body.
	assertCount(t, "SELECT beginning FROM t; SELECT 1;", 2)
}

// ── malformed input ──────────────────────────────────────────────────────────

func TestUnterminatedStatementBecomesTail(t *testing.T) {
	res := SplitStatements("SELECT 1;\nSELECT 2")
	if len(res.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(res.Statements))
	}
	if res.Tail == nil {
		t.Fatal("expected tail for unterminated statement")
	}
	if res.Tail.Line != 2 || res.Tail.Code != "SELECT 2" {
		t.Fatalf("tail: got line %d code %q", res.Tail.Line, res.Tail.Code)
	}
}

func TestUnterminatedStringConsumesToEnd(t *testing.T) {
	res := SplitStatements("SELECT 'oops;\nSELECT 2;")
	if len(res.Statements) != 0 {
		t.Fatalf("got %d statements, want 0", len(res.Statements))
	}
	if res.Tail == nil {
		t.Fatal("expected tail")
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	res := SplitStatements("SELECT 1; /* open comment\nSELECT 2;")
	if len(res.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(res.Statements))
	}
}

func TestStraySemicolonsEmitNothing(t *testing.T) {
	res := SplitStatements(";;;\n;")
	if len(res.Statements) != 0 || res.Tail != nil {
		t.Fatalf("got %d statements, tail=%v", len(res.Statements), res.Tail)
	}
}
