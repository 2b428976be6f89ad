// Package testutil provides SQLite helpers for tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/smake-dev/smake/internal/database"
)

// OpenTempDB opens a fresh SQLite database in a per-test temp directory
// and closes it when the test finishes.
func OpenTempDB(t *testing.T) *database.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "smake_test.db")
	db, err := database.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

// ExecScript runs raw SQL against the test database and fails the test
// on error. Useful for seeding fixtures.
func ExecScript(t *testing.T, db *database.DB, sql string) {
	t.Helper()
	if _, err := db.ExecContext(context.Background(), sql); err != nil {
		t.Fatalf("failed to execute fixture SQL: %v", err)
	}
}
