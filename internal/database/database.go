// Package database manages the SQLite connection a build runs against.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/smake-dev/smake/internal/errors"
)

// DB wraps the SQLite handle together with the path it was opened from.
type DB struct {
	*sql.DB
	path string
}

// Open opens (creating if necessary) the SQLite database at path,
// enables foreign key enforcement, and verifies the driver responds.
func Open(ctx context.Context, path string) (*DB, error) {
	handle, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &errors.ConnectionError{
			Path:       path,
			Message:    err.Error(),
			Suggestion: "Check that the path is writable and the directory exists",
		}
	}

	// sql.Open is lazy; force the first connection and confirm the
	// library answers before handing the database to the executor.
	var version string
	if err := handle.QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&version); err != nil {
		handle.Close()
		return nil, &errors.ConnectionError{
			Path:       path,
			Message:    fmt.Sprintf("failed to query SQLite version: %v", err),
			Suggestion: "Verify the file is a SQLite database and not locked by another process",
		}
	}

	if _, err := handle.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		handle.Close()
		return nil, errors.NewConnectionError(path, fmt.Sprintf("failed to enable foreign keys: %v", err))
	}

	// Statement order is semantic; a single connection keeps session
	// state (attached schemas, pragmas, open transactions) consistent
	// across statements.
	handle.SetMaxOpenConns(1)

	return &DB{DB: handle, path: path}, nil
}

// Path returns the path this database was opened from.
func (d *DB) Path() string {
	return d.path
}

// Version returns the SQLite library version string.
func (d *DB) Version(ctx context.Context) (string, error) {
	var version string
	if err := d.QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&version); err != nil {
		return "", fmt.Errorf("failed to query SQLite version: %w", err)
	}
	return version, nil
}

// Close closes the underlying handle.
func (d *DB) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
