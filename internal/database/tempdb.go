package database

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// TempDB is a throwaway copy of the target database used by dry runs:
// statements execute for real, against a database nobody keeps.
type TempDB struct {
	*DB
	tempPath string
}

// NewTempCopy clones the database file at sourcePath into the system
// temp directory and opens the clone. A missing source yields an empty
// temp database, matching what a real build against a fresh path would
// see. Close removes the clone.
func NewTempCopy(ctx context.Context, sourcePath string) (*TempDB, error) {
	tmp, err := os.CreateTemp("", "smake_dryrun_*.db")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp database: %w", err)
	}
	tempPath := tmp.Name()

	if src, err := os.Open(sourcePath); err == nil {
		_, copyErr := io.Copy(tmp, src)
		src.Close()
		if copyErr != nil {
			tmp.Close()
			os.Remove(tempPath)
			return nil, fmt.Errorf("failed to copy database: %w", copyErr)
		}
	} else if !os.IsNotExist(err) {
		tmp.Close()
		os.Remove(tempPath)
		return nil, fmt.Errorf("failed to read database %s: %w", sourcePath, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("failed to write temp database: %w", err)
	}

	db, err := Open(ctx, tempPath)
	if err != nil {
		os.Remove(tempPath)
		return nil, err
	}

	return &TempDB{DB: db, tempPath: tempPath}, nil
}

// TempPath returns the location of the throwaway copy.
func (t *TempDB) TempPath() string {
	return t.tempPath
}

// Close closes the handle and removes the copy. The removal error is
// reported only when closing itself succeeded.
func (t *TempDB) Close() error {
	closeErr := t.DB.Close()
	removeErr := os.Remove(t.tempPath)
	if closeErr != nil {
		return closeErr
	}
	if removeErr != nil && !os.IsNotExist(removeErr) {
		return fmt.Errorf("failed to remove temp database %s: %w", filepath.Base(t.tempPath), removeErr)
	}
	return nil
}
