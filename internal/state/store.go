package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store handles persistence of build state
type Store struct {
	filePath string
}

// NewStore creates a new state store
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
	}
}

// Save writes build state to disk as JSON
func (s *Store) Save(state *BuildState) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal build state: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// Load reads build state from disk. A missing file is not an error: the
// first build of a project starts from an empty state.
func (s *Store) Load(database string) (*BuildState, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewBuildState(database), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state BuildState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", s.filePath, err)
	}

	if state.Version != FormatVersion {
		// Stale format: rebuilding everything is always safe.
		return NewBuildState(database), nil
	}
	if state.Database != database {
		// State from a different database must not suppress builds.
		return NewBuildState(database), nil
	}
	if state.Scripts == nil {
		state.Scripts = make(map[string]ScriptState)
	}

	return &state, nil
}

// Exists checks if the state file exists
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Delete removes the state file
func (s *Store) Delete() error {
	if !s.Exists() {
		return nil
	}
	return os.Remove(s.filePath)
}

// Path returns the file path where build state is stored
func (s *Store) Path() string {
	return s.filePath
}
