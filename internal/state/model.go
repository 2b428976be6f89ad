// Package state persists what a previous build already did, so unchanged
// scripts can be skipped on the next one.
package state

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// BuildState is the on-disk record of the last successful build per
// script. Keys of Scripts are script paths relative to the buildfile.
type BuildState struct {
	Version  int                    `json:"version"`
	Database string                 `json:"database"`
	Scripts  map[string]ScriptState `json:"scripts"`
}

// ScriptState records one script's last successful execution.
type ScriptState struct {
	Checksum string    `json:"checksum"`
	BuiltAt  time.Time `json:"built_at"`
	Target   string    `json:"target"`
}

// FormatVersion is bumped when the state file layout changes.
const FormatVersion = 1

// NewBuildState creates an empty state for the given database path.
func NewBuildState(database string) *BuildState {
	return &BuildState{
		Version:  FormatVersion,
		Database: database,
		Scripts:  make(map[string]ScriptState),
	}
}

// Checksum returns the MD5 hex digest of script content. The digest is
// computed over the on-disk text, before variable expansion, so editing
// the buildfile's vars does not by itself invalidate scripts.
func Checksum(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

// UpToDate reports whether the script was already built with identical
// content.
func (s *BuildState) UpToDate(script, checksum string) bool {
	prev, ok := s.Scripts[script]
	return ok && prev.Checksum == checksum
}

// Record marks a script as successfully built.
func (s *BuildState) Record(script, checksum, target string) {
	if s.Scripts == nil {
		s.Scripts = make(map[string]ScriptState)
	}
	s.Scripts[script] = ScriptState{
		Checksum: checksum,
		BuiltAt:  time.Now().UTC(),
		Target:   target,
	}
}

// Forget removes a script's record, forcing its next build.
func (s *BuildState) Forget(script string) {
	delete(s.Scripts, script)
}
