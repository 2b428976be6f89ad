// Package buildfile loads and validates the JSON buildfile that declares
// what a build does: which database to build, which targets exist, and
// which scripts each target runs.
package buildfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/smake-dev/smake/internal/errors"
)

// DefaultPath is the buildfile looked up when --config is not given.
const DefaultPath = "smake.json"

// DefaultTarget is built when no target argument is given.
const DefaultTarget = "all"

// Buildfile is the parsed smake.json.
//
// Target entries are script paths or glob patterns, resolved relative to
// the buildfile's directory and executed in declaration order. Vars are
// substituted into script text as ${name} before scanning.
type Buildfile struct {
	Database string              `json:"database"`
	Vars     map[string]string   `json:"vars,omitempty"`
	Targets  map[string][]string `json:"targets"`

	// Path is where the buildfile was loaded from. Not part of the JSON.
	Path string `json:"-"`
}

// Load reads and validates a buildfile.
func Load(path string) (*Buildfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewBuildfileError(path, "buildfile not found")
		}
		return nil, errors.NewBuildfileError(path, fmt.Sprintf("failed to read: %v", err))
	}

	var bf Buildfile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, errors.NewBuildfileError(path, fmt.Sprintf("invalid JSON: %v", err))
	}
	bf.Path = path

	if err := bf.validate(); err != nil {
		return nil, err
	}

	return &bf, nil
}

func (b *Buildfile) validate() error {
	if len(b.Targets) == 0 {
		return errors.NewBuildfileError(b.Path, "no targets defined")
	}
	for name, entries := range b.Targets {
		if name == "" {
			return errors.NewBuildfileError(b.Path, "target with empty name")
		}
		if len(entries) == 0 {
			return errors.NewBuildfileError(b.Path, fmt.Sprintf("target %q lists no scripts", name))
		}
		for _, e := range entries {
			if e == "" {
				return errors.NewBuildfileError(b.Path, fmt.Sprintf("target %q contains an empty entry", name))
			}
		}
	}
	return nil
}

// Target returns the script entries for the named target.
func (b *Buildfile) Target(name string) ([]string, error) {
	entries, ok := b.Targets[name]
	if !ok {
		return nil, errors.NewBuildfileError(b.Path,
			fmt.Sprintf("unknown target %q (available: %v)", name, b.TargetNames()))
	}
	return entries, nil
}

// TargetNames returns all target names sorted alphabetically.
func (b *Buildfile) TargetNames() []string {
	names := make([]string, 0, len(b.Targets))
	for name := range b.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
