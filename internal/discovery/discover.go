// Package discovery resolves a target's script entries to concrete files
// on disk, preserving declaration order.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve expands the given entries (literal paths or glob patterns)
// relative to root into an ordered list of scripts. Literal paths must
// exist; glob matches are sorted lexicographically so that numbered
// scripts run in a predictable order. A file matched twice is kept once,
// at its first occurrence.
func Resolve(root string, entries []string) ([]Script, error) {
	var scripts []Script
	seen := make(map[string]bool)

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to get absolute path for %s: %w", path, err)
		}
		if seen[abs] {
			return nil
		}
		seen[abs] = true

		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("script not found: %s", path)
		}
		if info.IsDir() {
			return fmt.Errorf("script is a directory: %s", path)
		}

		rel, err := filepath.Rel(root, abs)
		if err != nil {
			rel = path
		}

		scripts = append(scripts, Script{
			Path:         abs,
			RelativePath: rel,
			ModTime:      info.ModTime(),
		})
		return nil
	}

	for _, entry := range entries {
		pattern := entry
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, pattern)
		}

		if !isGlob(entry) {
			if err := add(pattern); err != nil {
				return nil, err
			}
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", entry, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matches no files", entry)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if err := add(m); err != nil {
				return nil, err
			}
		}
	}

	return scripts, nil
}

// isGlob reports whether the entry contains glob metacharacters.
func isGlob(entry string) bool {
	return strings.ContainsAny(entry, "*?[")
}
