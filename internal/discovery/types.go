package discovery

import "time"

// Script is a SQL script file resolved from a target entry.
type Script struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to the buildfile directory
	ModTime      time.Time // Last modification time
}
