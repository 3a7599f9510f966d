// Package pathutil abbreviates filesystem paths for display, replacing
// the home directory prefix with ~ the way shell prompts do.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Siblings of the home directory that are not user homes and therefore
// never abbreviated (e.g. /Users/Shared on macOS).
var nonUserSiblings = map[string]bool{
	"Shared":  true,
	"Guest":   true,
	"Default": true,
}

// Abbreviate rewrites path relative to home: the home directory itself
// becomes "~", anything nested under it gets a "~/" prefix, and a
// sibling user home such as /Users/bob/src becomes ~bob/src. Paths
// outside the home directory's parent are returned unchanged. Both
// arguments must already be absolute and clean.
func Abbreviate(path, home string) string {
	if home == "" || path == "" {
		return path
	}

	if path == home {
		return "~"
	}
	sep := string(filepath.Separator)
	if strings.HasPrefix(path, home+sep) {
		return "~" + path[len(home):]
	}

	parent := filepath.Dir(home)
	if parent == sep || parent == "." {
		return path
	}
	if rest, ok := strings.CutPrefix(path, parent+sep); ok {
		name, _, _ := strings.Cut(rest, sep)
		if name != "" && !nonUserSiblings[name] {
			return "~" + rest
		}
	}
	return path
}

// Display resolves path to an absolute canonical form and abbreviates
// it against the current user's home directory.
func Display(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	abs = filepath.Clean(abs)

	home, err := os.UserHomeDir()
	if err != nil {
		return abs
	}
	return Abbreviate(abs, filepath.Clean(home))
}
