// Package platform smooths over OS differences in environment and path
// handling for the interactive frontend.
package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the user's home directory, falling back to USERPROFILE on
// Windows. Empty if neither is set.
func HomeDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}
	return home
}

// HistoryFile returns the path readline should persist input history to, or
// empty when no home directory is available.
func HistoryFile() string {
	home := HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".ion_history")
}

// ContractHome replaces a leading home-directory prefix with ~ for display
// and normalizes separators to forward slashes.
func ContractHome(path string) string {
	home := HomeDir()
	if home != "" && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}
