package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	// Handle ~/path
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unchanged if we can't get home
		}
		return filepath.Join(home, path[2:])
	}

	// Handle standalone ~
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// Expand replaces variables in a path with their values.
// Supported forms:
//
//	~ or ~/path       user home directory
//	$VAR or ${VAR}    environment variables
//
// Unset environment variables expand to the empty string, matching shell
// behavior.
func Expand(path string) string {
	if path == "" {
		return ""
	}

	if strings.Contains(path, "$") {
		path = os.ExpandEnv(path)
	}

	return ExpandTilde(path)
}
