// Package config resolves the filesystem locations used by cmdkit.
package config

import (
	"os"
	"path/filepath"
)

// DataDir returns the directory used to store cmdkit data. The
// CMDKIT_DATA_DIR environment variable overrides the default
// dot-directory in the user's home (tests rely on this override).
func DataDir() (string, error) {
	if dir := os.Getenv("CMDKIT_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cmdkit"), nil
}

// DBPath returns the full path to the SQLite database file.
func DBPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "cmdkit.db"), nil
}

// ProfilePath returns the full path to the stored author profile.
func ProfilePath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "profile.json"), nil
}
