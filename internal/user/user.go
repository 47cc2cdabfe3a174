// Package user stores the author profile used as the default save author.
package user

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cmdkit/cmdkit/internal/config"
)

// Profile holds persisted author metadata.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// SetProfile saves the author profile to disk.
func SetProfile(p Profile) error {
	pfile, err := config.ProfilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(pfile), 0o755); err != nil {
		return err
	}
	f, err := os.Create(pfile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// GetProfile reads the author profile. Returns (Profile, true, nil) if found.
func GetProfile() (Profile, bool, error) {
	pfile, err := config.ProfilePath()
	if err != nil {
		return Profile{}, false, err
	}
	b, err := os.ReadFile(pfile)
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, false, nil
		}
		return Profile{}, false, err
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return Profile{}, false, err
	}
	return p, true, nil
}

// ClearProfile removes the persisted profile.
func ClearProfile() error {
	pfile, err := config.ProfilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(pfile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
