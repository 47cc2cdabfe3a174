// Package exporter copies the workflow database out of the data directory.
package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cmdkit/cmdkit/internal/config"
)

// ExportDatabase copies the active cmdkit database to dstPath, creating
// any needed directories.
func ExportDatabase(dstPath string) error {
	src, err := config.DBPath()
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open workflow store: %w", err)
	}
	defer func() { _ = in.Close() }()
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create destination dir: %w", err)
	}
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() { _ = out.Close() }()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy store: %w", err)
	}
	return nil
}
