package config

import (
	"path/filepath"
	"testing"
)

func TestDataDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CMDKIT_DATA_DIR", dir)

	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir(): %v", err)
	}
	if got != dir {
		t.Fatalf("DataDir() = %q, want %q", got, dir)
	}

	dbPath, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if dbPath != filepath.Join(dir, "cmdkit.db") {
		t.Fatalf("unexpected db path: %s", dbPath)
	}
}

func TestDataDirDefaultsToHome(t *testing.T) {
	t.Setenv("CMDKIT_DATA_DIR", "")
	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir(): %v", err)
	}
	if filepath.Base(got) != ".cmdkit" {
		t.Fatalf("expected a .cmdkit dot-directory, got %s", got)
	}
}
