package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitDBCreatesStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CMDKIT_DATA_DIR", filepath.Join(dir, "nested"))

	dbConn, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB(): %v", err)
	}
	defer func() { _ = dbConn.Close() }()

	if _, err := os.Stat(filepath.Join(dir, "nested", "cmdkit.db")); err != nil {
		t.Fatalf("expected database file to exist: %v", err)
	}

	var n int
	if err := dbConn.QueryRow("SELECT COUNT(*) FROM workflows").Scan(&n); err != nil {
		t.Fatalf("query workflows: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty registry, got %d rows", n)
	}
}

func TestInitDBDegradesOnCorruptStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CMDKIT_DATA_DIR", dir)

	// Not a SQLite file: opening it must not break the CLI.
	if err := os.WriteFile(filepath.Join(dir, "cmdkit.db"), []byte("this is not a database"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	dbConn, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB() should degrade, not fail: %v", err)
	}
	defer func() { _ = dbConn.Close() }()

	var n int
	if err := dbConn.QueryRow("SELECT COUNT(*) FROM workflows").Scan(&n); err != nil {
		t.Fatalf("query against fallback store: %v", err)
	}
	if n != 0 {
		t.Fatalf("fallback registry should be empty, got %d rows", n)
	}
}
