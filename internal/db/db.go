// Package db opens the cmdkit workflow store.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/cmdkit/cmdkit/internal/config"
)

// InitDB ensures the data directory exists, opens the SQLite database, and
// creates the schema if it does not exist.
//
// If the backing store cannot be opened or migrated (a corrupted file, an
// unwritable data directory), the CLI must still work: InitDB prints a
// warning and falls back to an empty in-memory database. Reads then see an
// empty registry and writes are lost on exit.
func InitDB() (*sql.DB, error) {
	dbPath, err := config.DBPath()
	if err == nil {
		if mkErr := os.MkdirAll(filepath.Dir(dbPath), 0o755); mkErr == nil {
			db, openErr := openAt(dbPath)
			if openErr == nil {
				return db, nil
			}
			err = openErr
		} else {
			err = fmt.Errorf("create data dir: %w", mkErr)
		}
	}

	fmt.Fprintf(os.Stderr, "warning: workflow store unavailable (%v); using an empty in-memory registry\n", err)
	return openAt(":memory:")
}

func openAt(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := ApplyMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
