package db

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// ApplyMigrations applies the embedded schema SQL to the database and
// performs lightweight post-creation migrations (adding new columns when needed).
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return ensureWorkflowColumns(db)
}

// ensureWorkflowColumns checks for columns added after the initial schema
// and adds them when missing, so older databases keep working.
func ensureWorkflowColumns(db *sql.DB) error {
	rows, err := db.Query("PRAGMA table_info(workflows)")
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var name string
		var ctype string
		var notnull int
		var dflt interface{}
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		cols[name] = true
	}
	for _, col := range []string{"author_name", "author_email", "last_run"} {
		if cols[col] {
			continue
		}
		if _, err := db.Exec(fmt.Sprintf("ALTER TABLE workflows ADD COLUMN %s TEXT", col)); err != nil {
			return err
		}
	}
	return nil
}
