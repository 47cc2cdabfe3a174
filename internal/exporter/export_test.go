package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmdkit/cmdkit/internal/db"
	"github.com/cmdkit/cmdkit/internal/importer"
	"github.com/cmdkit/cmdkit/internal/registry"
)

func TestExportImportRoundTrip(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("CMDKIT_DATA_DIR", dataDir)

	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB(): %v", err)
	}
	r := registry.NewRepository(dbConn)
	if _, err := r.CreateWorkflow("hello", nil, nil, nil, []string{"echo hi"}); err != nil {
		t.Fatalf("CreateWorkflow(): %v", err)
	}
	_ = dbConn.Close()

	dst := filepath.Join(t.TempDir(), "backup", "cmdkit.db")
	if err := ExportDatabase(dst); err != nil {
		t.Fatalf("ExportDatabase(): %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}

	// Import refuses to clobber without overwrite.
	if err := importer.ImportDatabase(dst, false); err == nil {
		t.Fatalf("expected refusal without overwrite")
	}
	if err := importer.ImportDatabase(dst, true); err != nil {
		t.Fatalf("ImportDatabase(overwrite): %v", err)
	}

	dbConn, err = db.InitDB()
	if err != nil {
		t.Fatalf("InitDB() after import: %v", err)
	}
	defer func() { _ = dbConn.Close() }()
	wf, err := registry.NewRepository(dbConn).GetWorkflowByName("hello")
	if err != nil || wf == nil {
		t.Fatalf("workflow lost across export/import: wf=%v err=%v", wf, err)
	}
}
