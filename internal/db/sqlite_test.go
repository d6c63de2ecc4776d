package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLite_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM catalog_documents`).Scan(&n); err != nil {
		t.Fatalf("slot table missing: %v", err)
	}
	if n != 0 {
		t.Errorf("fresh table has %d rows, want 0", n)
	}

	// Reopening an existing file must not fail on the existing table.
	db2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	db2.Close()
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(" "); err == nil {
		t.Fatal("OpenSQLite with empty path should return error")
	}
}
