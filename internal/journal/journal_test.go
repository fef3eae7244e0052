package journal

import (
	"path/filepath"
	"testing"

	"github.com/starford/dagaz/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAppendAndRecent(t *testing.T) {
	db := openTestDB(t)

	entries := []models.RenameEntry{
		{SourcePath: "/seq/a.ab1", Vendor: models.VendorSangon, Template: "TXPCR", Primer: "SP1", Date: "250601", Extension: "ab1"},
		{SourcePath: "/seq/b.ab1", Vendor: models.VendorRuibio, Template: "K528-1", Primer: "B08", Date: "251206", Extension: "ab1"},
	}
	for _, e := range entries {
		if err := db.Append(e, e.TargetPath()); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := db.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].OldPath != "/seq/b.ab1" {
		t.Errorf("records[0].OldPath = %q", records[0].OldPath)
	}
	if records[0].Vendor != "Ruibio" || records[0].Template != "K528-1" || records[0].Primer != "B08" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].NewPath != "/seq/250601.TXPCR.SP1.ab1" {
		t.Errorf("records[1].NewPath = %q", records[1].NewPath)
	}
	if records[0].RenamedAt.IsZero() {
		t.Error("renamed_at not populated")
	}
}

func TestRecent_LimitAndDefault(t *testing.T) {
	db := openTestDB(t)
	e := models.RenameEntry{SourcePath: "/seq/a.ab1", Vendor: models.VendorManual, Template: "T", Primer: "P", Date: "250601", Extension: "ab1"}
	for i := 0; i < 5; i++ {
		if err := db.Append(e, "/seq/new.ab1"); err != nil {
			t.Fatal(err)
		}
	}

	records, err := db.Recent(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Errorf("len = %d, want 3", len(records))
	}

	records, err = db.Recent(0) // falls back to the default limit
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Errorf("len = %d, want 5", len(records))
	}
}

func TestRecent_Empty(t *testing.T) {
	db := openTestDB(t)
	records, err := db.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty journal, got %d records", len(records))
	}
}
