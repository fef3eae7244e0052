package executor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/testutil"
)

func entryFor(path string) models.RenameEntry {
	return models.RenameEntry{
		SourcePath: path,
		Vendor:     models.VendorSangon,
		Template:   "TXPCR",
		Primer:     "SP1",
		Date:       "250601",
		Extension:  "ab1",
	}
}

func TestExecute_RenamesFile(t *testing.T) {
	dir, paths := testutil.TestBatch(t, "0001_31225060307072_(TXPCR)_[SP1].ab1")

	out := Execute(models.RenameBatch{entryFor(paths[0])})
	if len(out) != 1 {
		t.Fatalf("len(out) = %d", len(out))
	}
	if out[0].Status != StatusRenamed {
		t.Fatalf("status = %v (%v)", out[0].Status, out[0].Err)
	}
	want := filepath.Join(dir, "250601.TXPCR.SP1.ab1")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("target missing: %v", err)
	}
	if _, err := os.Stat(paths[0]); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("source still present")
	}
}

func TestExecute_SkipsOnCollision(t *testing.T) {
	dir, paths := testutil.TestBatch(t,
		"0001_31225060307072_(TXPCR)_[SP1].ab1",
		"250601.TXPCR.SP1.ab1", // the target already exists
	)

	out := Execute(models.RenameBatch{entryFor(paths[0])})
	if out[0].Status != StatusSkipped {
		t.Fatalf("status = %v, want skipped", out[0].Status)
	}
	if !errors.Is(out[0].Err, apperr.ErrTargetExists) {
		t.Errorf("err = %v, want ErrTargetExists", out[0].Err)
	}
	// The source file is left byte-for-byte untouched.
	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("source gone: %v", err)
	}
	if string(data) != "trace data" {
		t.Errorf("source content changed: %q", data)
	}
	existing, _ := os.ReadFile(filepath.Join(dir, "250601.TXPCR.SP1.ab1"))
	if string(existing) != "trace data" {
		t.Errorf("existing target overwritten: %q", existing)
	}
}

func TestExecute_FailureDoesNotAbortBatch(t *testing.T) {
	dir, paths := testutil.TestBatch(t, "0002_31225060307073_(GAPDH)_[SP2].ab1")

	gone := entryFor(filepath.Join(dir, "missing.ab1"))
	ok := entryFor(paths[0])
	ok.Template = "GAPDH"
	ok.Primer = "SP2"

	out := Execute(models.RenameBatch{gone, ok})
	if out[0].Status != StatusFailed {
		t.Errorf("first status = %v, want failed", out[0].Status)
	}
	if out[1].Status != StatusRenamed {
		t.Errorf("second status = %v (%v), want renamed", out[1].Status, out[1].Err)
	}
	if FailedCount(out) != 1 {
		t.Errorf("FailedCount = %d, want 1", FailedCount(out))
	}
}

func TestExecute_RejectsInvalidEntry(t *testing.T) {
	_, paths := testutil.TestBatch(t, "a.ab1")
	bad := entryFor(paths[0])
	bad.Date = "99-01"

	out := Execute(models.RenameBatch{bad})
	if out[0].Status != StatusFailed {
		t.Fatalf("status = %v, want failed", out[0].Status)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("source should be untouched: %v", err)
	}
}

func TestExecute_AlreadyStandardized(t *testing.T) {
	_, paths := testutil.TestBatch(t, "250601.TXPCR.SP1.ab1")

	out := Execute(models.RenameBatch{entryFor(paths[0])})
	if out[0].Status != StatusSkipped {
		t.Fatalf("status = %v, want skipped", out[0].Status)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("file should keep its name: %v", err)
	}
}

func TestStatusString(t *testing.T) {
	if StatusRenamed.String() != "renamed" || StatusSkipped.String() != "skipped" || StatusFailed.String() != "failed" {
		t.Error("status display names changed")
	}
}
