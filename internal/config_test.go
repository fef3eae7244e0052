package internal

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestRenameConfig_Accepts(t *testing.T) {
	cfg := NewDefaultConfig()
	if !cfg.Rename.Accepts("ab1") {
		t.Error("ab1 should be accepted")
	}
	if !cfg.Rename.Accepts("AB1") {
		t.Error("extension matching should be case-insensitive")
	}
	if cfg.Rename.Accepts("fastq") {
		t.Error("fastq should not be accepted by default")
	}
}

func TestRenameConfig_EmptyExtensions(t *testing.T) {
	cfg := RenameConfig{Extensions: nil}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty extension list should fail validation")
	}
}

func TestRenameConfig_LeadingDotRejected(t *testing.T) {
	cfg := RenameConfig{Extensions: []string{".ab1"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("leading dot should fail validation")
	}
	if !strings.Contains(err.Error(), "leading dot") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRenameConfig_DefaultVendor(t *testing.T) {
	cfg := RenameConfig{Extensions: []string{"ab1"}, DefaultVendor: "ruibio"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("known vendor should pass: %v", err)
	}
	cfg.DefaultVendor = "illumina"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown vendor should fail validation")
	}
}

func TestJournalConfig_EnabledNeedsPath(t *testing.T) {
	cfg := JournalConfig{Enabled: true, Path: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("enabled journal without path should fail")
	}
	cfg.Path = "/tmp/journal.db"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("enabled journal with path should pass: %v", err)
	}
}

func TestFullConfig_JournalValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch journal error")
	}
}
