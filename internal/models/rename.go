// Package models defines the domain types for dagaz.
package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateFormat is the Go layout producing the YYMMDD date component.
const DateFormat = "060102"

// Vendor identifies which filename convention a file was exported with.
type Vendor int

const (
	VendorSangon Vendor = iota
	VendorRuibio
	VendorGenewiz
	VendorManual
)

// Vendors returns all known vendors in presentation order.
func Vendors() []Vendor {
	return []Vendor{VendorSangon, VendorRuibio, VendorGenewiz, VendorManual}
}

// String returns the display name of the vendor.
func (v Vendor) String() string {
	switch v {
	case VendorSangon:
		return "Sangon"
	case VendorRuibio:
		return "Ruibio"
	case VendorGenewiz:
		return "Genewiz"
	case VendorManual:
		return "Manual"
	}
	return fmt.Sprintf("Vendor(%d)", int(v))
}

// ParseVendor converts a case-insensitive vendor name to its tag.
func ParseVendor(s string) (Vendor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sangon":
		return VendorSangon, nil
	case "ruibio":
		return VendorRuibio, nil
	case "genewiz":
		return VendorGenewiz, nil
	case "manual":
		return VendorManual, nil
	}
	return VendorManual, fmt.Errorf("models: unknown vendor %q", s)
}

// Confidence is the trust level of a parsed extraction. It drives how much
// user correction the wizard demands before a file can be confirmed.
type Confidence int

const (
	ConfidenceUnknown Confidence = iota
	ConfidencePartial
	ConfidenceExact
)

// String returns the display name of the confidence level.
func (c Confidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidencePartial:
		return "partial"
	}
	return "unknown"
}

// Extraction is the mutable intermediate between parsing and confirmation.
// A vendor pattern creates it; afterwards only user edits in the wizard may
// change it.
type Extraction struct {
	SourcePath string
	Vendor     Vendor
	Template   string
	Primer     string
	Date       string // YYMMDD, empty until the date step
	Extension  string // as found on disk, without the leading dot
	Confidence Confidence
}

// BaseName returns the file name (with extension) of the source path.
func (e Extraction) BaseName() string {
	return filepath.Base(e.SourcePath)
}

// RenameEntry is one confirmed rename, immutable once built. It is only
// constructed from a fully edited Extraction via NewRenameEntry.
type RenameEntry struct {
	SourcePath string
	Vendor     Vendor
	Template   string
	Primer     string
	Date       string // YYMMDD
	Extension  string
}

// NewRenameEntry freezes an extraction into a rename entry and validates it.
func NewRenameEntry(e Extraction) (RenameEntry, error) {
	entry := RenameEntry{
		SourcePath: e.SourcePath,
		Vendor:     e.Vendor,
		Template:   e.Template,
		Primer:     e.Primer,
		Date:       e.Date,
		Extension:  e.Extension,
	}
	if err := entry.Validate(); err != nil {
		return RenameEntry{}, err
	}
	return entry, nil
}

// Validate checks the invariants required before execution: all components
// non-empty, the date a real YYMMDD calendar date, and no component carrying
// a dot or path separator (dots are the separators of the target name).
func (r RenameEntry) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SourcePath, validation.Required),
		validation.Field(&r.Template, validation.Required, validation.By(validComponent)),
		validation.Field(&r.Primer, validation.Required, validation.By(validComponent)),
		validation.Field(&r.Date, validation.Required, validation.By(ValidDate)),
		validation.Field(&r.Extension, validation.Required, validation.By(validComponent)),
	)
}

// StandardizedName returns the target file name `YYMMDD.TEMPLATE.PRIMER.ext`.
func (r RenameEntry) StandardizedName() string {
	return fmt.Sprintf("%s.%s.%s.%s", r.Date, r.Template, r.Primer, r.Extension)
}

// TargetPath returns the full destination path, in the same directory as the
// source file.
func (r RenameEntry) TargetPath() string {
	return filepath.Join(filepath.Dir(r.SourcePath), r.StandardizedName())
}

// RenameBatch is the ordered set of confirmed renames for one session.
// Order matches the input file order.
type RenameBatch []RenameEntry

// ValidDate reports whether value is a six-digit string naming a real
// calendar date in YYMMDD form.
func ValidDate(value interface{}) error {
	s, _ := value.(string)
	if len(s) != 6 {
		return fmt.Errorf("must be 6 digits (YYMMDD)")
	}
	if _, err := time.Parse(DateFormat, s); err != nil {
		return fmt.Errorf("not a valid YYMMDD date")
	}
	return nil
}

func validComponent(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, "./\\") {
		return fmt.Errorf("must not contain dots or path separators")
	}
	return nil
}
