package internal

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/dagaz/internal/models"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Rename  RenameConfig      `yaml:"rename"`
	Journal JournalConfig     `yaml:"journal"`
}

// NewDefaultConfig returns the configuration used when no config file is
// present.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Rename: RenameConfig{
			Extensions: []string{"ab1", "seq"},
		},
		Journal: JournalConfig{
			Enabled: false,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Rename.Validate(); err != nil {
		return err
	}
	return c.Journal.Validate()
}

// ApplicationConfig holds application-level configuration.
//
// The wizard owns the terminal, so logs never go to stdout: they are written
// to LogFile when set and discarded otherwise.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	LogFile  string     `yaml:"log_file"`
}

// RenameConfig holds the renaming rules.
type RenameConfig struct {
	// Extensions lists accepted input extensions, without the leading dot.
	// Files with other extensions are skipped before the wizard starts.
	Extensions []string `yaml:"extensions"`
	// DefaultVendor overrides the registry's suggestion when set.
	DefaultVendor string `yaml:"default_vendor"`
}

// Validate validates the rename configuration.
func (c *RenameConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Extensions, validation.Required, validation.Each(validation.Required)),
	); err != nil {
		return err
	}
	for _, ext := range c.Extensions {
		if strings.HasPrefix(ext, ".") {
			return fmt.Errorf("rename: extension %q must not include the leading dot", ext)
		}
	}
	if c.DefaultVendor != "" {
		if _, err := models.ParseVendor(c.DefaultVendor); err != nil {
			return fmt.Errorf("rename: default_vendor: %w", err)
		}
	}
	return nil
}

// Accepts reports whether ext (without dot) is an accepted input extension.
// The comparison is case-insensitive; the on-disk case is preserved in the
// output name.
func (c *RenameConfig) Accepts(ext string) bool {
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// JournalConfig holds the rename journal configuration.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Validate validates the journal configuration.
func (c *JournalConfig) Validate() error {
	if c.Enabled && c.Path == "" {
		return fmt.Errorf("journal: enabled but path is empty")
	}
	return nil
}
