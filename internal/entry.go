// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/executor"
	"github.com/starford/dagaz/internal/journal"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/vendor"
	"github.com/starford/dagaz/internal/wizard"
)

var (
	renamedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{now: time.Now}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger, closeLog, err := newLogger(cfg.App)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	if app.historyLimit > 0 {
		return printHistory(cfg, app.historyLimit)
	}

	files, err := acceptedFiles(cfg, app.files, logger)
	if err != nil {
		return err
	}

	registry := vendor.NewRegistry()
	suggested := registry.Detect(files)
	if cfg.Rename.DefaultVendor != "" {
		if v, err := models.ParseVendor(cfg.Rename.DefaultVendor); err == nil {
			suggested = v
		}
	}
	logger.Info("batch prepared",
		slog.Int("files", len(files)),
		slog.String("suggested_vendor", suggested.String()))

	batch, cancelled, err := wizard.Run(ctx, wizard.Params{
		Files:     files,
		Registry:  registry,
		Suggested: suggested,
		Now:       app.now,
	})
	if err != nil {
		return err
	}
	if cancelled {
		fmt.Println(dimStyle.Render("Cancelled, nothing was renamed."))
		return nil
	}

	outcomes := executor.Execute(batch)
	recordOutcomes(cfg, outcomes, logger)
	printSummary(outcomes)

	if failed := executor.FailedCount(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d files failed to rename", failed, len(outcomes))
	}
	return nil
}

// newLogger builds the structured logger. The wizard owns the terminal, so
// output goes to the configured log file, or nowhere.
func newLogger(cfg ApplicationConfig) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		h := slog.NewJSONHandler(io.Discard, nil)
		return slog.New(h), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(h), func() { f.Close() }, nil
}

// acceptedFiles filters argv down to existing files with an accepted
// extension, preserving order.
func acceptedFiles(cfg *Config, args []string, logger *slog.Logger) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Println(skippedStyle.Render(fmt.Sprintf("skipping %s: %v", arg, err)))
			continue
		}
		if info.IsDir() {
			fmt.Println(skippedStyle.Render(fmt.Sprintf("skipping %s: is a directory", arg)))
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(arg), ".")
		if !cfg.Rename.Accepts(ext) {
			fmt.Println(skippedStyle.Render(fmt.Sprintf("skipping %s: extension %q not accepted", arg, ext)))
			logger.Warn("extension not accepted", slog.String("file", arg))
			continue
		}
		out = append(out, arg)
	}
	if len(out) == 0 {
		return nil, apperr.ErrNoInput
	}
	return out, nil
}

// recordOutcomes appends successful renames to the journal when enabled.
// Journal trouble is logged, never fatal: the renames already happened.
func recordOutcomes(cfg *Config, outcomes []executor.Outcome, logger *slog.Logger) {
	if !cfg.Journal.Enabled {
		return
	}
	db, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		logger.Warn("journal unavailable", slog.String("error", err.Error()))
		return
	}
	defer db.Close()
	for _, o := range outcomes {
		if o.Status != executor.StatusRenamed {
			continue
		}
		if err := db.Append(o.Entry, o.Target); err != nil {
			logger.Warn("journal append failed",
				slog.String("file", o.Entry.SourcePath),
				slog.String("error", err.Error()))
		}
	}
}

func printHistory(cfg *Config, limit int) error {
	if !cfg.Journal.Enabled {
		return fmt.Errorf("journal is disabled; enable it in the config to use --history")
	}
	db, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	records, err := db.Recent(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println(dimStyle.Render("journal is empty"))
		return nil
	}
	for _, r := range records {
		fmt.Printf("%s  %s  %s %s %s\n",
			dimStyle.Render(r.RenamedAt.Format("2006-01-02 15:04")),
			filepath.Base(r.OldPath)+" -> "+filepath.Base(r.NewPath),
			dimStyle.Render(r.Vendor),
			dimStyle.Render(r.Template),
			dimStyle.Render(r.Primer))
	}
	return nil
}

func printSummary(outcomes []executor.Outcome) {
	var renamed, skipped, failed int
	for _, o := range outcomes {
		switch o.Status {
		case executor.StatusRenamed:
			renamed++
			fmt.Printf("%s  %s -> %s\n",
				renamedStyle.Render("renamed"),
				filepath.Base(o.Entry.SourcePath),
				o.Entry.StandardizedName())
		case executor.StatusSkipped:
			skipped++
			fmt.Printf("%s  %s (%v)\n",
				skippedStyle.Render("skipped"),
				filepath.Base(o.Entry.SourcePath),
				o.Err)
		case executor.StatusFailed:
			failed++
			fmt.Printf("%s   %s (%v)\n",
				failedStyle.Render("failed"),
				filepath.Base(o.Entry.SourcePath),
				o.Err)
		}
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d renamed, %d skipped, %d failed", renamed, skipped, failed)))
}
