// Package executor applies a confirmed rename batch to the file system.
package executor

import (
	"fmt"
	"os"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/models"
)

// Status classifies the result of one attempted rename.
type Status int

const (
	StatusRenamed Status = iota
	StatusSkipped
	StatusFailed
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusSkipped:
		return "skipped"
	}
	return "failed"
}

// Outcome is the per-file result of executing a batch.
type Outcome struct {
	Entry  models.RenameEntry
	Target string
	Status Status
	Err    error // set for StatusSkipped and StatusFailed
}

// Execute renames every entry of the batch, one file at a time, in batch
// order. Entries are independent: one failure never aborts the rest. An
// existing target is never overwritten; the entry is skipped and the
// source file left untouched.
func Execute(batch models.RenameBatch) []Outcome {
	out := make([]Outcome, 0, len(batch))
	for _, entry := range batch {
		out = append(out, executeOne(entry))
	}
	return out
}

func executeOne(entry models.RenameEntry) Outcome {
	target := entry.TargetPath()
	o := Outcome{Entry: entry, Target: target}

	if err := entry.Validate(); err != nil {
		o.Status = StatusFailed
		o.Err = fmt.Errorf("executor: invalid entry: %w", err)
		return o
	}
	if entry.SourcePath == target {
		// Already standardized under the chosen name.
		o.Status = StatusSkipped
		o.Err = fmt.Errorf("executor: source already has the target name")
		return o
	}
	if _, err := os.Lstat(target); err == nil {
		o.Status = StatusSkipped
		o.Err = fmt.Errorf("executor: %s: %w", entry.StandardizedName(), apperr.ErrTargetExists)
		return o
	}
	if err := os.Rename(entry.SourcePath, target); err != nil {
		o.Status = StatusFailed
		o.Err = fmt.Errorf("executor: rename: %w", err)
		return o
	}
	o.Status = StatusRenamed
	return o
}

// FailedCount returns how many outcomes ended in StatusFailed.
// Skipped entries are reported but do not count as errors.
func FailedCount(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			n++
		}
	}
	return n
}
