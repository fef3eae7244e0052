// Package wizard implements the interactive rename session as a Bubble Tea
// state machine: vendor selection, template/primer edit, date selection,
// confirmation. Renames only ever happen after the terminal Done stage;
// cancelling at any point leaves the file system untouched.
package wizard

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/vendor"
)

type stage int

const (
	stageVendor stage = iota
	stageEdit
	stageDate
	stageConfirm
	stageDone
	stageCancelled
)

type editField int

const (
	fieldTemplate editField = iota
	fieldPrimer
)

// Params configures one wizard session.
type Params struct {
	Files     []string // in argv order
	Registry  *vendor.Registry
	Suggested models.Vendor
	Now       func() time.Time // clock for the default date
}

// Model is the Bubble Tea model for the whole session.
type Model struct {
	registry *vendor.Registry
	files    []string
	now      func() time.Time

	stage stage
	keys  KeyMap

	// vendor stage
	suggested models.Vendor
	cursor    int

	// one extraction per file, in input order; created by the selected
	// vendor pattern, mutated only by user edits afterwards
	extractions []models.Extraction

	// edit stage
	fileIdx int
	field   editField
	input   textinput.Model

	// date stage
	dateInput textinput.Model
	perFile   bool
	dateIdx   int

	errMsg    string
	batch     models.RenameBatch
	cancelled bool
	err       error // fatal, indicates a programming defect
}

// New builds the initial model, with the cursor on the suggested vendor.
func New(p Params) Model {
	now := p.Now
	if now == nil {
		now = time.Now
	}

	in := textinput.New()
	in.CharLimit = 128
	in.Prompt = "> "

	di := textinput.New()
	di.CharLimit = 6
	di.Prompt = "> "
	di.Placeholder = "YYMMDD"

	cursor := 0
	for i, v := range models.Vendors() {
		if v == p.Suggested {
			cursor = i
			break
		}
	}

	return Model{
		registry:  p.Registry,
		files:     p.Files,
		now:       now,
		stage:     stageVendor,
		keys:      DefaultKeyMap(),
		suggested: p.Suggested,
		cursor:    cursor,
		input:     in,
		dateInput: di,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Batch returns the confirmed rename batch; nil unless the session reached
// Done.
func (m Model) Batch() models.RenameBatch { return m.batch }

// Cancelled reports whether the user aborted the session.
func (m Model) Cancelled() bool { return m.cancelled }

// Err returns the fatal error, if any.
func (m Model) Err() error { return m.err }

func (m Model) defaultDate() string {
	return m.now().Format(models.DateFormat)
}

// current returns the extraction under edit.
func (m *Model) current() *models.Extraction {
	return &m.extractions[m.fileIdx]
}

// syncEditInput loads the current file's field into the text input, so an
// exact parse needs only an Enter to acknowledge.
func (m *Model) syncEditInput() {
	e := m.current()
	switch m.field {
	case fieldTemplate:
		m.input.SetValue(e.Template)
	case fieldPrimer:
		m.input.SetValue(e.Primer)
	}
	m.input.CursorEnd()
	m.input.Focus()
}
