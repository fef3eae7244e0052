package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/dagaz/internal/models"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Cancellation is available from every state and abandons all
		// in-memory state; nothing has touched the disk yet.
		if key.Matches(msg, m.keys.Cancel) {
			m.stage = stageCancelled
			m.cancelled = true
			return m, tea.Quit
		}

		switch m.stage {
		case stageVendor:
			return m.updateVendor(msg)
		case stageEdit:
			return m.updateEdit(msg)
		case stageDate:
			return m.updateDate(msg)
		case stageConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m Model) updateVendor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vendors := models.Vendors()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + len(vendors) - 1) % len(vendors)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(vendors)
	case key.Matches(msg, m.keys.Accept):
		return m.selectVendor(vendors[m.cursor])
	}
	return m, nil
}

// selectVendor runs the chosen pattern over every file in the batch and
// moves to the edit stage.
func (m Model) selectVendor(v models.Vendor) (tea.Model, tea.Cmd) {
	m.extractions = make([]models.Extraction, 0, len(m.files))
	for _, f := range m.files {
		e, err := m.registry.Parse(v, f)
		if err != nil {
			// Unregistered vendor: a defect, not a user error.
			m.err = err
			return m, tea.Quit
		}
		m.extractions = append(m.extractions, e)
	}
	m.stage = stageEdit
	m.fileIdx = 0
	m.field = fieldTemplate
	m.errMsg = ""
	m.syncEditInput()
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		return m.acceptEditValue()

	case key.Matches(msg, m.keys.CycleVendor):
		// Per-file vendor override: re-parse just this file under the
		// next vendor in the list.
		vendors := models.Vendors()
		idx := 0
		for i, v := range vendors {
			if v == m.current().Vendor {
				idx = i
				break
			}
		}
		next := vendors[(idx+1)%len(vendors)]
		e, err := m.registry.Parse(next, m.current().SourcePath)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.extractions[m.fileIdx] = e
		m.field = fieldTemplate
		m.errMsg = ""
		m.syncEditInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// acceptEditValue stores the edited field and advances template → primer →
// next file. Blank values and values containing dots are rejected in place.
func (m Model) acceptEditValue() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if msg := componentError(value); msg != "" {
		m.errMsg = msg
		return m, nil
	}
	m.errMsg = ""

	switch m.field {
	case fieldTemplate:
		m.current().Template = value
		m.field = fieldPrimer
	case fieldPrimer:
		m.current().Primer = value
		if m.fileIdx+1 < len(m.extractions) {
			m.fileIdx++
			m.field = fieldTemplate
		} else {
			return m.enterDateStage()
		}
	}
	m.syncEditInput()
	return m, nil
}

func (m Model) enterDateStage() (tea.Model, tea.Cmd) {
	m.stage = stageDate
	m.perFile = false
	m.dateIdx = 0
	m.errMsg = ""
	m.input.Blur()
	m.dateInput.SetValue(m.defaultDate())
	m.dateInput.CursorEnd()
	m.dateInput.Focus()
	return m, nil
}

func (m Model) updateDate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.DateMode):
		m.perFile = !m.perFile
		m.dateIdx = 0
		m.errMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		value := strings.TrimSpace(m.dateInput.Value())
		if err := models.ValidDate(value); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		if !m.perFile {
			for i := range m.extractions {
				m.extractions[i].Date = value
			}
			return m.enterConfirmStage()
		}
		m.extractions[m.dateIdx].Date = value
		if m.dateIdx+1 < len(m.extractions) {
			m.dateIdx++
			m.dateInput.SetValue(m.defaultDate())
			m.dateInput.CursorEnd()
			return m, nil
		}
		return m.enterConfirmStage()
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m Model) enterConfirmStage() (tea.Model, tea.Cmd) {
	m.stage = stageConfirm
	m.dateInput.Blur()
	m.errMsg = ""
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.No):
		// Rejection is cheap: back to editing, not cancellation.
		m.stage = stageEdit
		m.fileIdx = 0
		m.field = fieldTemplate
		m.errMsg = ""
		m.syncEditInput()
		return m, nil

	case key.Matches(msg, m.keys.Yes):
		batch := make(models.RenameBatch, 0, len(m.extractions))
		for i, e := range m.extractions {
			entry, err := models.NewRenameEntry(e)
			if err != nil {
				// Should be unreachable after edit/date validation;
				// send the user back to the offending file.
				m.stage = stageEdit
				m.fileIdx = i
				m.field = fieldTemplate
				m.errMsg = err.Error()
				m.syncEditInput()
				return m, nil
			}
			batch = append(batch, entry)
		}
		m.batch = batch
		m.stage = stageDone
		return m, tea.Quit
	}
	return m, nil
}

// componentError validates one filename component: required, and no dots or
// path separators, since dots separate the standardized name.
func componentError(s string) string {
	if s == "" {
		return "value is required"
	}
	if strings.ContainsAny(s, "./\\") {
		return "value must not contain dots or path separators"
	}
	return ""
}
