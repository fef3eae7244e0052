package wizard

import (
	"fmt"
	"strings"

	"github.com/starford/dagaz/internal/models"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.stage {
	case stageVendor:
		return m.viewVendor()
	case stageEdit:
		return m.viewEdit()
	case stageDate:
		return m.viewDate()
	case stageConfirm:
		return m.viewConfirm()
	}
	// Done and Cancelled quit immediately; nothing to draw.
	return ""
}

func (m Model) viewVendor() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select vendor"))
	b.WriteString(fmt.Sprintf("  %d file(s)\n\n", len(m.files)))
	for i, v := range models.Vendors() {
		prefix := "  "
		line := v.String()
		if v == m.suggested {
			line += suggestedStyle.Render("  (suggested)")
		}
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + line + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ move · Enter select · Esc cancel"))
	return b.String()
}

func (m Model) viewEdit() string {
	e := m.extractions[m.fileIdx]
	var b strings.Builder
	b.WriteString(titleStyle.Render("Template & primer"))
	b.WriteString(fmt.Sprintf("  file %d/%d\n\n", m.fileIdx+1, len(m.extractions)))
	b.WriteString(fileStyle.Render(e.BaseName()) + "\n")
	b.WriteString(fmt.Sprintf("vendor %s · parse %s\n\n", e.Vendor, confidenceBadge(e.Confidence)))

	label := "Template"
	if m.field == fieldPrimer {
		label = "Primer"
	}
	b.WriteString(labelStyle.Render(label) + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("Enter accept · Ctrl+V next vendor for this file · Esc cancel"))
	return b.String()
}

func (m Model) viewDate() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Date (YYMMDD)"))
	if m.perFile {
		e := m.extractions[m.dateIdx]
		b.WriteString(fmt.Sprintf("  file %d/%d\n\n", m.dateIdx+1, len(m.extractions)))
		b.WriteString(fileStyle.Render(e.BaseName()) + "\n\n")
	} else {
		b.WriteString(fmt.Sprintf("  applies to all %d file(s)\n\n", len(m.extractions)))
	}
	b.WriteString(m.dateInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("Enter accept · Tab toggle per-file dates · Esc cancel"))
	return b.String()
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm renames") + "\n\n")

	oldWidth := 0
	for _, e := range m.extractions {
		if n := len(e.BaseName()); n > oldWidth {
			oldWidth = n
		}
	}
	for _, e := range m.extractions {
		newName := fmt.Sprintf("%s.%s.%s.%s", e.Date, e.Template, e.Primer, e.Extension)
		b.WriteString(fmt.Sprintf("%-*s %s %s\n",
			oldWidth, e.BaseName(),
			arrowStyle.Render("->"),
			fileStyle.Render(newName)))
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(fmt.Sprintf("Rename %d file(s)?  y confirm · n edit again · Esc cancel", len(m.extractions))))
	return b.String()
}

func confidenceBadge(c models.Confidence) string {
	switch c {
	case models.ConfidenceExact:
		return exactStyle.Render(c.String())
	case models.ConfidencePartial:
		return partialStyle.Render(c.String())
	}
	return unknownStyle.Render(c.String())
}
