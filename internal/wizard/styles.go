package wizard

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			Bold(true)

	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	suggestedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	labelStyle     = lipgloss.NewStyle().Bold(true)
	fileStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	arrowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	exactStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
