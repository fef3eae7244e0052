package wizard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the wizard.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Accept      key.Binding
	Cancel      key.Binding
	CycleVendor key.Binding
	DateMode    key.Binding
	Yes         key.Binding
	No          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "cancel"),
		),
		CycleVendor: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("Ctrl+V", "re-parse this file as the next vendor"),
		),
		DateMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "toggle per-file dates"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "back to editing"),
		),
	}
}
