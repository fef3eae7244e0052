package wizard

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/dagaz/internal/models"
)

// Run drives one interactive session to completion. It returns the
// confirmed batch, or cancelled=true when the user aborted (in which case
// the batch is nil and nothing may be renamed).
func Run(ctx context.Context, p Params) (models.RenameBatch, bool, error) {
	prog := tea.NewProgram(New(p), tea.WithContext(ctx))

	final, err := prog.Run()
	if err != nil {
		return nil, false, fmt.Errorf("wizard: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, false, fmt.Errorf("wizard: unexpected final model %T", final)
	}
	if m.Err() != nil {
		return nil, false, m.Err()
	}
	if m.Cancelled() || m.stage != stageDone {
		return nil, true, nil
	}
	return m.Batch(), false, nil
}
