package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/framely/framely/internal/tui"
)

// TuiCmd opens the interactive dashboard. It is the default command.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Engine, state), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
