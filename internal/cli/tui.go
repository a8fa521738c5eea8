package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmorais/ritmo/internal/tui"
)

type TuiCmd struct {
	Date string `help:"Day to show (YYYY-MM-DD). Defaults to today." default:"today"`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Ledger, day), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
