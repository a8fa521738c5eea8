package cli

import (
	"fmt"

	"github.com/nmorais/ritmo/internal/tracker"
)

type DateCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD). Defaults to today." default:"today"`
}

func (c *DateCmd) Run(ctx *Context) error {
	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	return showDay(ctx, day)
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	return showDay(ctx, tracker.Today())
}

type YesterdayCmd struct{}

func (c *YesterdayCmd) Run(ctx *Context) error {
	return showDay(ctx, tracker.Yesterday())
}

func showDay(ctx *Context, day string) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	statuses, err := ctx.Ledger.StatusForDate(day)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		fmt.Printf("No habits to show for %s\n", day)
		return nil
	}

	fmt.Println(renderStatusTable(day, statuses))
	return nil
}
