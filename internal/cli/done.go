package cli

import "fmt"

type DoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Day to mark (YYYY-MM-DD). Defaults to today." default:"today"`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Ledger.MarkDone(c.Name, day); err != nil {
		return err
	}

	fmt.Printf("Marked %s done for %s\n", c.Name, day)
	return nil
}

type UndoCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Day to revert (YYYY-MM-DD). Defaults to today." default:"today"`
}

func (c *UndoCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Ledger.MarkUndone(c.Name, day); err != nil {
		return err
	}

	fmt.Printf("Marked %s undone for %s\n", c.Name, day)
	return nil
}
