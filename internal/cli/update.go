package cli

import (
	"fmt"

	"github.com/nmorais/ritmo/internal/tracker"
)

type UpdateCmd struct {
	Name         string  `arg:"" help:"Habit name."`
	Description  *string `short:"d" help:"New description."`
	Type         *string `short:"t" help:"New tracking type (boolean|numerical)."`
	StartDate    *string `help:"New start date (YYYY-MM-DD)."`
	EndDate      *string `help:"New end date (YYYY-MM-DD)."`
	ClearEndDate bool    `help:"Remove the end date."`
}

func (c *UpdateCmd) Validate() error {
	if c.ClearEndDate && c.EndDate != nil {
		return fmt.Errorf("--end-date and --clear-end-date are mutually exclusive")
	}
	return nil
}

func (c *UpdateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	upd := tracker.Update{
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
	}
	if c.Type != nil {
		trackingType, err := parseTrackingType(*c.Type)
		if err != nil {
			return err
		}
		upd.TrackingType = &trackingType
	}
	if c.ClearEndDate {
		empty := ""
		upd.EndDate = &empty
	}

	if upd.Description == nil && upd.TrackingType == nil && upd.StartDate == nil && upd.EndDate == nil {
		return fmt.Errorf("nothing to update, supply at least one field")
	}

	habit, err := ctx.Registry.ApplyUpdate(c.Name, upd)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type RenameCmd struct {
	Name    string `arg:"" help:"Current habit name."`
	NewName string `arg:"" help:"New habit name."`
}

func (c *RenameCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	habit, err := ctx.Registry.Rename(c.Name, c.NewName)
	if err != nil {
		return err
	}

	fmt.Printf("Renamed habit: %s -> %s\n", c.Name, habit.Name)
	return nil
}
