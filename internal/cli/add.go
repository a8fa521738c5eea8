package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nmorais/ritmo/internal/models"
)

type AddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name. Prompts interactively when omitted."`
	Description string `short:"d" help:"Description of the habit."`
	Type        string `short:"t" help:"Tracking type (boolean|numerical)." default:"boolean" enum:"boolean,numerical"`
	StartDate   string `help:"Start date (YYYY-MM-DD). Defaults to today."`
	EndDate     string `help:"End date (YYYY-MM-DD)."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if c.Name == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	trackingType, err := parseTrackingType(c.Type)
	if err != nil {
		return err
	}

	habit, err := ctx.Registry.Create(c.Name, c.Description, trackingType, c.StartDate, c.EndDate)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

// promptForm collects the habit fields interactively when no name was given
// on the command line.
func (c *AddCmd) promptForm() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&c.Description),
			huh.NewSelect[string]().
				Title("Tracking type").
				Options(
					huh.NewOption("boolean (done / not done)", string(models.TrackingBoolean)),
					huh.NewOption("numerical (times per day)", string(models.TrackingNumerical)),
				).
				Value(&c.Type),
		),
	)
	return form.Run()
}
