package cli

import (
	"fmt"

	"github.com/nmorais/ritmo/internal/models"
	"github.com/nmorais/ritmo/internal/storage"
	"github.com/nmorais/ritmo/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	var habits []models.Habit
	var records []models.CompletionRecord
	err := ctx.Store.WithTx(func(tx storage.Tx) error {
		var err error
		if habits, err = tx.ListHabits(); err != nil {
			return err
		}
		records, err = tx.AllRecords()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to read store contents: %w", err)
	}

	fmt.Printf("Validating %d habit(s) and %d record(s)...\n", len(habits), len(records))
	fmt.Println()

	result := validation.New().Validate(habits, records)
	fmt.Println(result.FormatReport())

	return nil
}
