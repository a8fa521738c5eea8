package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/nmorais/ritmo/internal/cli"
	"github.com/nmorais/ritmo/internal/storage"
	"github.com/nmorais/ritmo/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database file path." type:"path" default:"~/.ritmo/ritmo.db"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize ritmo storage."`
	Add       cli.AddCmd       `cmd:"" help:"Add a new habit."`
	List      cli.ListCmd      `cmd:"" help:"List habits."`
	Update    cli.UpdateCmd    `cmd:"" help:"Update an existing habit."`
	Rename    cli.RenameCmd    `cmd:"" help:"Rename a habit."`
	Delete    cli.DeleteCmd    `cmd:"" help:"Delete a habit and its records."`
	Done      cli.DoneCmd      `cmd:"" help:"Mark a habit as done."`
	Undo      cli.UndoCmd      `cmd:"" help:"Mark a habit as undone."`
	Date      cli.DateCmd      `cmd:"" help:"Show habit status for a day."`
	Today     cli.TodayCmd     `cmd:"" help:"Show today's habit status."`
	Yesterday cli.YesterdayCmd `cmd:"" help:"Show yesterday's habit status."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive day checklist."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run storage diagnostics."`
	Validate  cli.ValidateCmd  `cmd:"" help:"Check stored data for consistency conflicts."`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ritmo"),
		kong.Description("Personal habit tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	store := storage.NewSQLiteStore(CLI.DB)
	appCtx := &cli.Context{
		Store:    store,
		Registry: tracker.NewRegistry(store),
		Ledger:   tracker.NewLedger(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
