package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/nmorais/ritmo/internal/backup"
	"github.com/nmorais/ritmo/internal/models"
	"github.com/nmorais/ritmo/internal/storage"
	"github.com/nmorais/ritmo/internal/validation"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
		defer ctx.Store.Close()
	}

	if dbReachable {
		if err := checkIntegrity(ctx); err != nil {
			fmt.Printf("❌ Database integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Database integrity: OK\n")
		}

		if err := checkSchema(ctx); err != nil {
			fmt.Printf("❌ Schema present: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema present: OK\n")
		}

		if err := checkDataConsistency(ctx); err != nil {
			fmt.Printf("❌ Data consistency: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data consistency: OK\n")
		}
	} else {
		fmt.Printf("⊘ Database integrity: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Schema present: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Data consistency: SKIPPED (database not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkSingleProcess(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock sanity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock sanity: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.DB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkIntegrity(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}

	var result string
	if err := sqliteStore.DB().QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("integrity check failed to run: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check reported: %s", result)
	}
	return nil
}

func checkSchema(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}

	for _, table := range []string{"habits", "habit_days"} {
		var name string
		err := sqliteStore.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			return fmt.Errorf("table %q is missing: %w", table, err)
		}
	}
	return nil
}

func checkDataConsistency(ctx *Context) error {
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

	result := validation.New().Validate(habits, records)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'ritmo backup create'")
	}
	return nil
}

// checkSingleProcess warns when another ritmo process is running. The store
// assumes a single writer at a time.
func checkSingleProcess() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		name := p.Executable()
		if name == self || strings.HasPrefix(name, "ritmo") {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("%d ritmo processes running; concurrent writers are not supported", count)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
