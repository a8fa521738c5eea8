package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/nmorais/ritmo/internal/models"
)

func setupTestStore(t *testing.T) (*SQLiteStore, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}

	cleanup := func() {
		store.Close()
	}

	return store, cleanup
}

func testHabit(id, name string) models.Habit {
	return models.Habit{
		ID:           id,
		Name:         name,
		TrackingType: models.TrackingBoolean,
		StartDate:    "2024-01-01",
	}
}

func TestLoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected error loading uninitialized storage")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
}

func TestHabitRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	habit := testHabit("habit-1", "Read")
	habit.Description = "ten pages"
	habit.EndDate = "2024-06-01"

	err := store.WithTx(func(tx Tx) error {
		return tx.InsertHabit(habit)
	})
	if err != nil {
		t.Fatalf("failed to insert habit: %v", err)
	}

	err = store.WithTx(func(tx Tx) error {
		got, ok, err := tx.GetHabitByName("Read")
		if err != nil {
			return err
		}
		if !ok {
			t.Fatal("habit not found after insert")
		}
		if got != habit {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, habit)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read habit: %v", err)
	}
}

func TestEmptyEndDateStoredAsNull(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.WithTx(func(tx Tx) error {
		return tx.InsertHabit(testHabit("habit-1", "Read"))
	})
	if err != nil {
		t.Fatalf("failed to insert habit: %v", err)
	}

	_ = store.WithTx(func(tx Tx) error {
		got, _, err := tx.GetHabitByName("Read")
		if err != nil {
			return err
		}
		if got.EndDate != "" {
			t.Errorf("expected empty end date, got %q", got.EndDate)
		}
		return nil
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	sentinel := errors.New("abort")
	err := store.WithTx(func(tx Tx) error {
		if err := tx.InsertHabit(testHabit("habit-1", "Read")); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	_ = store.WithTx(func(tx Tx) error {
		_, ok, err := tx.GetHabitByName("Read")
		if err != nil {
			return err
		}
		if ok {
			t.Error("insert should have been rolled back")
		}
		return nil
	})
}

func TestDuplicateNameRejectedBySchema(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.WithTx(func(tx Tx) error {
		return tx.InsertHabit(testHabit("habit-1", "Read"))
	})
	if err != nil {
		t.Fatalf("failed to insert habit: %v", err)
	}

	err = store.WithTx(func(tx Tx) error {
		return tx.InsertHabit(testHabit("habit-2", "Read"))
	})
	if err == nil {
		t.Fatal("expected unique constraint violation")
	}
	var se *models.StoreError
	if !errors.As(err, &se) {
		t.Errorf("expected StoreError, got %T", err)
	}
}

func TestDuplicateRecordRejectedBySchema(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	record := models.CompletionRecord{HabitID: "habit-1", Day: "2024-01-01", Completed: true}

	err := store.WithTx(func(tx Tx) error {
		return tx.InsertRecord(record)
	})
	if err != nil {
		t.Fatalf("failed to insert record: %v", err)
	}

	err = store.WithTx(func(tx Tx) error {
		return tx.InsertRecord(record)
	})
	if err == nil {
		t.Fatal("expected primary key violation for duplicate (habit, day)")
	}
}

func TestRecordRoundTripAndDelete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	record := models.CompletionRecord{HabitID: "habit-1", Day: "2024-01-01", CompletedCount: 3}

	err := store.WithTx(func(tx Tx) error {
		return tx.InsertRecord(record)
	})
	if err != nil {
		t.Fatalf("failed to insert record: %v", err)
	}

	_ = store.WithTx(func(tx Tx) error {
		got, ok, err := tx.GetRecord("habit-1", "2024-01-01")
		if err != nil {
			return err
		}
		if !ok {
			t.Fatal("record not found after insert")
		}
		if got != record {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, record)
		}
		return nil
	})

	err = store.WithTx(func(tx Tx) error {
		return tx.DeleteRecord("habit-1", "2024-01-01")
	})
	if err != nil {
		t.Fatalf("failed to delete record: %v", err)
	}

	_ = store.WithTx(func(tx Tx) error {
		_, ok, err := tx.GetRecord("habit-1", "2024-01-01")
		if err != nil {
			return err
		}
		if ok {
			t.Error("record still present after delete")
		}
		return nil
	})
}

func TestRecordsForDay(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.WithTx(func(tx Tx) error {
		records := []models.CompletionRecord{
			{HabitID: "habit-1", Day: "2024-01-01", Completed: true},
			{HabitID: "habit-2", Day: "2024-01-01", CompletedCount: 2},
			{HabitID: "habit-1", Day: "2024-01-02", Completed: true},
		}
		for _, r := range records {
			if err := tx.InsertRecord(r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to insert records: %v", err)
	}

	_ = store.WithTx(func(tx Tx) error {
		got, err := tx.RecordsForDay("2024-01-01")
		if err != nil {
			return err
		}
		if len(got) != 2 {
			t.Errorf("expected 2 records for 2024-01-01, got %d", len(got))
		}
		return nil
	})
}

func TestDeleteRecordsForHabit(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.WithTx(func(tx Tx) error {
		for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
			if err := tx.InsertRecord(models.CompletionRecord{HabitID: "habit-1", Day: day, Completed: true}); err != nil {
				return err
			}
		}
		return tx.InsertRecord(models.CompletionRecord{HabitID: "habit-2", Day: "2024-01-01", Completed: true})
	})
	if err != nil {
		t.Fatalf("failed to insert records: %v", err)
	}

	err = store.WithTx(func(tx Tx) error {
		return tx.DeleteRecordsForHabit("habit-1")
	})
	if err != nil {
		t.Fatalf("failed to delete records: %v", err)
	}

	_ = store.WithTx(func(tx Tx) error {
		for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
			_, ok, err := tx.GetRecord("habit-1", day)
			if err != nil {
				return err
			}
			if ok {
				t.Errorf("record for habit-1 %s should have been deleted", day)
			}
		}
		_, ok, err := tx.GetRecord("habit-2", "2024-01-01")
		if err != nil {
			return err
		}
		if !ok {
			t.Error("record for habit-2 should have been kept")
		}
		return nil
	})
}
