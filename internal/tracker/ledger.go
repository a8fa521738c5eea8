package tracker

import (
	"fmt"

	"github.com/nmorais/ritmo/internal/models"
	"github.com/nmorais/ritmo/internal/storage"
)

// Ledger owns completion records. A record for a (habit, day) pair exists
// exactly while the habit counts as done on that day: marking a boolean
// habit undone deletes its record, and a numerical habit's record is deleted
// when its count reaches zero.
type Ledger struct {
	store storage.Store
}

func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// MarkDone records the habit as done on the given day (today when empty).
// Boolean habits are idempotent: a second call on the same day is a no-op.
// Numerical habits increment their count with no upper bound.
func (l *Ledger) MarkDone(name, day string) error {
	if day == "" {
		day = Today()
	}

	return l.store.WithTx(func(tx storage.Tx) error {
		habit, ok, err := tx.GetHabitByName(name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrHabitNotFound, name)
		}

		record, exists, err := tx.GetRecord(habit.ID, day)
		if err != nil {
			return err
		}

		if !exists {
			record = models.CompletionRecord{HabitID: habit.ID, Day: day}
			if habit.TrackingType == models.TrackingNumerical {
				record.CompletedCount = 1
			} else {
				record.Completed = true
			}
			return tx.InsertRecord(record)
		}

		if habit.TrackingType == models.TrackingNumerical {
			record.CompletedCount++
			return tx.UpdateRecord(record)
		}

		// Boolean habit already done on this day.
		return nil
	})
}

// MarkUndone reverts one mark-done on the given day (today when empty).
// Without a record for the day it is a no-op. Boolean habits lose their
// record; numerical habits decrement, and the record is deleted when the
// count reaches zero.
func (l *Ledger) MarkUndone(name, day string) error {
	if day == "" {
		day = Today()
	}

	return l.store.WithTx(func(tx storage.Tx) error {
		habit, ok, err := tx.GetHabitByName(name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrHabitNotFound, name)
		}

		record, exists, err := tx.GetRecord(habit.ID, day)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}

		if habit.TrackingType == models.TrackingNumerical {
			if record.CompletedCount > 1 {
				record.CompletedCount--
				return tx.UpdateRecord(record)
			}
			return tx.DeleteRecord(habit.ID, day)
		}

		return tx.DeleteRecord(habit.ID, day)
	})
}

// StatusForDate reports every habit's status on the given day (today when
// empty), sorted by habit name. Habits are reported regardless of their
// start/end window; with no habits registered the result is empty.
func (l *Ledger) StatusForDate(day string) ([]models.DayStatus, error) {
	if day == "" {
		day = Today()
	}

	var statuses []models.DayStatus
	err := l.store.WithTx(func(tx storage.Tx) error {
		habits, err := tx.ListHabits()
		if err != nil {
			return err
		}
		records, err := tx.RecordsForDay(day)
		if err != nil {
			return err
		}

		byHabit := make(map[string]models.CompletionRecord, len(records))
		for _, r := range records {
			byHabit[r.HabitID] = r
		}

		for _, habit := range habits {
			status := models.DayStatus{Habit: habit}
			if r, ok := byHabit[habit.ID]; ok {
				status.Done = true
				if habit.TrackingType == models.TrackingNumerical {
					status.Count = r.CompletedCount
				}
			}
			statuses = append(statuses, status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
