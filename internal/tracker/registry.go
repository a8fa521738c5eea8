// Package tracker implements the habit registry and the completion ledger.
//
// The registry owns habit definitions; the ledger owns per-day completion
// records and the mark-done / mark-undone rules. Every public operation runs
// inside a single store transaction.
package tracker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nmorais/ritmo/internal/models"
	"github.com/nmorais/ritmo/internal/storage"
)

// Today returns the current calendar day. Days resolve in UTC: "today" and
// "yesterday" are the same for every ritmo invocation regardless of the
// local timezone.
func Today() string {
	return time.Now().UTC().Format(models.DayFormat)
}

// Yesterday returns the calendar day before today, in UTC.
func Yesterday() string {
	return time.Now().UTC().AddDate(0, 0, -1).Format(models.DayFormat)
}

// SortField selects the habit list ordering.
type SortField string

const (
	SortByName      SortField = "name"
	SortByStartDate SortField = "start-date"
	SortByEndDate   SortField = "end-date"
)

// Registry owns habit definitions.
type Registry struct {
	store storage.Store
}

func NewRegistry(store storage.Store) *Registry {
	return &Registry{store: store}
}

// Create registers a new habit and returns it with a freshly assigned id.
// An empty tracking type defaults to boolean and an empty start date
// defaults to today.
func (r *Registry) Create(name, description string, trackingType models.TrackingType, startDate, endDate string) (models.Habit, error) {
	if trackingType == "" {
		trackingType = models.TrackingBoolean
	}
	if startDate == "" {
		startDate = Today()
	}

	habit := models.Habit{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Description:  description,
		TrackingType: trackingType,
		StartDate:    startDate,
		EndDate:      endDate,
	}
	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}

	err := r.store.WithTx(func(tx storage.Tx) error {
		if _, ok, err := tx.GetHabitByName(habit.Name); err != nil {
			return err
		} else if ok {
			return fmt.Errorf("%w: %s", models.ErrHabitExists, habit.Name)
		}
		return tx.InsertHabit(habit)
	})
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Rename changes a habit's name. The new name must be valid and unused.
func (r *Registry) Rename(name, newName string) (models.Habit, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return models.Habit{}, models.NewValidationError("habit name must not be empty")
	}

	var renamed models.Habit
	err := r.store.WithTx(func(tx storage.Tx) error {
		habit, ok, err := tx.GetHabitByName(name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrHabitNotFound, name)
		}
		if newName != habit.Name {
			if _, taken, err := tx.GetHabitByName(newName); err != nil {
				return err
			} else if taken {
				return fmt.Errorf("%w: %s", models.ErrHabitExists, newName)
			}
		}
		habit.Name = newName
		renamed = habit
		return tx.UpdateHabit(habit)
	})
	if err != nil {
		return models.Habit{}, err
	}
	return renamed, nil
}

// Update holds the optional fields of a partial habit update. Nil fields are
// left untouched. A non-nil empty EndDate clears the end date.
type Update struct {
	Description  *string
	TrackingType *models.TrackingType
	StartDate    *string
	EndDate      *string
}

// ApplyUpdate changes only the supplied fields of a habit. Date ordering is
// re-validated against the resulting habit, so an update that would leave
// the end date before the start date is rejected without effect.
func (r *Registry) ApplyUpdate(name string, upd Update) (models.Habit, error) {
	var updated models.Habit
	err := r.store.WithTx(func(tx storage.Tx) error {
		habit, ok, err := tx.GetHabitByName(name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrHabitNotFound, name)
		}

		if upd.Description != nil {
			habit.Description = *upd.Description
		}
		if upd.TrackingType != nil {
			habit.TrackingType = *upd.TrackingType
		}
		if upd.StartDate != nil {
			habit.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			habit.EndDate = *upd.EndDate
		}

		if err := habit.Validate(); err != nil {
			return err
		}
		updated = habit
		return tx.UpdateHabit(habit)
	})
	if err != nil {
		return models.Habit{}, err
	}
	return updated, nil
}

// Delete removes a habit and all its completion records in one transaction.
func (r *Registry) Delete(name string) error {
	return r.store.WithTx(func(tx storage.Tx) error {
		habit, ok, err := tx.GetHabitByName(name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrHabitNotFound, name)
		}
		if err := tx.DeleteRecordsForHabit(habit.ID); err != nil {
			return err
		}
		return tx.DeleteHabit(habit.ID)
	})
}

// FindByName looks up a habit. Absence is reported via the bool, not an error.
func (r *Registry) FindByName(name string) (models.Habit, bool, error) {
	var habit models.Habit
	var found bool
	err := r.store.WithTx(func(tx storage.Tx) error {
		var err error
		habit, found, err = tx.GetHabitByName(name)
		return err
	})
	if err != nil {
		return models.Habit{}, false, err
	}
	return habit, found, nil
}

// ListAll returns every habit sorted by the given field. Habits with no end
// date sort after dated ones when sorting by end date; reverse flips the
// whole ordering.
func (r *Registry) ListAll(sortBy SortField, reverse bool) ([]models.Habit, error) {
	var habits []models.Habit
	err := r.store.WithTx(func(tx storage.Tx) error {
		var err error
		habits, err = tx.ListHabits()
		return err
	})
	if err != nil {
		return nil, err
	}

	sortHabits(habits, sortBy, reverse)
	return habits, nil
}

func sortHabits(habits []models.Habit, sortBy SortField, reverse bool) {
	var less func(a, b models.Habit) bool

	switch sortBy {
	case SortByStartDate:
		less = func(a, b models.Habit) bool { return a.StartDate < b.StartDate }
	case SortByEndDate:
		less = func(a, b models.Habit) bool {
			// Null-last: open-ended habits sort after dated ones.
			if (a.EndDate == "") != (b.EndDate == "") {
				return a.EndDate != ""
			}
			return a.EndDate < b.EndDate
		}
	default:
		less = func(a, b models.Habit) bool { return a.Name < b.Name }
	}

	sort.SliceStable(habits, func(i, j int) bool {
		if reverse {
			return less(habits[j], habits[i])
		}
		return less(habits[i], habits[j])
	})
}
