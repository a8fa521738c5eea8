// Package validation checks a store's contents against the data model
// invariants: valid habit definitions, unique names, and presence-based
// completion records that belong to a live habit.
package validation

import (
	"fmt"
	"strings"

	"github.com/nmorais/ritmo/internal/models"
)

type ConflictType string

const (
	ConflictInvalidHabit       ConflictType = "invalid_habit"
	ConflictDuplicateHabitName ConflictType = "duplicate_habit_name"
	ConflictOrphanRecord       ConflictType = "orphan_record"
	ConflictStaleRecord        ConflictType = "stale_record"
)

type Conflict struct {
	Type    ConflictType
	Subject string // habit name or "habit_id day" for records
	Detail  string
}

type Result struct {
	Conflicts []Conflict
}

func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

func (r Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conflict(s):\n", len(r.Conflicts))
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "  [%s] %s: %s\n", c.Type, c.Subject, c.Detail)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateHabits checks every habit definition and name uniqueness.
func (v *Validator) ValidateHabits(habits []models.Habit) Result {
	var result Result

	seen := make(map[string]bool, len(habits))
	for _, h := range habits {
		if err := h.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictInvalidHabit,
				Subject: h.Name,
				Detail:  err.Error(),
			})
		}
		if seen[h.Name] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictDuplicateHabitName,
				Subject: h.Name,
				Detail:  "more than one habit has this name",
			})
		}
		seen[h.Name] = true
	}

	return result
}

// ValidateRecords checks every completion record against the presence
// invariant: a record belongs to a known habit and represents an actual
// completion (boolean records are completed, numerical counts are positive).
func (v *Validator) ValidateRecords(habits []models.Habit, records []models.CompletionRecord) Result {
	var result Result

	byID := make(map[string]models.Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}

	for _, r := range records {
		subject := fmt.Sprintf("%s %s", r.HabitID, r.Day)

		habit, ok := byID[r.HabitID]
		if !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictOrphanRecord,
				Subject: subject,
				Detail:  "record references a habit that no longer exists",
			})
			continue
		}

		switch habit.TrackingType {
		case models.TrackingNumerical:
			if r.CompletedCount <= 0 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:    ConflictStaleRecord,
					Subject: subject,
					Detail:  fmt.Sprintf("numerical record with count %d should have been deleted", r.CompletedCount),
				})
			}
		default:
			if !r.Completed {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:    ConflictStaleRecord,
					Subject: subject,
					Detail:  "boolean record marked not completed should have been deleted",
				})
			}
		}
	}

	return result
}

// Validate runs all checks and merges the results.
func (v *Validator) Validate(habits []models.Habit, records []models.CompletionRecord) Result {
	habitResult := v.ValidateHabits(habits)
	recordResult := v.ValidateRecords(habits, records)
	return Result{Conflicts: append(habitResult.Conflicts, recordResult.Conflicts...)}
}
