package validation

import (
	"strings"
	"testing"

	"github.com/nmorais/ritmo/internal/models"
)

func TestValidateHabits_DuplicateNames(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{ID: "1", Name: "Read", TrackingType: models.TrackingBoolean, StartDate: "2024-01-01"},
		{ID: "2", Name: "Meditate", TrackingType: models.TrackingBoolean, StartDate: "2024-01-01"},
		{ID: "3", Name: "Read", TrackingType: models.TrackingNumerical, StartDate: "2024-01-01"},
	}

	result := validator.ValidateHabits(habits)

	if !result.HasConflicts() {
		t.Fatal("expected to detect duplicate habit names")
	}

	found := false
	for _, conflict := range result.Conflicts {
		if conflict.Type == ConflictDuplicateHabitName {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected ConflictDuplicateHabitName conflict type")
	}
}

func TestValidateHabits_InvalidDefinition(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{ID: "1", Name: "Read", TrackingType: models.TrackingBoolean, StartDate: "2024-06-01", EndDate: "2024-01-01"},
	}

	result := validator.ValidateHabits(habits)
	if len(result.Conflicts) != 1 || result.Conflicts[0].Type != ConflictInvalidHabit {
		t.Fatalf("expected one ConflictInvalidHabit, got %+v", result.Conflicts)
	}
}

func TestValidateRecords_Orphans(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{ID: "1", Name: "Read", TrackingType: models.TrackingNumerical, StartDate: "2024-01-01"},
	}
	records := []models.CompletionRecord{
		{HabitID: "1", Day: "2024-01-01", CompletedCount: 2},
		{HabitID: "gone", Day: "2024-01-01", Completed: true},
	}

	result := validator.ValidateRecords(habits, records)
	if len(result.Conflicts) != 1 || result.Conflicts[0].Type != ConflictOrphanRecord {
		t.Fatalf("expected one ConflictOrphanRecord, got %+v", result.Conflicts)
	}
}

func TestValidateRecords_StaleRecords(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{ID: "1", Name: "Read", TrackingType: models.TrackingNumerical, StartDate: "2024-01-01"},
		{ID: "2", Name: "Meditate", TrackingType: models.TrackingBoolean, StartDate: "2024-01-01"},
	}
	records := []models.CompletionRecord{
		{HabitID: "1", Day: "2024-01-01", CompletedCount: 0},
		{HabitID: "2", Day: "2024-01-01", Completed: false},
		{HabitID: "2", Day: "2024-01-02", Completed: true},
	}

	result := validator.ValidateRecords(habits, records)
	if len(result.Conflicts) != 2 {
		t.Fatalf("expected two stale-record conflicts, got %+v", result.Conflicts)
	}
	for _, c := range result.Conflicts {
		if c.Type != ConflictStaleRecord {
			t.Errorf("expected ConflictStaleRecord, got %s", c.Type)
		}
	}
}

func TestValidateCleanStore(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{ID: "1", Name: "Read", TrackingType: models.TrackingNumerical, StartDate: "2024-01-01"},
	}
	records := []models.CompletionRecord{
		{HabitID: "1", Day: "2024-01-01", CompletedCount: 3},
	}

	result := validator.Validate(habits, records)
	if result.HasConflicts() {
		t.Fatalf("expected no conflicts, got %+v", result.Conflicts)
	}
	if !strings.Contains(result.FormatReport(), "No conflicts") {
		t.Errorf("unexpected report: %s", result.FormatReport())
	}
}

func TestFormatReportListsConflicts(t *testing.T) {
	result := Result{Conflicts: []Conflict{
		{Type: ConflictOrphanRecord, Subject: "gone 2024-01-01", Detail: "record references a habit that no longer exists"},
	}}

	report := result.FormatReport()
	if !strings.Contains(report, "1 conflict") || !strings.Contains(report, string(ConflictOrphanRecord)) {
		t.Errorf("unexpected report: %s", report)
	}
}
