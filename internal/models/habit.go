package models

import (
	"fmt"
	"strings"
	"time"
)

// DayFormat is the calendar-day format used everywhere in ritmo.
// Records and habit windows have date-only granularity; there is no
// time-of-day component anywhere in the data model.
const DayFormat = "2006-01-02"

type TrackingType string

const (
	// TrackingBoolean habits are either done or not done on a given day.
	TrackingBoolean TrackingType = "boolean"
	// TrackingNumerical habits count how many times they were done on a day.
	TrackingNumerical TrackingType = "numerical"
)

// Habit represents a tracked activity.
type Habit struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	TrackingType TrackingType `json:"tracking_type"`
	StartDate    string       `json:"start_date"`         // YYYY-MM-DD
	EndDate      string       `json:"end_date,omitempty"` // YYYY-MM-DD, empty means open-ended
}

// Validate checks the habit's own invariants: a usable name, a known
// tracking type, parseable dates and end date not before start date.
func (h Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return NewValidationError("habit name must not be empty")
	}
	if h.TrackingType != TrackingBoolean && h.TrackingType != TrackingNumerical {
		return NewValidationError(fmt.Sprintf("invalid tracking type: %q", h.TrackingType))
	}
	start, err := time.Parse(DayFormat, h.StartDate)
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid start date %q, use YYYY-MM-DD", h.StartDate))
	}
	if h.EndDate != "" {
		end, err := time.Parse(DayFormat, h.EndDate)
		if err != nil {
			return NewValidationError(fmt.Sprintf("invalid end date %q, use YYYY-MM-DD", h.EndDate))
		}
		if end.Before(start) {
			return NewValidationError("end date must not be before start date")
		}
	}
	return nil
}

// CompletionRecord is the per-day record of progress on a habit. At most one
// exists per (habit, day); its presence means the habit was acted on that
// day. For boolean habits Completed is set, for numerical habits
// CompletedCount holds the number of times done. CompletedCount is always
// greater than zero while the record exists; reaching zero deletes it.
type CompletionRecord struct {
	HabitID        string `json:"habit_id"`
	Day            string `json:"day"` // YYYY-MM-DD
	Completed      bool   `json:"completed"`
	CompletedCount int    `json:"completed_count"`
}

// DayStatus is one habit's status on a particular day.
type DayStatus struct {
	Habit Habit
	Done  bool
	Count int // times done, meaningful for numerical habits
}
