package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nmorais/ritmo/internal/models"
)

var tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...)
}

func renderHabitTable(habits []models.Habit) string {
	t := newTable("NAME", "DESCRIPTION", "TYPE", "START DATE", "END DATE")
	for _, h := range habits {
		end := h.EndDate
		if end == "" {
			end = "-"
		}
		t.Row(h.Name, h.Description, string(h.TrackingType), h.StartDate, end)
	}
	return t.String()
}

func renderStatusTable(day string, statuses []models.DayStatus) string {
	t := newTable("NAME", "COMPLETED")
	for _, s := range statuses {
		t.Row(s.Habit.Name, formatStatus(s))
	}
	return fmt.Sprintf("%s\n%s", day, t.String())
}

func formatStatus(s models.DayStatus) string {
	if !s.Done {
		return "No"
	}
	if s.Habit.TrackingType == models.TrackingNumerical {
		if s.Count == 1 {
			return "1 time"
		}
		return fmt.Sprintf("%d times", s.Count)
	}
	return "Yes"
}
