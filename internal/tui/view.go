package tui

import (
	"fmt"
	"strings"

	"github.com/nmorais/ritmo/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ritmo " + m.day))
	b.WriteString("\n\n")

	if len(m.statuses) == 0 {
		b.WriteString(pendingStyle.Render("No habits yet. Add one with 'ritmo add'."))
		b.WriteString("\n")
	}

	for i, s := range m.statuses {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, checkbox(s), s.Habit.Name))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func checkbox(s models.DayStatus) string {
	if !s.Done {
		return pendingStyle.Render("[ ]")
	}
	if s.Habit.TrackingType == models.TrackingNumerical {
		return doneStyle.Render(fmt.Sprintf("[%d]", s.Count))
	}
	return doneStyle.Render("[x]")
}
