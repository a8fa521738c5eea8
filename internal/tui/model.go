// Package tui implements the interactive day checklist: a cursor over the
// registered habits with their status for one day, marking done and undoing
// from the keyboard.
package tui

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/nmorais/ritmo/internal/models"
	"github.com/nmorais/ritmo/internal/tracker"
)

type Model struct {
	ledger   *tracker.Ledger
	day      string
	statuses []models.DayStatus
	cursor   int
	keys     KeyMap
	help     help.Model
	err      error
	quitting bool
	width    int
}

func NewModel(ledger *tracker.Ledger, day string) Model {
	m := Model{
		ledger: ledger,
		day:    day,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.reload()
	return m
}

// reload re-reads the day's statuses, clamping the cursor to the new list.
func (m *Model) reload() {
	statuses, err := m.ledger.StatusForDate(m.day)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.statuses = statuses
	if m.cursor >= len(m.statuses) {
		m.cursor = len(m.statuses) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
