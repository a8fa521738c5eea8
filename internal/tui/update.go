package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.statuses)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Done):
			if m.cursor < len(m.statuses) {
				if err := m.ledger.MarkDone(m.statuses[m.cursor].Habit.Name, m.day); err != nil {
					m.err = err
				} else {
					m.reload()
				}
			}
		case key.Matches(msg, m.keys.Undo):
			if m.cursor < len(m.statuses) {
				if err := m.ledger.MarkUndone(m.statuses[m.cursor].Habit.Name, m.day); err != nil {
					m.err = err
				} else {
					m.reload()
				}
			}
		case key.Matches(msg, m.keys.Reload):
			m.reload()
		}
	}

	return m, nil
}
