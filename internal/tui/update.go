package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages.
func (m *PortfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case timerFiredMsg:
		// Carousel ticks, dwell flips, cooldown resumes and animation frames
		// all land here; the next View picks up the new offsets.
		if msg.fn != nil {
			msg.fn()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)
	}

	return m, nil
}
