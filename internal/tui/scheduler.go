package tui

import (
	"github.com/vnclrd/folio/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
)

// timerFiredMsg carries a due timer callback into Update, so carousel state
// is only ever touched from the program's event loop.
type timerFiredMsg struct {
	fn func()
}

// NewScheduler returns a scheduler whose callbacks run inside Update. send
// is normally (*tea.Program).Send.
func NewScheduler(send func(tea.Msg)) schedule.Scheduler {
	return schedule.NewPosted(func(f func()) {
		send(timerFiredMsg{fn: f})
	})
}
