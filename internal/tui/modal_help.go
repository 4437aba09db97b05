package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal lists the key bindings and mouse gestures.
type HelpModal struct {
	theme              Theme
	keys               KeyMap
	reverseScrollWheel bool
	viewport           viewport.Model
}

func NewHelpModal(m *PortfolioModel) *HelpModal {
	return &HelpModal{
		theme:              m.theme,
		keys:               m.keys,
		reverseScrollWheel: m.opts.ReverseScrollWheel,
		viewport:           viewport.New(80, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			h.viewport.ScrollUp(1)
			return false, nil
		case "down", "j":
			h.viewport.ScrollDown(1)
			return false, nil
		case "pgup":
			h.viewport.HalfPageUp()
			return false, nil
		case "pgdown":
			h.viewport.HalfPageDown()
			return false, nil
		case "?", "q", "escape", "esc":
			return true, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if h.reverseScrollWheel {
			up, down = down, up
		}
		switch {
		case up:
			h.viewport.ScrollUp(1)
		case down:
			h.viewport.ScrollDown(1)
		}
		return false, nil
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	t := h.theme
	modalWidth := min(width-8, 72)
	modalHeight := height - 4
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4
	if contentWidth < 10 || contentHeight < 3 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, t.Muted.Render("Terminal too small for help"))
	}

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.viewport.SetContent(h.content(contentWidth))

	header := t.Heading.Width(contentWidth).Render("Help")
	pane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Render(h.viewport.View())
	status := t.Muted.Render("↑/↓/Wheel: Scroll • PgUp/PgDn: Page • ?/ESC: Close")

	modal := t.ModalFrame.
		Width(modalWidth).
		Height(modalHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, pane, status))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

func (h *HelpModal) content(width int) string {
	t := h.theme
	k := h.keys
	var b strings.Builder

	group := func(title string, bindings ...key.Binding) {
		b.WriteString(t.Heading.Render(title))
		b.WriteString("\n")
		for _, kb := range bindings {
			help := kb.Help()
			b.WriteString("  ")
			b.WriteString(t.Name.Render(padRight(help.Key, 12)))
			b.WriteString(t.Body.Render(help.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	group("PAGE", k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom, k.Jump, k.Menu)
	group("CAROUSELS", k.NextCarousel, k.PrevCarousel, k.Left, k.Right)
	group("GENERAL", k.Theme, k.Help, k.Escape, k.Quit, k.ForceQuit)

	b.WriteString(t.Heading.Render("MOUSE"))
	b.WriteString("\n")
	mouse := []string{
		"Click a section in the bar to jump to it.",
		"Drag a carousel sideways to scroll it by hand; it resumes on release.",
		"Click ‹ or › to move one card; auto-scroll waits a few seconds.",
		"Click the theme button or ↑ Top in the status line.",
	}
	for _, line := range mouse {
		b.WriteString(t.Body.Width(width - 2).Render("  " + line))
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s + " "
}
