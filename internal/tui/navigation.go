package tui

import (
	"github.com/vnclrd/folio/internal/carousel"
	"github.com/vnclrd/folio/internal/content"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

// handleKeyPress dispatches key events: modal stack first, then page
// shortcuts.
func (m *PortfolioModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.Close()
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	return m.handleGlobalKeys(msg)
}

// handleGlobalKeys handles page-level shortcuts.
// Only reached when no modal is on the stack.
func (m *PortfolioModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))

	case key.Matches(msg, k.Escape):
		if m.menuOpen {
			m.setMenuOpen(false)
		} else {
			m.focus = -1
		}

	case key.Matches(msg, k.Theme):
		m.toggleTheme()

	case key.Matches(msg, k.Menu):
		m.setMenuOpen(!m.menuOpen)

	case key.Matches(msg, k.Up):
		m.scrollBy(-1)
	case key.Matches(msg, k.Down):
		m.scrollBy(1)
	case key.Matches(msg, k.PageUp):
		m.scrollBy(-max(m.bodyHeight()-2, 1))
	case key.Matches(msg, k.PageDown):
		m.scrollBy(max(m.bodyHeight()-2, 1))
	case key.Matches(msg, k.Top):
		m.scrollTo(0)
	case key.Matches(msg, k.Bottom):
		m.scrollTo(m.maxScroll())

	case key.Matches(msg, k.Jump):
		sections := content.Sections()
		if r := msg.String(); len(r) == 1 {
			if i := int(r[0] - '1'); i >= 0 && i < len(sections) {
				m.scrollToSection(sections[i])
			}
		}

	case key.Matches(msg, k.NextCarousel):
		m.cycleFocus(1)
	case key.Matches(msg, k.PrevCarousel):
		m.cycleFocus(-1)

	case key.Matches(msg, k.Left):
		m.navigateFocused(carousel.Backward)
	case key.Matches(msg, k.Right):
		m.navigateFocused(carousel.Forward)
	}

	return m, nil
}

func (m *PortfolioModel) scrollBy(delta int) {
	m.scrollTo(m.scroll + delta)
}

func (m *PortfolioModel) scrollTo(line int) {
	m.scroll = line
	m.clampScroll()
	m.syncMounts()
}

// scrollToSection brings a section's heading to the top of the body and
// closes the menu.
func (m *PortfolioModel) scrollToSection(s content.Section) {
	m.menuOpen = false
	top, ok := m.layout.sectionTop[s]
	if !ok {
		return
	}
	m.scrollTo(top)
}

// setMenuOpen opens or closes the narrow-window menu. The menu pushes the
// body down, so visibility of the carousels is re-checked.
func (m *PortfolioModel) setMenuOpen(open bool) {
	if open && !m.narrow() {
		return
	}
	m.menuOpen = open
	m.clampScroll()
	m.syncMounts()
}

// cycleFocus moves keyboard focus to the next or previous carousel and
// scrolls it into view.
func (m *PortfolioModel) cycleFocus(delta int) {
	n := len(content.Carousels())
	switch {
	case m.focus < 0 && delta > 0:
		m.focus = 0
	case m.focus < 0:
		m.focus = n - 1
	default:
		m.focus = ((m.focus+delta)%n + n) % n
	}
	m.revealStrip(m.focusedSection())
}

// revealStrip scrolls so that the whole strip of s is inside the body.
func (m *PortfolioModel) revealStrip(s content.Section) {
	st := m.layout.strips[s]
	if st == nil {
		return
	}
	if st.top >= m.scroll && st.top+st.height <= m.scroll+m.bodyHeight() {
		return
	}
	m.scrollToSection(s)
}

// navigateFocused moves the focused carousel one card. Without focus the
// first mounted carousel takes it.
func (m *PortfolioModel) navigateFocused(dir carousel.Direction) {
	s := m.focusedSection()
	if s == "" {
		for _, c := range content.Carousels() {
			if m.carousels[c] != nil {
				s = c
				break
			}
		}
		if s == "" {
			return
		}
		m.setFocus(s)
	}
	if m.carousels[s] == nil {
		m.revealStrip(s)
	}
	if c := m.carousels[s]; c != nil {
		c.Navigate(dir)
	}
}
