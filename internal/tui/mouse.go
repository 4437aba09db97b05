package tui

import (
	"github.com/vnclrd/folio/internal/carousel"
	"github.com/vnclrd/folio/internal/content"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleMouseEvent processes mouse interactions.
func (m *PortfolioModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			// A release lost outside the terminal leaves the old drag open.
			m.releaseDrag()
			m.handleClick(msg.X, msg.Y)

		case tea.MouseButtonWheelUp:
			if m.opts.ReverseScrollWheel {
				m.scrollBy(wheelStep)
			} else {
				m.scrollBy(-wheelStep)
			}

		case tea.MouseButtonWheelDown:
			if m.opts.ReverseScrollWheel {
				m.scrollBy(-wheelStep)
			} else {
				m.scrollBy(wheelStep)
			}
		}

	case tea.MouseActionMotion:
		m.handleDragMotion(msg.X, msg.Y)

	case tea.MouseActionRelease:
		m.releaseDrag()
	}

	return m, nil
}

// handleClick resolves a left press against the nav bar, the menu, the
// status line, the carousels and the body links, in that order.
func (m *PortfolioModel) handleClick(x, y int) {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	switch {
	case y == 0:
		m.clickNavBar(x)
		return
	case y >= navHeight && y < navHeight+m.menuLines():
		m.scrollToSection(content.Sections()[y-navHeight])
		return
	case y == m.height-statusHeight:
		m.clickStatusLine(x)
		return
	}

	if st, ok := m.stripAt(y); ok {
		m.clickStrip(st, x)
		return
	}
	if s, ok := m.linkAt(y); ok {
		m.scrollToSection(s)
	}
}

func (m *PortfolioModel) clickNavBar(x int) {
	if x < m.nameReserve() {
		m.setMenuOpen(false)
		m.scrollTo(0)
		return
	}
	if m.narrow() {
		if x0, x1 := m.menuToggleSpan(); x >= x0 && x < x1 {
			m.setMenuOpen(!m.menuOpen)
		}
		return
	}
	items, _ := navItems(m.width, m.nameReserve())
	for _, it := range items {
		if x >= it.x0 && x < it.x1 {
			m.scrollToSection(it.section)
			return
		}
	}
}

func (m *PortfolioModel) clickStatusLine(x int) {
	if x < lipgloss.Width(m.themeButtonLabel()) {
		m.toggleTheme()
		return
	}
	if m.showTopButton() && x >= m.width-lipgloss.Width(topButtonLabel) {
		m.scrollTo(0)
	}
}

// clickStrip focuses the carousel and either presses an arrow or opens a
// drag session.
func (m *PortfolioModel) clickStrip(st *stripLayout, x int) {
	m.setFocus(st.section)
	c := m.carousels[st.section]
	if c == nil {
		return
	}
	switch {
	case x >= st.left-arrowWidth && x < st.left:
		c.Navigate(carousel.Backward)
	case x >= st.left+st.viewport && x < st.left+st.viewport+arrowWidth:
		c.Navigate(carousel.Forward)
	case x >= st.left && x < st.left+st.viewport:
		c.PointerDown(x - st.left)
		m.dragging = st.section
	}
}

// handleDragMotion feeds pointer motion to the open drag. Motion that
// leaves the strip ends the drag as a pointer-leave.
func (m *PortfolioModel) handleDragMotion(x, y int) {
	if m.dragging == "" {
		return
	}
	c := m.carousels[m.dragging]
	st := m.layout.strips[m.dragging]
	if c == nil || st == nil {
		m.dragging = ""
		return
	}
	hit, ok := m.stripAt(y)
	if ok && hit == st && x >= st.left && x < st.left+st.viewport {
		c.PointerMove(x - st.left)
		return
	}
	c.PointerLeave()
	m.dragging = ""
}

func (m *PortfolioModel) releaseDrag() {
	if m.dragging == "" {
		return
	}
	if c := m.carousels[m.dragging]; c != nil {
		c.PointerUp()
	}
	m.dragging = ""
}
