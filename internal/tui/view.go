package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	minWidth  = 40
	minHeight = 12
)

// View renders the page.
func (m *PortfolioModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading portfolio..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	if m.width < minWidth || m.height < minHeight {
		msg := m.theme.Muted.Render("Window too small, resize to at least 40x12")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	return m.renderPage()
}

func (m *PortfolioModel) renderPage() string {
	lines := m.renderNavBar()
	lines = append(lines, m.visibleBodyLines()...)
	lines = append(lines, m.renderStatusLine())

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return strings.Join(lines, "\n")
}

// visibleBodyLines returns exactly bodyHeight lines of the body, starting
// at the scroll position. Strips are rendered from their controller's
// current offset.
func (m *PortfolioModel) visibleBodyLines() []string {
	height := m.bodyHeight()
	from, to := m.scroll, m.scroll+height
	out := make([]string, 0, height)

	for _, b := range m.layout.blocks {
		if b.top+b.height <= from || b.top >= to {
			continue
		}
		lines := b.lines
		if b.strip != nil {
			lines = m.renderStripBlock(b.strip)
		}
		lo := max(from-b.top, 0)
		hi := min(to-b.top, len(lines))
		out = append(out, lines[lo:hi]...)
	}

	for len(out) < height {
		out = append(out, "")
	}
	return out
}

func (m *PortfolioModel) renderStripBlock(st *stripLayout) []string {
	offset, maxOffset := 0, st.geom.MaxOffset()
	if c := m.carousels[st.section]; c != nil {
		snap := c.Snapshot()
		offset, maxOffset = snap.Offset, snap.MaxOffset
	}
	return m.renderStrip(st, offset, maxOffset, m.focusedSection() == st.section)
}
