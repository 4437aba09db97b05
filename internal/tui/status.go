package tui

import (
	"fmt"
	"strings"

	"github.com/vnclrd/folio/internal/content"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *PortfolioModel) themeButtonLabel() string {
	if m.theme.Dark {
		return " ☀ Light Mode "
	}
	return " ☾ Dark Mode "
}

func (m *PortfolioModel) showTopButton() bool {
	return m.scroll > topIndicatorAfter
}

const topButtonLabel = " ↑ Top "

// renderStatusLine renders the theme toggle, key hints or carousel state,
// and the back-to-top button.
func (m *PortfolioModel) renderStatusLine() string {
	t := m.theme
	w := m.width

	veryNarrow := w < 60
	narrow := w < 80
	medium := w < 120

	left := t.StatusKey.Render(m.themeButtonLabel())
	right := ""
	if m.showTopButton() {
		right = t.StatusKey.Render(topButtonLabel)
	}

	var center string
	if s := m.focusedSection(); s != "" {
		center = m.carouselStatus(s, narrow)
	} else {
		switch {
		case veryNarrow:
			center = "?: Help • q: Quit"
		case narrow:
			center = "tab: Carousel • ←→: Cards • ?: Help"
		case medium:
			center = "↑↓: Scroll • 1-7: Sections • tab: Carousel • ←→: Cards • ?: Help"
		default:
			center = "↑↓/Wheel: Scroll • 1-7: Jump • tab: Focus carousel • ←→: Cards • Drag: Scroll cards • ?: Help • q: Quit"
		}
	}

	room := w - lipgloss.Width(left) - lipgloss.Width(right) - 2
	center = ansi.Truncate(center, max(room, 0), "…")
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right)-1, 0)

	return left + t.Status.Render(" "+center+strings.Repeat(" ", gap)) + right
}

func (m *PortfolioModel) carouselStatus(s content.Section, narrow bool) string {
	c := m.carousels[s]
	if c == nil {
		return fmt.Sprintf("[%s] off-screen", navLabel(s))
	}
	st := c.Snapshot()
	var state string
	switch {
	case st.Dragging:
		state = "✋ dragging"
	case st.Animating:
		state = "» moving"
	case st.AutoPaused:
		state = "⏸ paused"
	case st.Running:
		state = "▶ " + st.Direction.String()
	default:
		state = "■ idle"
	}
	if narrow {
		return fmt.Sprintf("[%s] %s", navLabel(s), state)
	}
	return fmt.Sprintf("[%s] %s • %d/%d • ←→: Cards • esc: Unfocus", navLabel(s), state, st.Offset, st.MaxOffset)
}
