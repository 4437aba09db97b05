package tui

import (
	"strings"

	"github.com/vnclrd/folio/internal/content"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderCardRow renders every card of a carousel side by side. The result is
// wider than the screen; renderStrip cuts the visible window out of it.
func (m *PortfolioModel) renderCardRow(s content.Section, cards []content.Card) []string {
	rows := make([]string, cardHeight)
	gap := strings.Repeat(" ", m.opts.CardGap)
	for i, c := range cards {
		lines := strings.Split(m.renderCard(s, c), "\n")
		for r := range rows {
			if i > 0 {
				rows[r] += gap
			}
			if r < len(lines) {
				rows[r] += lines[r]
			} else {
				rows[r] += strings.Repeat(" ", m.opts.CardWidth)
			}
		}
	}
	return rows
}

func (m *PortfolioModel) renderCard(s content.Section, c content.Card) string {
	t := m.theme
	color := t.SectionColor(s)
	inner := m.opts.CardWidth - 4
	height := cardHeight - 2

	head := []string{t.CardTitle.Foreground(color).Render(ansi.Truncate(c.Title, inner, "…"))}
	if c.Subtitle != "" {
		head = append(head, t.Body.Render(ansi.Truncate(c.Subtitle, inner, "…")))
	}
	if c.Meta != "" {
		head = append(head, t.Muted.Render(ansi.Truncate(c.Meta, inner, "…")))
	}

	var foot []string
	if len(c.Tags) > 0 {
		foot = append(foot, t.Tag.Render(ansi.Truncate(strings.Join(c.Tags, " · "), inner, "…")))
	}
	if c.Link != "" {
		label := "Learn More →"
		if s == content.SectionCertifications {
			label = "View Credential →"
		}
		foot = append(foot, lipgloss.NewStyle().Foreground(t.Blue).Render(label))
	}

	room := height - len(head) - len(foot) - 1
	desc := splitBlock(t.Body.Width(inner).Render(c.Description))
	if room <= 0 {
		desc = nil
	} else if len(desc) > room {
		desc = desc[:room]
		desc[room-1] = ansi.Truncate(desc[room-1], inner-1, "") + "…"
	}

	lines := append(head, "")
	lines = append(lines, desc...)
	for len(lines)+len(foot) < height {
		lines = append(lines, "")
	}
	lines = append(lines, foot...)
	if len(lines) > height {
		lines = lines[:height]
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(m.opts.CardWidth - 2).
		Render(strings.Join(lines, "\n"))
}

// renderStrip renders the visible window of a carousel at offset, flanked
// by its arrow buttons. An arrow is dimmed when the carousel sits on that
// bound.
func (m *PortfolioModel) renderStrip(st *stripLayout, offset, maxOffset int, focused bool) []string {
	t := m.theme
	mid := st.height / 2
	pad := strings.Repeat(" ", bodyPadX)
	blank := strings.Repeat(" ", arrowWidth)

	arrow := func(glyph string, enabled bool) string {
		if enabled {
			return t.Arrow.Render(" " + glyph + " ")
		}
		return t.ArrowIdle.Render(" " + glyph + " ")
	}
	edge := blank
	if focused {
		edge = lipgloss.NewStyle().Foreground(t.SectionColor(st.section)).Render(" ┃ ")
	}

	lines := make([]string, st.height)
	for r := range lines {
		left, right := edge, edge
		if r == mid {
			left = arrow("‹", offset > 0)
			right = arrow("›", offset < maxOffset)
		}
		row := ""
		if r < len(st.rows) {
			row = ansi.Cut(st.rows[r], offset, offset+st.viewport)
		}
		if w := ansi.StringWidth(row); w < st.viewport {
			row += strings.Repeat(" ", st.viewport-w)
		}
		lines[r] = pad + left + row + right
	}
	return lines
}
