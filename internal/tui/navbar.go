package tui

import (
	"strings"

	"github.com/vnclrd/folio/internal/content"

	"github.com/charmbracelet/lipgloss"
)

const (
	navItemGap  = 2
	menuOpenTag = "☰ Menu"
	menuShutTag = "✕ Close"
)

// navItem is one section link of the wide navigation bar.
type navItem struct {
	section content.Section
	label   string
	x0, x1  int // screen columns [x0, x1)
}

func navLabel(s content.Section) string {
	switch s {
	case content.SectionExperience:
		return "Experience"
	case content.SectionAbout:
		return "About"
	}
	return s.Title()
}

// navItems lays the section links out right-aligned on a bar of width
// columns, leaving reserve columns for the name on the left. It reports
// false when they do not fit.
func navItems(width, reserve int) ([]navItem, bool) {
	sections := content.Sections()
	total := navItemGap * (len(sections) - 1)
	for _, s := range sections {
		total += lipgloss.Width(navLabel(s))
	}
	x := width - total - 1
	if x < reserve {
		return nil, false
	}
	items := make([]navItem, 0, len(sections))
	for _, s := range sections {
		label := navLabel(s)
		w := lipgloss.Width(label)
		items = append(items, navItem{section: s, label: label, x0: x, x1: x + w})
		x += w + navItemGap
	}
	return items, true
}

func (m *PortfolioModel) nameReserve() int {
	return lipgloss.Width(m.doc.Profile.Name) + 3
}

// menuToggleSpan is the clickable column range of the narrow menu button.
func (m *PortfolioModel) menuToggleSpan() (int, int) {
	w := lipgloss.Width(menuShutTag)
	return m.width - w - 1, m.width - 1
}

// currentSection is the last section whose heading is at or above the top
// of the body window.
func (m *PortfolioModel) currentSection() content.Section {
	var current content.Section
	for _, s := range content.Sections() {
		top, ok := m.layout.sectionTop[s]
		if ok && top <= m.scroll+1 {
			current = s
		}
	}
	return current
}

func (m *PortfolioModel) renderNavBar() []string {
	t := m.theme
	name := " " + t.Name.Render(m.doc.Profile.Name)

	var right string
	var rightX int
	if m.narrow() {
		tag := menuOpenTag
		if m.menuOpen {
			tag = menuShutTag
		}
		rightX, _ = m.menuToggleSpan()
		right = t.Button.Render(tag)
	} else {
		items, _ := navItems(m.width, m.nameReserve())
		current := m.currentSection()
		parts := make([]string, 0, len(items))
		for _, it := range items {
			style := t.NavItem
			if it.section == current {
				style = t.NavActive
			}
			parts = append(parts, style.Render(it.label))
		}
		right = strings.Join(parts, strings.Repeat(" ", navItemGap))
		rightX = items[0].x0
	}

	gap := max(rightX-lipgloss.Width(name), 1)
	bar := name + strings.Repeat(" ", gap) + right
	rule := t.Rule.Render(strings.Repeat("─", m.width))

	lines := []string{bar, rule}
	if m.menuLines() > 0 {
		for i, s := range content.Sections() {
			lines = append(lines, "  "+t.Muted.Render(string(rune('1'+i)))+" "+t.Body.Render(navLabel(s)))
		}
	}
	return lines
}
