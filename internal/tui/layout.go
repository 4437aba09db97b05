package tui

import (
	"strings"

	"github.com/vnclrd/folio/internal/carousel"
	"github.com/vnclrd/folio/internal/content"

	"github.com/charmbracelet/lipgloss"
)

const (
	navHeight    = 2 // bar + rule
	statusHeight = 1
	bodyPadX     = 2
	arrowWidth   = 3
	cardHeight   = 11

	// topIndicatorAfter is how far the body must be scrolled before the
	// back-to-top button shows.
	topIndicatorAfter = 10
)

// block is a run of body lines. Static blocks are rendered once per layout;
// strip blocks are rendered on every frame from their controller's offset.
type block struct {
	section content.Section
	lines   []string
	strip   *stripLayout
	top     int
	height  int

	// links maps a line of the block to a section it jumps to on click.
	links map[int]content.Section
}

// stripLayout places one carousel in the body.
type stripLayout struct {
	section  content.Section
	top      int // first body line
	height   int
	left     int // screen column of the viewport
	viewport int
	geom     carousel.Geometry
	rows     []string // uncut card row, one entry per terminal line
}

// bodyLayout is the page body for one width and theme.
type bodyLayout struct {
	width      int
	blocks     []block
	total      int
	sectionTop map[content.Section]int
	strips     map[content.Section]*stripLayout
}

// buildLayout renders the static parts of the body and places the strips.
func (m *PortfolioModel) buildLayout(width int) bodyLayout {
	l := bodyLayout{
		width:      width,
		sectionTop: make(map[content.Section]int),
		strips:     make(map[content.Section]*stripLayout),
	}
	inner := max(width-2*bodyPadX, 10)

	add := func(b block) {
		b.top = l.total
		if b.strip != nil {
			b.strip.top = b.top
			b.height = b.strip.height
			l.strips[b.section] = b.strip
		} else {
			b.height = len(b.lines)
		}
		l.blocks = append(l.blocks, b)
		l.total += b.height
	}
	section := func(s content.Section, lines []string) {
		l.sectionTop[s] = l.total
		add(block{section: s, lines: lines})
	}

	hero, heroButton := m.renderHero(inner)
	add(block{lines: hero, links: map[int]content.Section{heroButton: content.SectionProjects}})

	for _, s := range content.Sections() {
		switch s {
		case content.SectionProjects, content.SectionCertifications, content.SectionExperience:
			section(s, m.renderHeading(s, inner))
			add(block{section: s, strip: m.buildStrip(s, width)})
			add(block{section: s, lines: []string{""}})
		case content.SectionSkills:
			section(s, append(m.renderHeading(s, inner), m.renderSkills(inner)...))
		case content.SectionEducation:
			section(s, append(m.renderHeading(s, inner), m.renderEducation(inner)...))
		case content.SectionAbout:
			section(s, append(m.renderHeading(s, inner), m.renderAbout(inner)...))
		case content.SectionGitHub:
			section(s, m.renderGitHub(inner))
		}
	}
	add(block{lines: m.renderFooter(inner)})

	for i := range l.blocks {
		if l.blocks[i].strip != nil {
			continue
		}
		l.blocks[i].lines = padLines(l.blocks[i].lines, bodyPadX)
	}
	return l
}

func (m *PortfolioModel) buildStrip(s content.Section, width int) *stripLayout {
	cards, _ := m.doc.Cards(s)
	viewport := max(width-2*bodyPadX-2*arrowWidth, 0)
	geom := carousel.Geometry{
		CardWidth: m.opts.CardWidth,
		Gap:       m.opts.CardGap,
		Count:     len(cards),
		Viewport:  viewport,
	}
	return &stripLayout{
		section:  s,
		height:   cardHeight,
		left:     bodyPadX + arrowWidth,
		viewport: viewport,
		geom:     geom,
		rows:     m.renderCardRow(s, cards),
	}
}

// relayout rebuilds the body for the current width and theme, then
// re-clamps the scroll position and remounts carousels.
func (m *PortfolioModel) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.layout = m.buildLayout(m.width)
	m.clampScroll()
	m.syncMounts()
}

// Vertical geometry of the screen.

func (m *PortfolioModel) menuLines() int {
	if m.menuOpen && m.narrow() {
		return len(content.Sections())
	}
	return 0
}

func (m *PortfolioModel) bodyTop() int {
	return navHeight + m.menuLines()
}

func (m *PortfolioModel) bodyHeight() int {
	return max(m.height-m.bodyTop()-statusHeight, 0)
}

func (m *PortfolioModel) maxScroll() int {
	return max(m.layout.total-m.bodyHeight(), 0)
}

func (m *PortfolioModel) clampScroll() {
	m.scroll = max(0, min(m.scroll, m.maxScroll()))
}

// narrow reports whether the navigation bar collapses into a menu.
func (m *PortfolioModel) narrow() bool {
	if m.width < m.opts.Carousel.WideThreshold {
		return true
	}
	_, fits := navItems(m.width, m.nameReserve())
	return !fits
}

// stripVisible reports whether any line of the strip is inside the body
// window.
func (m *PortfolioModel) stripVisible(st *stripLayout) bool {
	return st.top < m.scroll+m.bodyHeight() && st.top+st.height > m.scroll
}

// stripAt returns the strip under screen row y, if any.
func (m *PortfolioModel) stripAt(y int) (*stripLayout, bool) {
	line, ok := m.bodyLineAt(y)
	if !ok {
		return nil, false
	}
	for _, st := range m.layout.strips {
		if line >= st.top && line < st.top+st.height {
			return st, true
		}
	}
	return nil, false
}

// bodyLineAt maps a screen row to a body line.
func (m *PortfolioModel) bodyLineAt(y int) (int, bool) {
	top := m.bodyTop()
	if y < top || y >= top+m.bodyHeight() {
		return 0, false
	}
	line := m.scroll + y - top
	if line >= m.layout.total {
		return 0, false
	}
	return line, true
}

// linkAt returns the section a click on body row y jumps to.
func (m *PortfolioModel) linkAt(y int) (content.Section, bool) {
	line, ok := m.bodyLineAt(y)
	if !ok {
		return "", false
	}
	for _, b := range m.layout.blocks {
		if line < b.top || line >= b.top+b.height {
			continue
		}
		s, ok := b.links[line-b.top]
		return s, ok
	}
	return "", false
}

func padLines(lines []string, n int) []string {
	pad := strings.Repeat(" ", n)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = pad + line
	}
	return out
}

// splitBlock splits a rendered lipgloss block into lines.
func splitBlock(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func centerLine(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
