package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vnclrd/folio/internal/content"

	"github.com/charmbracelet/lipgloss"
)

// renderHero renders the greeting banner and reports which of its lines
// holds the "View My Work" button.
func (m *PortfolioModel) renderHero(width int) ([]string, int) {
	t := m.theme
	p := m.doc.Profile

	name := t.Name.Render(p.Name)
	if before, after, ok := strings.Cut(p.Name, p.Highlight); ok && p.Highlight != "" {
		name = t.Name.Render(before) + t.Highlight.Render(p.Highlight) + t.Name.Render(after)
	}
	greeting := t.Body.Bold(true).Render("Hello, I'm ") + name

	var lines []string
	lines = append(lines, "", centerLine(greeting, width), "")
	if p.Tagline != "" {
		tagline := t.Muted.Width(min(width, 72)).Align(lipgloss.Center).Render(p.Tagline)
		lines = append(lines, splitBlock(lipgloss.PlaceHorizontal(width, lipgloss.Center, tagline))...)
		lines = append(lines, "")
	}
	button := len(lines)
	lines = append(lines, centerLine(t.Button.Render("[ View My Work ↓ ]"), width), "")
	return lines, button
}

func (m *PortfolioModel) renderHeading(s content.Section, width int) []string {
	t := m.theme
	title := s.Title()
	underline := lipgloss.NewStyle().Foreground(t.SectionColor(s)).Render(strings.Repeat("─", lipgloss.Width(title)+4))
	return []string{
		"",
		centerLine(t.Heading.Render(title), width),
		centerLine(underline, width),
		"",
	}
}

func (m *PortfolioModel) renderEducation(width int) []string {
	t := m.theme
	cols := 1
	if width >= 2*36+2 {
		cols = 2
	}
	boxWidth := (width - 2*(cols-1)) / cols

	var boxes []string
	for _, e := range m.doc.Education {
		body := lipgloss.JoinVertical(lipgloss.Left,
			t.Heading.Render(e.Degree),
			t.Body.Render(e.Institution),
			t.Muted.Render(e.Years),
			"",
			t.Body.Width(boxWidth-4).Render(e.Description),
		)
		boxes = append(boxes, t.Panel.Width(boxWidth-2).Render(body))
	}

	var lines []string
	for i := 0; i < len(boxes); i += cols {
		row := boxes[i:min(i+cols, len(boxes))]
		joined := row[0]
		for _, b := range row[1:] {
			joined = lipgloss.JoinHorizontal(lipgloss.Top, joined, "  ", b)
		}
		lines = append(lines, splitBlock(joined)...)
	}
	return lines
}

func (m *PortfolioModel) renderAbout(width int) []string {
	t := m.theme
	boxWidth := min(width, 84)
	paragraphs := make([]string, 0, len(m.doc.About))
	for _, p := range m.doc.About {
		paragraphs = append(paragraphs, t.Body.Width(boxWidth-4).Render(p))
	}
	box := t.Panel.Width(boxWidth - 2).Render(strings.Join(paragraphs, "\n\n"))
	return splitBlock(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
}

func (m *PortfolioModel) renderGitHub(width int) []string {
	t := m.theme
	gh := m.doc.GitHub
	heading := gh.Heading
	if heading == "" {
		heading = content.SectionGitHub.Title()
	}
	lines := []string{
		"",
		centerLine(t.Heading.Render(heading), width),
	}
	if gh.Blurb != "" {
		blurb := t.Muted.Width(min(width, 72)).Align(lipgloss.Center).Render(gh.Blurb)
		lines = append(lines, splitBlock(lipgloss.PlaceHorizontal(width, lipgloss.Center, blurb))...)
	}
	if gh.URL != "" {
		lines = append(lines, "", centerLine(t.Button.Render("[ Visit GitHub ]")+" "+t.Muted.Underline(true).Render(gh.URL), width))
	}
	return append(lines, "")
}

func (m *PortfolioModel) renderFooter(width int) []string {
	t := m.theme
	notice := fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), m.doc.Profile.Name)
	return []string{
		t.Rule.Render(strings.Repeat("─", width)),
		centerLine(t.Muted.Render(notice), width),
	}
}
