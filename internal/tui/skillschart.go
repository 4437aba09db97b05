package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

const skillsChartHeight = 8

// skillColors cycles across categories in both chart and legend.
var skillColors = []lipgloss.Color{"#818CF8", "#A855F7", "#4ADE80", "#60A5FA", "#F472B6", "#FBBF24", "#34D399", "#F87171", "#A78BFA"}

// renderSkills draws one bar per skill category with a legend beside it,
// followed by the skills of each category.
func (m *PortfolioModel) renderSkills(width int) []string {
	groups := m.doc.Skills
	if len(groups) == 0 {
		return []string{m.theme.Muted.Render("No skills listed")}
	}

	legendWidth := 0
	for _, g := range groups {
		legendWidth = max(legendWidth, lipgloss.Width(g.Category))
	}
	legendWidth += 8 // swatch, spacing and count

	barWidth := 3
	chartWidth := len(groups) * (barWidth + 1)
	if chartWidth+2+legendWidth > width {
		barWidth = 1
		chartWidth = len(groups) * 2
	}

	bc := barchart.New(chartWidth, skillsChartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	for i, g := range groups {
		c := skillColors[i%len(skillColors)]
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: g.Category, Value: float64(len(g.Skills)), Style: lipgloss.NewStyle().Foreground(c).Background(c)},
			},
		})
	}
	bc.Draw()
	chartLines := strings.Split(bc.View(), "\n")
	for len(chartLines) < skillsChartHeight {
		chartLines = append(chartLines, "")
	}

	var legend []string
	for i, g := range groups {
		swatch := lipgloss.NewStyle().Foreground(skillColors[i%len(skillColors)]).Render("■")
		label := fmt.Sprintf("%-*s %2d", legendWidth-5, g.Category, len(g.Skills))
		legend = append(legend, swatch+" "+m.theme.Body.Render(label))
	}

	var lines []string
	rows := max(len(chartLines), len(legend))
	for i := 0; i < rows; i++ {
		chartLine := ""
		if i < len(chartLines) {
			chartLine = chartLines[i]
		}
		if w := lipgloss.Width(chartLine); w < chartWidth {
			chartLine += strings.Repeat(" ", chartWidth-w)
		}
		legendLine := ""
		if i < len(legend) {
			legendLine = legend[i]
		}
		lines = append(lines, chartLine+"  "+legendLine)
	}

	lines = append(lines, "")
	for i, g := range groups {
		heading := lipgloss.NewStyle().Foreground(skillColors[i%len(skillColors)]).Bold(true).Render(g.Category)
		list := m.theme.Body.Width(max(width-2, 10)).Render(strings.Join(g.Skills, " · "))
		lines = append(lines, heading)
		lines = append(lines, splitBlock(list)...)
	}
	return lines
}
