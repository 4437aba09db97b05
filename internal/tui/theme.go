package tui

import (
	"fmt"
	"strings"

	"github.com/vnclrd/folio/internal/content"

	"github.com/charmbracelet/lipgloss"
)

// ThemeMode is the configured colour scheme preference.
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto"
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// ParseThemeMode accepts auto, dark or light, case-insensitively.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ThemeAuto:
		return ThemeAuto, nil
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q (want auto, dark or light)", s)
}

// Dark resolves the mode to a dark flag. detect reports whether the
// terminal background is dark and is only consulted in auto mode.
func (t ThemeMode) Dark(detect func() bool) bool {
	switch t {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}
	if detect == nil {
		return true
	}
	return detect()
}

// Palette holds the colours of one scheme.
type Palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Subtle    lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Purple    lipgloss.Color
	Green     lipgloss.Color
	Blue      lipgloss.Color
	Border    lipgloss.Color
	StatusBg  lipgloss.Color
	StatusFg  lipgloss.Color
}

var darkPalette = Palette{
	Text:      lipgloss.Color("#D1D5DB"),
	Muted:     lipgloss.Color("#9CA3AF"),
	Subtle:    lipgloss.Color("#4B5563"),
	Accent:    lipgloss.Color("#818CF8"),
	Highlight: lipgloss.Color("#86EFAC"),
	Purple:    lipgloss.Color("#A855F7"),
	Green:     lipgloss.Color("#4ADE80"),
	Blue:      lipgloss.Color("#60A5FA"),
	Border:    lipgloss.Color("#374151"),
	StatusBg:  lipgloss.Color("#1F2937"),
	StatusFg:  lipgloss.Color("#E5E7EB"),
}

var lightPalette = Palette{
	Text:      lipgloss.Color("#1F2937"),
	Muted:     lipgloss.Color("#6B7280"),
	Subtle:    lipgloss.Color("#D1D5DB"),
	Accent:    lipgloss.Color("#4338CA"),
	Highlight: lipgloss.Color("#15803D"),
	Purple:    lipgloss.Color("#7E22CE"),
	Green:     lipgloss.Color("#15803D"),
	Blue:      lipgloss.Color("#2563EB"),
	Border:    lipgloss.Color("#D1D5DB"),
	StatusBg:  lipgloss.Color("#E5E7EB"),
	StatusFg:  lipgloss.Color("#1F2937"),
}

// Theme is the resolved palette plus the styles built from it.
type Theme struct {
	Dark bool
	Palette

	Name       lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style
	Rule       lipgloss.Style
	Heading    lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style
	Highlight  lipgloss.Style
	Button     lipgloss.Style
	Panel      lipgloss.Style
	CardTitle  lipgloss.Style
	Tag        lipgloss.Style
	Arrow      lipgloss.Style
	ArrowIdle  lipgloss.Style
	Status     lipgloss.Style
	StatusKey  lipgloss.Style
	ModalFrame lipgloss.Style
}

// NewTheme builds the dark or light theme.
func NewTheme(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return Theme{
		Dark:       dark,
		Palette:    p,
		Name:       lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		NavItem:    lipgloss.NewStyle().Foreground(p.Muted),
		NavActive:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Underline(true),
		Rule:       lipgloss.NewStyle().Foreground(p.Border),
		Heading:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Body:       lipgloss.NewStyle().Foreground(p.Text),
		Muted:      lipgloss.NewStyle().Foreground(p.Muted),
		Highlight:  lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),
		Button:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true),
		Tag:        lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Arrow:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		ArrowIdle:  lipgloss.NewStyle().Foreground(p.Subtle),
		Status:     lipgloss.NewStyle().Background(p.StatusBg).Foreground(p.StatusFg),
		StatusKey:  lipgloss.NewStyle().Background(p.StatusBg).Foreground(p.Accent).Bold(true),
		ModalFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent),
	}
}

// SectionColor is the accent used for a carousel's cards: purple for
// projects, green for certifications, blue for work experience.
func (t Theme) SectionColor(s content.Section) lipgloss.Color {
	switch s {
	case content.SectionProjects:
		return t.Purple
	case content.SectionCertifications:
		return t.Green
	case content.SectionExperience:
		return t.Blue
	}
	return t.Accent
}
