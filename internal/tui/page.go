package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents a top-level screen in the TUI.
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params interface{}
}

// PortfolioPage adapts PortfolioModel to the Page interface.
type PortfolioPage struct {
	model *PortfolioModel
}

func NewPortfolioPage(m *PortfolioModel) *PortfolioPage {
	return &PortfolioPage{model: m}
}

func (p *PortfolioPage) ID() string { return "portfolio" }

func (p *PortfolioPage) Init() tea.Cmd { return p.model.Init() }

func (p *PortfolioPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.model.Update(msg)
	return cmd, nil
}

// View ignores the dimensions; the model tracks its own from WindowSizeMsg.
func (p *PortfolioPage) View(_, _ int) string { return p.model.View() }

// Close releases the carousels and their timers.
func (p *PortfolioPage) Close() { p.model.Close() }
