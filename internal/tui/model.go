package tui

import (
	"fmt"
	"log"

	"github.com/vnclrd/folio/internal/carousel"
	"github.com/vnclrd/folio/internal/content"
	"github.com/vnclrd/folio/internal/model"
	"github.com/vnclrd/folio/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a PortfolioModel.
type Options struct {
	Theme              ThemeMode
	Carousel           carousel.Config
	CardWidth          int
	CardGap            int
	ReverseScrollWheel bool

	// DetectDark reports the terminal background for ThemeAuto. Defaults to
	// lipgloss.HasDarkBackground.
	DetectDark func() bool
}

// DefaultOptions returns terminal-sized defaults.
func DefaultOptions() Options {
	cfg := carousel.DefaultConfig()
	cfg.TickInterval = model.DefaultTickInterval
	cfg.Step = model.DefaultScrollStep
	cfg.Dwell = model.DefaultDwell
	cfg.Cooldown = model.DefaultCooldown
	cfg.WideThreshold = model.DefaultWideThreshold
	return Options{
		Theme:     ThemeMode(model.DefaultTheme),
		Carousel:  cfg,
		CardWidth: model.DefaultCardWidth,
		CardGap:   model.DefaultCardGap,
	}
}

// ModalStackState holds the modal stack. The topmost modal receives all
// input and renders full-screen.
type ModalStackState struct {
	modalStack []Modal
}

// NavState holds the navigation bar, narrow-window menu and carousel focus.
type NavState struct {
	menuOpen bool
	focus    int // index into content.Carousels(), -1 when none
}

// ScrollState holds the vertical position of the page body.
type ScrollState struct {
	scroll int
}

// CarouselState holds the mounted carousel controllers and the open drag.
type CarouselState struct {
	carousels map[content.Section]*carousel.Controller
	dragging  content.Section // "" when no drag is open
}

// PortfolioModel renders the portfolio page and owns its carousels.
// Sub-state is organized into embedded structs for readability.
type PortfolioModel struct {
	ModalStackState
	NavState
	ScrollState
	CarouselState

	doc   *content.Document
	opts  Options
	keys  KeyMap
	sched schedule.Scheduler
	theme Theme

	width  int
	height int
	layout bodyLayout
}

// NewPortfolioModel creates the page model. Timers for the carousels are
// created on sched, whose callbacks must arrive as messages through Update
// (see NewScheduler).
func NewPortfolioModel(doc *content.Document, opts Options, sched schedule.Scheduler) (*PortfolioModel, error) {
	if doc == nil {
		return nil, fmt.Errorf("tui: nil document")
	}
	if err := opts.Carousel.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if opts.CardWidth < 12 {
		return nil, fmt.Errorf("tui: card width %d is below the minimum of 12", opts.CardWidth)
	}
	if opts.CardGap < 0 {
		return nil, fmt.Errorf("tui: negative card gap %d", opts.CardGap)
	}
	detect := opts.DetectDark
	if detect == nil {
		detect = lipgloss.HasDarkBackground
	}

	return &PortfolioModel{
		NavState:      NavState{focus: -1},
		CarouselState: CarouselState{carousels: make(map[content.Section]*carousel.Controller)},
		doc:           doc,
		opts:          opts,
		keys:          DefaultKeyMap(),
		sched:         sched,
		theme:         NewTheme(opts.Theme.Dark(detect)),
	}, nil
}

// Init implements tea.Model.
func (m *PortfolioModel) Init() tea.Cmd {
	return nil
}

// Close unmounts every carousel, cancelling all of their timers.
func (m *PortfolioModel) Close() {
	for s := range m.carousels {
		m.unmount(s)
	}
}

// PushModal pushes a modal onto the stack. Deduplicates by ID. An open
// drag ends first, since the modal takes the release.
func (m *PortfolioModel) PushModal(modal Modal) {
	m.releaseDrag()
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *PortfolioModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *PortfolioModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *PortfolioModel) HasModal() bool {
	return len(m.modalStack) > 0
}

// toggleTheme flips between dark and light and re-renders the cached body.
func (m *PortfolioModel) toggleTheme() {
	m.theme = NewTheme(!m.theme.Dark)
	log.Printf("tui: theme switched to dark=%t", m.theme.Dark)
	m.relayout()
}

// focusedSection returns the focused carousel, or "" when none is focused.
func (m *PortfolioModel) focusedSection() content.Section {
	carousels := content.Carousels()
	if m.focus < 0 || m.focus >= len(carousels) {
		return ""
	}
	return carousels[m.focus]
}

func (m *PortfolioModel) setFocus(s content.Section) {
	for i, c := range content.Carousels() {
		if c == s {
			m.focus = i
			return
		}
	}
	m.focus = -1
}
