package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vnclrd/folio/internal/carousel"
	"github.com/vnclrd/folio/internal/content"
	"github.com/vnclrd/folio/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newTestModel(t *testing.T, width, height int) (*PortfolioModel, *schedule.Manual) {
	t.Helper()

	opts := DefaultOptions()
	opts.Theme = ThemeDark
	opts.DetectDark = func() bool { return true }

	sched := schedule.NewManual()
	m, err := NewPortfolioModel(content.Default(), opts, sched)
	if err != nil {
		t.Fatalf("NewPortfolioModel: %v", err)
	}
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, sched
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// screenRow returns the screen row of body line.
func screenRow(m *PortfolioModel, line int) int {
	return m.bodyTop() + line - m.scroll
}

func TestNewPortfolioModel_RejectsBadOptions(t *testing.T) {
	t.Parallel()

	sched := schedule.NewManual()
	if _, err := NewPortfolioModel(nil, DefaultOptions(), sched); err == nil {
		t.Fatal("expected error for nil document")
	}

	opts := DefaultOptions()
	opts.CardWidth = 4
	if _, err := NewPortfolioModel(content.Default(), opts, sched); err == nil {
		t.Fatal("expected error for tiny card width")
	}

	opts = DefaultOptions()
	opts.Carousel.Step = 0
	if _, err := NewPortfolioModel(content.Default(), opts, sched); err == nil {
		t.Fatal("expected error for zero scroll step")
	}
}

func TestStripGeometry_FollowsWidth(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)

	cases := map[content.Section]int{
		content.SectionProjects:       48,
		content.SectionCertifications: 176,
		content.SectionExperience:     16,
	}
	for s, want := range cases {
		st := m.layout.strips[s]
		if st == nil {
			t.Fatalf("%s: no strip in layout", s)
		}
		if st.viewport != 110 {
			t.Fatalf("%s: viewport = %d, want 110", s, st.viewport)
		}
		if got := st.geom.MaxOffset(); got != want {
			t.Fatalf("%s: max offset = %d, want %d", s, got, want)
		}
	}
}

func TestMount_FollowsVisibility(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, 120, 40)

	check := func(when string) {
		t.Helper()
		for _, s := range content.Carousels() {
			visible := m.stripVisible(m.layout.strips[s])
			mounted := m.carousels[s] != nil
			if visible != mounted {
				t.Fatalf("%s: %s visible=%t mounted=%t", when, s, visible, mounted)
			}
		}
	}

	check("top")
	if m.carousels[content.SectionProjects] == nil {
		t.Fatal("projects carousel should be mounted at the top of the page")
	}

	sched.Advance(time.Second)
	if got := m.carousels[content.SectionProjects].Offset(); got == 0 {
		t.Fatal("mounted carousel did not scroll on its own")
	}

	m.Update(keyMsg("G"))
	check("bottom")
	if m.carousels[content.SectionProjects] != nil {
		t.Fatal("projects carousel should be unmounted at the bottom of the page")
	}

	m.Update(keyMsg("g"))
	check("top again")
	if got := m.carousels[content.SectionProjects].Offset(); got != 0 {
		t.Fatalf("remounted carousel offset = %d, want 0", got)
	}
}

func TestKeyboard_TabThenArrowSnapsToNextCard(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, 120, 40)

	m.Update(keyMsg("tab"))
	if got := m.focusedSection(); got != content.SectionProjects {
		t.Fatalf("focused = %q, want projects", got)
	}

	m.Update(keyMsg("right"))
	c := m.carousels[content.SectionProjects]
	if c == nil {
		t.Fatal("projects carousel not mounted")
	}
	if !c.Snapshot().Animating {
		t.Fatal("expected an animated scroll on a wide window")
	}

	sched.Advance(2 * time.Second)
	st := c.Snapshot()
	if st.Offset != 32 {
		t.Fatalf("offset = %d, want 32", st.Offset)
	}
	if !st.AutoPaused {
		t.Fatal("expected the automatic driver to be paused after navigation")
	}

	m.Update(keyMsg("left"))
	sched.Advance(2 * time.Second)
	if got := c.Offset(); got != 0 {
		t.Fatalf("offset after left = %d, want 0", got)
	}
}

func TestKeyboard_ArrowWithoutFocusPicksFirstMounted(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)

	m.Update(keyMsg("right"))
	if got := m.focusedSection(); got != content.SectionProjects {
		t.Fatalf("focused = %q, want projects", got)
	}

	m.Update(keyMsg("esc"))
	if got := m.focusedSection(); got != "" {
		t.Fatalf("focused after esc = %q, want none", got)
	}
}

func TestKeyboard_TabRevealsOffscreenCarousel(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)

	m.Update(keyMsg("shift+tab"))
	if got := m.focusedSection(); got != content.SectionExperience {
		t.Fatalf("focused = %q, want experience", got)
	}
	if m.carousels[content.SectionExperience] == nil {
		t.Fatal("focusing a carousel should scroll it into view and mount it")
	}
}

func TestMouse_DragScrollsStrip(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	st := m.layout.strips[content.SectionProjects]
	y := screenRow(m, st.top+2)

	m.Update(press(st.left+50, y))
	c := m.carousels[content.SectionProjects]
	if c == nil || !c.Dragging() {
		t.Fatal("press inside the strip should open a drag")
	}
	if m.dragging != content.SectionProjects {
		t.Fatalf("dragging = %q, want projects", m.dragging)
	}

	m.Update(tea.MouseMsg{X: st.left + 40, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got := c.Offset(); got != 10 {
		t.Fatalf("offset after drag = %d, want 10", got)
	}

	m.Update(tea.MouseMsg{X: st.left + 40, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if c.Dragging() || m.dragging != "" {
		t.Fatal("release should end the drag")
	}
	if !c.Snapshot().Running {
		t.Fatal("automatic driver should restart after the drag")
	}
}

func TestMouse_MotionOutsideStripEndsDrag(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	st := m.layout.strips[content.SectionProjects]
	y := screenRow(m, st.top+2)

	m.Update(press(st.left+20, y))
	m.Update(tea.MouseMsg{X: st.left + 20, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	c := m.carousels[content.SectionProjects]
	if c.Dragging() || m.dragging != "" {
		t.Fatal("leaving the strip should end the drag")
	}
}

func TestMouse_ArrowClickNavigates(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, 120, 40)
	st := m.layout.strips[content.SectionProjects]
	y := screenRow(m, st.top+st.height/2)

	m.Update(press(st.left+st.viewport+1, y))
	sched.Advance(2 * time.Second)

	c := m.carousels[content.SectionProjects]
	if got := c.Offset(); got != 32 {
		t.Fatalf("offset after right arrow = %d, want 32", got)
	}
	if got := m.focusedSection(); got != content.SectionProjects {
		t.Fatalf("focused = %q, want projects", got)
	}
}

func TestMouse_WheelScrolls(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.scroll != wheelStep {
		t.Fatalf("scroll = %d, want %d", m.scroll, wheelStep)
	}

	m.opts.ReverseScrollWheel = true
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.scroll != 0 {
		t.Fatalf("reversed scroll = %d, want 0", m.scroll)
	}
}

func TestJumpKey_ScrollsToSection(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	m.Update(keyMsg("3"))

	want := min(m.layout.sectionTop[content.SectionEducation], m.maxScroll())
	if m.scroll != want {
		t.Fatalf("scroll = %d, want %d", m.scroll, want)
	}
	if got := m.currentSection(); got != content.SectionEducation {
		t.Fatalf("current section = %q, want education", got)
	}
}

func TestNarrowMenu_OpenAndSelect(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 60, 30)
	if !m.narrow() {
		t.Fatal("60 columns should collapse the navigation bar")
	}

	x0, _ := m.menuToggleSpan()
	m.Update(press(x0, 0))
	if !m.menuOpen {
		t.Fatal("menu toggle click should open the menu")
	}
	if got := m.bodyTop(); got != navHeight+len(content.Sections()) {
		t.Fatalf("body top with menu = %d", got)
	}

	m.Update(press(4, navHeight+3))
	if m.menuOpen {
		t.Fatal("selecting a section should close the menu")
	}
	want := min(m.layout.sectionTop[content.SectionCertifications], m.maxScroll())
	if m.scroll != want {
		t.Fatalf("scroll = %d, want %d", m.scroll, want)
	}
}

func TestMenuKey_IgnoredWhenWide(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	m.Update(keyMsg("m"))
	if m.menuOpen {
		t.Fatal("menu should not open on a wide window")
	}
}

func TestNavBar_ClickJumps(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	items, ok := navItems(m.width, m.nameReserve())
	if !ok {
		t.Fatal("navigation items should fit in 120 columns")
	}
	for _, it := range items {
		if it.section != content.SectionAbout {
			continue
		}
		m.Update(press(it.x0, 0))
	}
	want := min(m.layout.sectionTop[content.SectionAbout], m.maxScroll())
	if m.scroll != want {
		t.Fatalf("scroll = %d, want %d", m.scroll, want)
	}

	m.Update(press(1, 0))
	if m.scroll != 0 {
		t.Fatalf("clicking the name should return to the top, scroll = %d", m.scroll)
	}
}

func TestHeroButton_JumpsToProjects(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	line := -1
	for l, s := range m.layout.blocks[0].links {
		if s == content.SectionProjects {
			line = l
		}
	}
	if line < 0 {
		t.Fatal("hero has no projects link")
	}

	m.Update(press(10, screenRow(m, line)))
	want := min(m.layout.sectionTop[content.SectionProjects], m.maxScroll())
	if m.scroll != want {
		t.Fatalf("scroll = %d, want %d", m.scroll, want)
	}
}

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	if !m.theme.Dark {
		t.Fatal("expected dark theme")
	}

	m.Update(keyMsg("t"))
	if m.theme.Dark {
		t.Fatal("t should switch to the light theme")
	}

	m.Update(press(1, m.height-statusHeight))
	if !m.theme.Dark {
		t.Fatal("status line button should switch back to dark")
	}
}

func TestTopButton(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	m.Update(keyMsg("G"))
	if !m.showTopButton() {
		t.Fatal("expected the back-to-top button at the bottom of the page")
	}

	m.Update(press(m.width-2, m.height-statusHeight))
	if m.scroll != 0 {
		t.Fatalf("scroll = %d, want 0", m.scroll)
	}
	if m.showTopButton() {
		t.Fatal("back-to-top button should hide at the top")
	}
}

func TestQuit_ClosesCarousels(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, 120, 40)
	if sched.Pending() == 0 {
		t.Fatal("expected live timers before quitting")
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if len(m.carousels) != 0 {
		t.Fatalf("carousels = %d after quit, want 0", len(m.carousels))
	}
	if got := sched.Pending(); got != 0 {
		t.Fatalf("pending timers = %d after quit, want 0", got)
	}
}

func TestHelpModal_PushAndPop(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	m.Update(keyMsg("?"))
	if !m.HasModal() {
		t.Fatal("? should open help")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Help") {
		t.Fatal("help view should be rendered full-screen")
	}

	// Keys go to the modal while it is open.
	m.Update(keyMsg("t"))
	if !m.theme.Dark {
		t.Fatal("theme key should not reach the page under a modal")
	}

	m.Update(keyMsg("esc"))
	if m.HasModal() {
		t.Fatal("esc should close help")
	}
}

func TestTimerFiredMsg_RunsCallback(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	called := false
	m.Update(timerFiredMsg{fn: func() { called = true }})
	if !called {
		t.Fatal("timer callback did not run")
	}
}

func TestNewScheduler_PostsMessages(t *testing.T) {
	t.Parallel()

	msgs := make(chan tea.Msg, 1)
	sched := NewScheduler(func(msg tea.Msg) { msgs <- msg })
	ran := false
	sched.AfterFunc(time.Millisecond, func() { ran = true })

	select {
	case msg := <-msgs:
		fired, ok := msg.(timerFiredMsg)
		if !ok {
			t.Fatalf("message type = %T, want timerFiredMsg", msg)
		}
		fired.fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timer message was not posted")
	}
	if !ran {
		t.Fatal("callback did not run when the message was handled")
	}
}

func TestNavigate_NarrowWindowJumps(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 80, 40)
	m.Update(keyMsg("tab"))
	m.Update(keyMsg("right"))

	c := m.carousels[content.SectionProjects]
	if c == nil {
		t.Fatal("projects carousel not mounted")
	}
	st := c.Snapshot()
	if st.Animating {
		t.Fatal("narrow windows should not animate")
	}
	if st.Offset != c.Layout().SnapTarget(0, carousel.Forward, st.MaxOffset) {
		t.Fatalf("offset = %d, want the next card edge", st.Offset)
	}
}

func TestMouse_PressElsewhereEndsOpenDrag(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, 120, 200)
	projects := m.layout.strips[content.SectionProjects]
	certs := m.layout.strips[content.SectionCertifications]

	m.Update(press(projects.left+20, screenRow(m, projects.top+2)))
	first := m.carousels[content.SectionProjects]
	if first == nil || !first.Dragging() {
		t.Fatal("press in projects should open a drag")
	}

	// The release of the first drag never arrives.
	m.Update(press(certs.left+20, screenRow(m, certs.top+2)))
	m.Update(tea.MouseMsg{X: certs.left + 20, Y: screenRow(m, certs.top+2), Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if first.Dragging() {
		t.Fatal("projects carousel still in a drag session")
	}
	if c := m.carousels[content.SectionCertifications]; c == nil || c.Dragging() {
		t.Fatal("certifications drag should end on release")
	}

	start := first.Offset()
	sched.Advance(time.Second)
	if first.Offset() == start {
		t.Fatal("projects carousel did not resume scrolling")
	}
}

func TestHelpModal_EndsOpenDrag(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, 120, 40)
	st := m.layout.strips[content.SectionProjects]
	m.Update(press(st.left+20, screenRow(m, st.top+2)))

	m.Update(keyMsg("?"))
	c := m.carousels[content.SectionProjects]
	if c.Dragging() || m.dragging != "" {
		t.Fatal("opening help should end the drag")
	}
	if !c.Snapshot().Running {
		t.Fatal("automatic driver should restart when help opens over a drag")
	}
}
