package carousel

import (
	"log"
	"time"

	"github.com/vnclrd/folio/internal/schedule"
)

// Controller coordinates one carousel's automatic scrolling, drag sessions
// and arrow navigation. Its methods must be called from the scheduler's
// owning goroutine. After Close every method is a silent no-op.
type Controller struct {
	name  string
	cfg   Config
	sched schedule.Scheduler

	geom      Geometry
	layout    CardLayout
	offset    int
	maxOffset int
	window    int

	direction  Direction
	autoPaused bool
	dragging   bool
	anchor     dragAnchor

	tick    schedule.Timer // automatic driver
	pending schedule.Timer // bounce flip or manual resume
	anim    *animation     // programmatic scroll

	// flipOwed is set while a bounce flip to flipTo has not run. A manual
	// cooldown that replaces the flip applies it on resume.
	flipOwed bool
	flipTo   Direction

	closed bool
}

// State is a read-only snapshot of a Controller.
type State struct {
	Offset        int
	MaxOffset     int
	Direction     Direction
	AutoPaused    bool
	Dragging      bool
	Running       bool
	ResumePending bool
	Animating     bool
	Closed        bool
}

// New creates a Controller for geometry g. The automatic driver does not run
// until Start is called.
func New(name string, cfg Config, sched schedule.Scheduler, g Geometry) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		name:      name,
		cfg:       cfg,
		sched:     sched,
		direction: Forward,
	}
	c.SetGeometry(g)
	return c, nil
}

// Name identifies the carousel in logs.
func (c *Controller) Name() string { return c.name }

// Offset is the current scroll offset, for the view to apply.
func (c *Controller) Offset() int { return c.offset }

// Geometry returns the geometry last passed to SetGeometry.
func (c *Controller) Geometry() Geometry { return c.geom }

// Layout returns the card spans derived from the current geometry.
func (c *Controller) Layout() CardLayout { return c.layout }

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	return State{
		Offset:        c.offset,
		MaxOffset:     c.maxOffset,
		Direction:     c.direction,
		AutoPaused:    c.autoPaused,
		Dragging:      c.dragging,
		Running:       c.tick != nil,
		ResumePending: c.pending != nil,
		Animating:     c.anim != nil,
		Closed:        c.closed,
	}
}

// SetGeometry replaces the sizing input, recomputes the bounds and clamps
// the offset into them. With no overflow the driver stops.
func (c *Controller) SetGeometry(g Geometry) {
	if c.closed {
		return
	}
	c.geom = g.sanitized()
	c.layout = c.geom.Layout()
	c.maxOffset = c.geom.MaxOffset()
	c.offset = clamp(c.offset, 0, c.maxOffset)
	if c.anim != nil {
		c.anim.target = clamp(c.anim.target, 0, c.maxOffset)
	}
	if c.maxOffset == 0 {
		c.Stop()
		c.stopAnimation()
	}
}

// SetWindowWidth records the width of the surrounding window, which decides
// whether Navigate animates or jumps.
func (c *Controller) SetWindowWidth(w int) {
	c.window = max(w, 0)
}

// Start begins automatic scrolling. It does nothing while paused, dragging,
// already running, or when the cards do not overflow the viewport.
func (c *Controller) Start() {
	if c.closed || c.autoPaused || c.dragging || c.tick != nil {
		return
	}
	c.maxOffset = c.geom.MaxOffset()
	if c.maxOffset <= 0 {
		return
	}
	c.stopAnimation()
	c.tick = c.sched.Every(c.cfg.TickInterval, c.advance)
}

// Stop cancels the automatic driver. Direction and offset are kept.
func (c *Controller) Stop() {
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
}

// Close tears the controller down: every timer is cancelled and later calls,
// including late timer deliveries, are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.Stop()
	c.cancelPending()
	c.stopAnimation()
	c.dragging = false
	c.flipOwed = false
	c.closed = true
}

func (c *Controller) advance() {
	if c.closed || c.dragging || c.tick == nil {
		return
	}
	if c.direction == Forward {
		c.offset += c.cfg.Step
		if c.offset >= c.maxOffset {
			c.offset = c.maxOffset
			c.bounce(Backward)
		}
		return
	}
	c.offset -= c.cfg.Step
	if c.offset <= 0 {
		c.offset = 0
		c.bounce(Forward)
	}
}

// bounce parks the driver at a bound and reverses after the dwell.
func (c *Controller) bounce(next Direction) {
	c.Stop()
	c.autoPaused = true
	c.flipOwed, c.flipTo = true, next
	log.Printf("carousel: %s: reached %s bound at %d, reversing in %s", c.name, c.direction, c.offset, c.cfg.Dwell)
	c.schedulePending(c.cfg.Dwell, func() {
		c.flipOwed = false
		c.direction = next
		c.autoPaused = false
		c.Start()
	})
}

// schedulePending replaces the single pending cooldown action.
func (c *Controller) schedulePending(d time.Duration, f func()) {
	c.cancelPending()
	var t schedule.Timer
	t = c.sched.AfterFunc(d, func() {
		if c.closed || c.pending != t {
			return
		}
		c.pending = nil
		f()
	})
	c.pending = t
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
