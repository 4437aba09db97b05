package carousel

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/vnclrd/folio/internal/schedule"
)

// Spring parameters for the navigation animation: critically damped, settles
// in well under a second.
const (
	springFrequency = 7.0
	springDamping   = 1.0
)

type animation struct {
	timer  schedule.Timer
	spring harmonica.Spring
	pos    float64
	vel    float64
	target int
	frames int
}

// PauseThenResume stops the automatic driver and schedules it to resume
// after d. A later call supersedes an earlier one, so only the last
// cooldown counts.
func (c *Controller) PauseThenResume(d time.Duration) {
	if c.closed {
		return
	}
	c.Stop()
	c.autoPaused = true
	c.schedulePending(d, c.resume)
}

// resume ends a manual cooldown. A bounce flip the cooldown superseded is
// applied first; if the offset then sits on a bound the driver heads away
// from it.
func (c *Controller) resume() {
	c.autoPaused = false
	if c.flipOwed {
		c.flipOwed = false
		c.direction = c.flipTo
	}
	switch {
	case c.offset >= c.maxOffset:
		c.direction = Backward
	case c.offset <= 0:
		c.direction = Forward
	}
	c.Start()
}

// Navigate moves one card in dir, snapping to the adjacent card's leading
// edge. At the edge in dir it does nothing, not even pause. It reports
// whether a scroll was started.
func (c *Controller) Navigate(dir Direction) bool {
	if c.closed || c.dragging || c.maxOffset <= 0 {
		return false
	}
	from := c.effectiveOffset()
	if dir == Backward && from <= 0 {
		return false
	}
	if dir == Forward && from >= c.maxOffset {
		return false
	}

	c.PauseThenResume(c.cfg.Cooldown)
	target := c.layout.SnapTarget(from, dir, c.maxOffset)
	if c.wide() {
		c.animateTo(target)
	} else {
		c.stopAnimation()
		c.offset = target
	}
	return true
}

// effectiveOffset is where the carousel is headed: the animation target
// while animating, so rapid clicks keep stepping card by card.
func (c *Controller) effectiveOffset() int {
	if c.anim != nil {
		return c.anim.target
	}
	return c.offset
}

func (c *Controller) wide() bool {
	return c.window >= c.cfg.WideThreshold
}

func (c *Controller) animateTo(target int) {
	if c.anim == nil {
		c.anim = &animation{
			spring: harmonica.NewSpring(harmonica.FPS(c.cfg.FrameRate), springFrequency, springDamping),
			pos:    float64(c.offset),
		}
		c.anim.timer = c.sched.Every(time.Second/time.Duration(c.cfg.FrameRate), c.stepAnimation)
	}
	c.anim.target = target
	c.anim.frames = 0
}

func (c *Controller) stepAnimation() {
	a := c.anim
	if c.closed || a == nil {
		return
	}
	a.frames++
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, float64(a.target))
	settled := math.Abs(a.pos-float64(a.target)) < 0.5 && math.Abs(a.vel) < 0.5
	if settled || a.frames >= 2*c.cfg.FrameRate {
		c.offset = clamp(a.target, 0, c.maxOffset)
		c.stopAnimation()
		return
	}
	c.offset = clamp(int(math.Round(a.pos)), 0, c.maxOffset)
}

func (c *Controller) stopAnimation() {
	if c.anim != nil {
		c.anim.timer.Stop()
		c.anim = nil
	}
}
