// Package carousel implements the auto-scroll and manual-drag coordination
// for a horizontally scrolling row of cards.
//
// A Controller owns one carousel's scroll offset. Exactly one mutator drives
// the offset at a time: the periodic scroll driver, a pointer drag session,
// or a one-shot programmatic scroll started by Navigate. Every timer a
// Controller creates comes from a schedule.Scheduler, so all mutation happens
// on the scheduler's owning goroutine and no locking is needed.
package carousel

import (
	"errors"
	"fmt"
	"time"
)

// Direction is the way the automatic driver (or a navigation) moves.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// ErrInvalidConfig is returned by New for unusable timing or step settings.
var ErrInvalidConfig = errors.New("carousel: invalid config")

// Config holds the tunables shared by every carousel instance.
type Config struct {
	TickInterval  time.Duration // cadence of the automatic driver
	Step          int           // offset units moved per tick
	Dwell         time.Duration // pause at a bound before reversing
	Cooldown      time.Duration // pause after a manual navigation
	WideThreshold int           // window width at which navigation animates
	FrameRate     int           // animation frames per second
}

// DefaultConfig returns the web timings: 20ms ticks of one unit, 5s dwell
// and cooldown, animation from 768 units wide.
func DefaultConfig() Config {
	return Config{
		TickInterval:  20 * time.Millisecond,
		Step:          1,
		Dwell:         5 * time.Second,
		Cooldown:      5 * time.Second,
		WideThreshold: 768,
		FrameRate:     60,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %s", ErrInvalidConfig, c.TickInterval)
	case c.Step <= 0:
		return fmt.Errorf("%w: step %d", ErrInvalidConfig, c.Step)
	case c.Dwell < 0:
		return fmt.Errorf("%w: dwell %s", ErrInvalidConfig, c.Dwell)
	case c.Cooldown < 0:
		return fmt.Errorf("%w: cooldown %s", ErrInvalidConfig, c.Cooldown)
	case c.WideThreshold < 0:
		return fmt.Errorf("%w: wide threshold %d", ErrInvalidConfig, c.WideThreshold)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.FrameRate)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
