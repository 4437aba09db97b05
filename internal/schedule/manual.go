package schedule

import "time"

// Manual is a virtual-time Scheduler. Nothing fires until Advance is called,
// which makes timer-driven code deterministic under test.
//
// Manual is not safe for concurrent use; it models the single owning
// goroutine directly.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	due     time.Duration
	period  time.Duration
	seq     uint64
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() { t.stopped = true }

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	return m.add(d, 0, f)
}

// Every implements Scheduler.
func (m *Manual) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		panic("schedule: non-positive interval for Every")
	}
	return m.add(d, d, f)
}

func (m *Manual) add(d, period time.Duration, f func()) *manualTimer {
	m.seq++
	t := &manualTimer{due: m.now + d, period: period, seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// Now reports the virtual time elapsed since NewManual.
func (m *Manual) Now() time.Duration { return m.now }

// Advance moves virtual time forward by d, firing every timer that comes due
// in deadline order. Timers scheduled by callbacks fire too if they fall
// inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.next(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.period > 0 {
			m.seq++
			next.due += next.period
			next.seq = m.seq
		} else {
			next.stopped = true
		}
		next.f()
	}
	m.now = target
	m.compact()
}

// Pending reports how many timers are still live.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (m *Manual) next(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.stopped || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}
