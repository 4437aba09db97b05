package schedule

import (
	"sync/atomic"
	"time"
)

// Posted is a wall-clock Scheduler that hands every due callback to post
// instead of running it on the timer goroutine. post must eventually run the
// function on the goroutine that owns the scheduled state, for example by
// sending it into a bubbletea program as a message.
type Posted struct {
	post func(func())
}

// NewPosted returns a Scheduler delivering callbacks through post.
func NewPosted(post func(func())) *Posted {
	return &Posted{post: post}
}

// AfterFunc implements Scheduler.
func (p *Posted) AfterFunc(d time.Duration, f func()) Timer {
	t := &postedTimer{post: p.post, f: f}
	t.timer = time.AfterFunc(d, t.deliver)
	return t
}

// Every implements Scheduler. The next period is armed only after the
// previous callback was delivered, so a slow owner never builds a backlog.
func (p *Posted) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		panic("schedule: non-positive interval for Every")
	}
	t := &postedTimer{post: p.post, f: f, period: d}
	t.timer = time.AfterFunc(d, t.deliver)
	return t
}

type postedTimer struct {
	post    func(func())
	f       func()
	period  time.Duration
	timer   *time.Timer
	stopped atomic.Bool
}

// deliver runs on the runtime timer goroutine.
func (t *postedTimer) deliver() {
	if t.stopped.Load() {
		return
	}
	t.post(t.fire)
}

// fire runs on the owning goroutine.
func (t *postedTimer) fire() {
	if t.stopped.Load() {
		return
	}
	if t.period > 0 {
		// Re-arm before running f so that f may Stop the timer.
		t.timer = time.AfterFunc(t.period, t.deliver)
	} else {
		t.stopped.Store(true)
	}
	t.f()
}

func (t *postedTimer) Stop() {
	if t.stopped.Swap(true) {
		return
	}
	t.timer.Stop()
}
