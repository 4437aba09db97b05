// Package schedule provides cancelable one-shot and periodic timers whose
// callbacks run on a single owning goroutine.
//
// Callers that mutate state from timer callbacks (carousel controllers, UI
// models) never lock: every callback is delivered to the goroutine that owns
// the state, and a stopped timer never delivers.
package schedule

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the timer. Once Stop returns on the owning goroutine the
	// callback will not run again. Stopping a fired or stopped timer is a no-op.
	Stop()
}

// Scheduler creates timers.
type Scheduler interface {
	// AfterFunc runs f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// Every runs f every d until the returned timer is stopped.
	// It panics if d <= 0, as time.NewTicker does.
	Every(d time.Duration, f func()) Timer
}
