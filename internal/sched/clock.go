// Package sched provides the timer capability game instances schedule their
// delayed and repeating transitions through.
//
// Every callback a Clock fires is expected to run on the single logical
// thread that also runs input handlers. Manual achieves this by running
// callbacks inside Advance on the caller's goroutine; Posted hands the
// callback to a Loop instead of running it on the runtime timer goroutine.
package sched

import "time"

// Timer is a handle to one scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired (or was already handed to the loop) or was
	// stopped before.
	Stop() bool
}

// Clock schedules one-shot callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}
