package sched

import (
	"sync"
	"time"
)

// Loop is a single-goroutine executor. Callbacks posted to it run one at a
// time, in posting order, on whichever goroutine drains C.
type Loop struct {
	ch   chan func()
	done chan struct{}
	once sync.Once
}

// NewLoop creates a loop with the given queue capacity.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		ch:   make(chan func(), buffer),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. It blocks while the queue is full and returns false once
// the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.ch <- fn:
		return true
	case <-l.done:
		return false
	}
}

// C exposes the queue for external drivers.
func (l *Loop) C() <-chan func() {
	return l.ch
}

// Done is closed when the loop is closed.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Close stops accepting callbacks. Blocked posters are released.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Posted is a real-time Clock whose callbacks are marshalled onto a Loop.
type Posted struct {
	loop *Loop
}

// NewPosted creates a clock that posts fired callbacks to loop.
func NewPosted(loop *Loop) *Posted {
	return &Posted{loop: loop}
}

// Now returns the wall-clock time.
func (p *Posted) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn to be posted to the loop after d.
func (p *Posted) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() {
		p.loop.Post(fn)
	})
}
