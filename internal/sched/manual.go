package sched

import (
	"sort"
	"time"
)

// Manual is a deterministic Clock. Time only moves when Advance is called,
// and due callbacks run synchronously, in deadline order, on the goroutine
// that calls Advance.
type Manual struct {
	now   time.Time
	seq   uint64
	queue []*manualTimer
}

type manualTimer struct {
	clock *Manual
	when  time.Time
	seq   uint64
	fn    func()
	done  bool
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the clock's current time.
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{clock: m, when: m.now.Add(d), seq: m.seq, fn: fn}
	m.queue = append(m.queue, t)
	sort.SliceStable(m.queue, func(i, j int) bool {
		a, b := m.queue[i], m.queue[j]
		if a.when.Equal(b.when) {
			return a.seq < b.seq
		}
		return a.when.Before(b.when)
	})
	return t
}

// Advance moves time forward by d, firing every callback whose deadline is
// reached. Callbacks scheduled by callbacks fire in the same call if they
// fall due before the new time.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for len(m.queue) > 0 && !m.queue[0].when.After(target) {
		t := m.queue[0]
		m.queue = m.queue[1:]
		m.now = t.when
		t.done = true
		t.fn()
	}
	m.now = target
}

// Pending returns how many callbacks are still scheduled.
func (m *Manual) Pending() int {
	return len(m.queue)
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	q := t.clock.queue
	for i, other := range q {
		if other == t {
			t.clock.queue = append(q[:i], q[i+1:]...)
			break
		}
	}
	return true
}
