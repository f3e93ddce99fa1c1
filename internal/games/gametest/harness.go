// Package gametest drives a single game instance on a manual clock for
// tests.
package gametest

import (
	"testing"
	"time"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
	"github.com/vovakirdan/minigame-arcade/internal/sched"
)

// Epoch is the start time of every harness clock.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Harness wraps one live instance.
type Harness struct {
	T     testing.TB
	Inst  *lifecycle.Instance
	Clock *sched.Manual
}

// Start instantiates def into a fresh container with a seeded RNG.
func Start(t testing.TB, def *lifecycle.Definition, seed int64, opts ...lifecycle.Option) *Harness {
	t.Helper()
	if err := def.Validate(); err != nil {
		t.Fatalf("invalid definition: %v", err)
	}
	return StartIn(t, def, core.NewContainer(def.Template), seed, opts...)
}

// StartIn instantiates def into the given container, which may lack some of
// the roles the game expects.
func StartIn(t testing.TB, def *lifecycle.Definition, container *core.Container, seed int64, opts ...lifecycle.Option) *Harness {
	t.Helper()
	clock := sched.NewManual(Epoch)
	opts = append([]lifecycle.Option{lifecycle.WithClock(clock), lifecycle.WithSeed(seed)}, opts...)
	inst := lifecycle.Instantiate(def, container, opts...)
	return &Harness{T: t, Inst: inst, Clock: clock}
}

// Container returns the instance's container.
func (h *Harness) Container() *core.Container {
	return h.Inst.Container()
}

// Click clicks the i-th element of role.
func (h *Harness) Click(role string, i int) bool {
	return h.Inst.Dispatch(core.Click(role, i))
}

// Type replaces the value of an input and fires an input event.
func (h *Harness) Type(role, value string) bool {
	return h.Inst.Dispatch(core.Input(role, value))
}

// Enter presses Enter inside an input.
func (h *Harness) Enter(role string) bool {
	return h.Inst.Dispatch(core.KeyPress(role, core.KeyEnter))
}

// Key presses a document-scoped key.
func (h *Harness) Key(key string) bool {
	return h.Inst.DispatchDocument(core.KeyDown(key))
}

// Advance moves the clock forward, firing due timers.
func (h *Harness) Advance(d time.Duration) {
	h.Clock.Advance(d)
}

// Text returns the text of the first element of role.
func (h *Harness) Text(role string) string {
	return h.Container().Get(role).Text()
}

// TextAt returns the text of the i-th element of role.
func (h *Harness) TextAt(role string, i int) string {
	return h.Container().At(role, i).Text()
}

// Status returns the status line.
func (h *Harness) Status() string {
	return h.Text(lifecycle.RoleStatus)
}

// Dispose disposes the instance and fails the test if anything it owned
// survived.
func (h *Harness) Dispose() {
	h.T.Helper()
	h.Inst.Dispose()
	h.AssertReleased()
}

// AssertReleased fails if the instance still holds timers or listeners or
// the clock still has callbacks queued.
func (h *Harness) AssertReleased() {
	h.T.Helper()
	if n := h.Inst.PendingTimers(); n != 0 {
		h.T.Errorf("instance still tracks %d timers", n)
	}
	if n := h.Inst.ListenerCount(); n != 0 {
		h.T.Errorf("instance still has %d listeners", n)
	}
	if n := h.Clock.Pending(); n != 0 {
		h.T.Errorf("clock still has %d callbacks queued", n)
	}
}

// Frozen fails the test if fn mutates the container.
func (h *Harness) Frozen(fn func()) {
	h.T.Helper()
	before := h.Container().Revision()
	fn()
	if after := h.Container().Revision(); after != before {
		h.T.Errorf("container mutated: revision %d -> %d", before, after)
	}
}
