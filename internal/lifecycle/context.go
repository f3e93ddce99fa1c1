package lifecycle

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigame-arcade/internal/core"
)

// Context is the capability set a handler gets: its own container, its own
// timers, its own RNG. Nothing reachable from a Context belongs to another
// instance.
type Context struct {
	inst *Instance
}

// Container returns the instance's container.
func (c *Context) Container() *core.Container {
	return c.inst.container
}

// El returns the first element of role, nil if the container lacks it.
func (c *Context) El(role string) *core.Element {
	return c.inst.container.Get(role)
}

// At returns the i-th element of role, nil if absent.
func (c *Context) At(role string, i int) *core.Element {
	return c.inst.container.At(role, i)
}

// Group returns all elements of role.
func (c *Context) Group(role string) []*core.Element {
	return c.inst.container.Group(role)
}

// SetText sets the text of the first element of role, if present.
func (c *Context) SetText(role, text string) {
	c.El(role).SetText(text)
}

// SetStatus updates the status line.
func (c *Context) SetStatus(text string) {
	c.SetText(RoleStatus, text)
}

// After schedules fn once after d. The callback is dropped if the instance
// is disposed or the timer cancelled before it runs.
func (c *Context) After(d time.Duration, fn func()) TimerID {
	return c.inst.after(d, fn)
}

// Every schedules fn repeatedly every d under one TimerID.
func (c *Context) Every(d time.Duration, fn func()) TimerID {
	return c.inst.every(d, fn)
}

// Cancel stops a timer. Unknown or finished timers are ignored.
func (c *Context) Cancel(id TimerID) {
	c.inst.cancel(id)
}

// CancelAll stops every timer the instance has outstanding.
func (c *Context) CancelAll() {
	c.inst.cancelAll()
}

// PendingTimers returns the number of outstanding timers.
func (c *Context) PendingTimers() int {
	return c.inst.PendingTimers()
}

// Rand returns the instance's private RNG.
func (c *Context) Rand() *rand.Rand {
	return c.inst.rng
}

// Now returns the current time of the instance's clock.
func (c *Context) Now() time.Time {
	return c.inst.clock.Now()
}

// Alive reports whether the instance is still live.
func (c *Context) Alive() bool {
	return c.inst.alive
}

// Report submits a finished score for persistence.
func (c *Context) Report(score int) {
	if c.inst.report != nil && c.inst.alive {
		c.inst.report(score)
	}
}

// Best returns the persisted best score, 0 if unknown.
func (c *Context) Best() int {
	if c.inst.best == nil {
		return 0
	}
	return c.inst.best()
}

// Logger returns the instance's logger.
func (c *Context) Logger() *log.Logger {
	return c.inst.logger
}
