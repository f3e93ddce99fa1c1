package lifecycle

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/sched"
)

// TimerID identifies a timer scheduled by an instance. Zero is never issued.
type TimerID uint64

type listenerKey struct {
	role  string
	index int
	kind  core.EventKind
}

// Instance is one live, isolated playthrough of a Definition.
// It is not safe for concurrent use: all calls, including timer callbacks,
// must happen on one goroutine.
type Instance struct {
	id        string
	def       *Definition
	container *core.Container
	state     any
	ctx       *Context

	clock  sched.Clock
	rng    *rand.Rand
	logger *log.Logger
	report func(score int)
	best   func() int

	timers    map[TimerID]sched.Timer
	nextTimer TimerID
	listeners map[listenerKey][]HandlerFunc
	document  map[core.EventKind][]HandlerFunc

	alive bool
}

type options struct {
	clock  sched.Clock
	rng    *rand.Rand
	logger *log.Logger
	report func(score int)
	best   func() int
}

// Option configures Instantiate.
type Option func(*options)

// WithClock sets the clock timers are scheduled on. Without it the instance
// uses a manual clock that never advances on its own.
func WithClock(c sched.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithSeed seeds the instance's private RNG.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithScores wires best-score persistence. report receives scores the game
// reports; best returns the stored best for the game.
func WithScores(report func(score int), best func() int) Option {
	return func(o *options) {
		o.report = report
		o.best = best
	}
}

// Instantiate binds def to container: it builds fresh state, attaches every
// binding and mounts the initial view. It runs synchronously.
func Instantiate(def *Definition, container *core.Container, opts ...Option) *Instance {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = sched.NewManual(time.Now())
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	inst := &Instance{
		id:        uuid.NewString(),
		def:       def,
		container: container,
		clock:     o.clock,
		rng:       o.rng,
		logger:    o.logger,
		report:    o.report,
		best:      o.best,
		timers:    make(map[TimerID]sched.Timer),
		listeners: make(map[listenerKey][]HandlerFunc),
		document:  make(map[core.EventKind][]HandlerFunc),
		alive:     true,
	}
	inst.ctx = &Context{inst: inst}
	inst.state = def.NewState(inst.rng)

	for i := range def.Bindings {
		inst.attach(def.Bindings[i])
	}
	if def.Mount != nil {
		def.Mount(inst.state, inst.ctx)
	}

	inst.logger.Debug("instance created",
		"game", def.Key,
		"instance", inst.id,
		"container", container.ID(),
		"listeners", inst.ListenerCount(),
	)
	return inst
}

func (i *Instance) attach(b Binding) {
	if b.Handle == nil {
		return
	}
	if b.Scope == ScopeDocument {
		h := b.Handle
		i.document[b.Kind] = append(i.document[b.Kind], func(state any, ctx *Context, ev core.Event) {
			// Checked here too: a document event may already be queued when
			// the instance is disposed.
			if !i.alive {
				return
			}
			h(state, ctx, ev)
		})
		return
	}

	group := i.container.Group(b.Role)
	if len(group) == 0 {
		i.logger.Debug("binding skipped, role missing", "game", i.def.Key, "role", b.Role)
		return
	}
	for _, el := range group {
		key := listenerKey{role: b.Role, index: el.Index(), kind: b.Kind}
		i.listeners[key] = append(i.listeners[key], b.Handle)
	}
}

// ID returns the instance's unique identifier.
func (i *Instance) ID() string {
	return i.id
}

// Definition returns the definition the instance was built from.
func (i *Instance) Definition() *Definition {
	return i.def
}

// Container returns the container the instance renders into.
func (i *Instance) Container() *core.Container {
	return i.container
}

// State returns the instance's state, nil once disposed.
func (i *Instance) State() any {
	return i.state
}

// Alive reports whether the instance has not been disposed.
func (i *Instance) Alive() bool {
	return i.alive
}

// PendingTimers returns the number of outstanding timers.
func (i *Instance) PendingTimers() int {
	return len(i.timers)
}

// ListenerCount returns the number of attached listeners, container-scoped
// and document-scoped together.
func (i *Instance) ListenerCount() int {
	n := 0
	for _, hs := range i.listeners {
		n += len(hs)
	}
	for _, hs := range i.document {
		n += len(hs)
	}
	return n
}

// Dispatch delivers a container-scoped event. Input events update the
// target's value even when nobody listens. Clicks on disabled elements are
// dropped. It returns whether any listener ran.
func (i *Instance) Dispatch(ev core.Event) bool {
	if !i.alive {
		return false
	}
	el := i.container.At(ev.Role, ev.Index)
	switch ev.Kind {
	case core.EventInput:
		el.SetValue(ev.Value)
	case core.EventClick:
		if el.Disabled() {
			return false
		}
	}

	handlers := i.listeners[listenerKey{role: ev.Role, index: ev.Index, kind: ev.Kind}]
	for _, h := range handlers {
		if !i.alive {
			break
		}
		h(i.state, i.ctx, ev)
	}
	return len(handlers) > 0
}

// DispatchDocument delivers a document-scoped event. It returns whether any
// listener ran.
func (i *Instance) DispatchDocument(ev core.Event) bool {
	if !i.alive {
		return false
	}
	handlers := i.document[ev.Kind]
	for _, h := range handlers {
		h(i.state, i.ctx, ev)
	}
	return len(handlers) > 0
}

// Dispose cancels every timer, detaches every listener, drops the state and
// marks the instance inert. Calling it again does nothing.
func (i *Instance) Dispose() {
	if !i.alive {
		return
	}
	i.alive = false

	timers := len(i.timers)
	for id, t := range i.timers {
		t.Stop()
		delete(i.timers, id)
	}
	listeners := i.ListenerCount()
	clear(i.listeners)
	clear(i.document)
	i.state = nil

	i.logger.Debug("instance disposed",
		"game", i.def.Key,
		"instance", i.id,
		"timers", timers,
		"listeners", listeners,
	)
}

func (i *Instance) after(d time.Duration, fn func()) TimerID {
	if !i.alive {
		return 0
	}
	i.nextTimer++
	id := i.nextTimer
	i.timers[id] = i.clock.AfterFunc(d, func() {
		if !i.alive {
			return
		}
		if _, ok := i.timers[id]; !ok {
			return
		}
		delete(i.timers, id)
		fn()
	})
	return id
}

func (i *Instance) every(d time.Duration, fn func()) TimerID {
	if !i.alive {
		return 0
	}
	i.nextTimer++
	id := i.nextTimer

	var arm func()
	arm = func() {
		i.timers[id] = i.clock.AfterFunc(d, func() {
			if !i.alive {
				return
			}
			if _, ok := i.timers[id]; !ok {
				return
			}
			// Re-arm before running so fn may cancel the series.
			arm()
			fn()
		})
	}
	arm()
	return id
}

func (i *Instance) cancel(id TimerID) {
	if t, ok := i.timers[id]; ok {
		t.Stop()
		delete(i.timers, id)
	}
}

func (i *Instance) cancelAll() {
	for id, t := range i.timers {
		t.Stop()
		delete(i.timers, id)
	}
}
