// Package session implements the lifecycle manager: the single active-game
// slot of one player's arcade session and the transitions between the menu
// and a running game.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
	"github.com/vovakirdan/minigame-arcade/internal/registry"
	"github.com/vovakirdan/minigame-arcade/internal/sched"
	"github.com/vovakirdan/minigame-arcade/internal/storage"
)

// View is which screen the session shows.
type View int

const (
	ViewMenu View = iota
	ViewGame
)

// String returns a human-readable name for the view.
func (v View) String() string {
	if v == ViewGame {
		return "game"
	}
	return "menu"
}

// ScoreStore persists reported scores. *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(gameID string, score int) (int64, error)
	BestScore(gameID string, order storage.Order) (int, bool, error)
}

// Manager owns at most one live game instance at a time.
// It is not safe for concurrent use; drive it from the goroutine that also
// runs timer callbacks.
type Manager struct {
	catalog *registry.Catalog
	factory core.ContainerFactory
	clock   sched.Clock
	scores  ScoreStore
	logger  *log.Logger
	seeds   *rand.Rand

	active *lifecycle.Instance
	view   View
}

// Option configures a Manager.
type Option func(*Manager)

// WithFactory sets the container factory. Defaults to core.CloneFactory.
func WithFactory(f core.ContainerFactory) Option {
	return func(m *Manager) { m.factory = f }
}

// WithClock sets the clock instances schedule timers on.
func WithClock(c sched.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithScores enables best-score persistence.
func WithScores(s ScoreStore) Option {
	return func(m *Manager) { m.scores = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithSeed makes every instance's RNG derive deterministically from seed.
func WithSeed(seed int64) Option {
	return func(m *Manager) { m.seeds = rand.New(rand.NewSource(seed)) }
}

// New creates a manager in the menu view with no active instance.
func New(catalog *registry.Catalog, opts ...Option) *Manager {
	m := &Manager{
		catalog: catalog,
		factory: core.CloneFactory{},
		view:    ViewMenu,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = sched.NewManual(time.Now())
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.seeds == nil {
		m.seeds = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

// Select disposes the active instance, if any, and starts a fresh instance
// of the game registered under key. An unknown key leaves everything as it
// was and returns false.
func (m *Manager) Select(key string) bool {
	def, ok := m.catalog.Lookup(key)
	if !ok {
		m.logger.Debug("select ignored, unknown game", "game", key)
		return false
	}

	m.disposeActive()

	container := m.factory.NewContainer(def.Template)
	order := storage.HigherIsBetter
	if def.LowerIsBetter {
		order = storage.LowerIsBetter
	}
	m.active = lifecycle.Instantiate(def, container,
		lifecycle.WithClock(m.clock),
		lifecycle.WithSeed(m.seeds.Int63()),
		lifecycle.WithLogger(m.logger),
		lifecycle.WithScores(m.reporter(def.Key), m.bestSource(def.Key, order)),
	)
	m.view = ViewGame

	m.logger.Info("game started", "game", def.Key, "instance", m.active.ID())
	return true
}

// ReturnToMenu disposes the active instance, if any, and shows the menu.
func (m *Manager) ReturnToMenu() {
	m.disposeActive()
	m.view = ViewMenu
}

// Close disposes the active instance. The manager stays usable.
func (m *Manager) Close() {
	m.ReturnToMenu()
}

func (m *Manager) disposeActive() {
	if m.active == nil {
		return
	}
	m.logger.Info("game stopped", "game", m.active.Definition().Key, "instance", m.active.ID())
	m.active.Dispose()
	m.active = nil
}

// Active returns the live instance, nil in the menu.
func (m *Manager) Active() *lifecycle.Instance {
	return m.active
}

// ActiveDefinition returns the definition of the live instance, nil in the
// menu.
func (m *Manager) ActiveDefinition() *lifecycle.Definition {
	if m.active == nil {
		return nil
	}
	return m.active.Definition()
}

// View returns the current view.
func (m *Manager) View() View {
	return m.view
}

// Catalog returns the catalog the manager selects from.
func (m *Manager) Catalog() *registry.Catalog {
	return m.catalog
}

// Dispatch forwards a container-scoped event to the active instance.
func (m *Manager) Dispatch(ev core.Event) bool {
	if m.active == nil {
		return false
	}
	return m.active.Dispatch(ev)
}

// DispatchDocument forwards a document-scoped event to the active instance.
func (m *Manager) DispatchDocument(ev core.Event) bool {
	if m.active == nil {
		return false
	}
	return m.active.DispatchDocument(ev)
}

func (m *Manager) reporter(key string) func(int) {
	return func(score int) {
		if m.scores == nil {
			return
		}
		// Best-effort: a failed save never interrupts play.
		if _, err := m.scores.SaveScore(key, score); err != nil {
			m.logger.Warn("cannot save score", "game", key, "score", score, "err", err)
		}
	}
}

func (m *Manager) bestSource(key string, order storage.Order) func() int {
	return func() int {
		if m.scores == nil {
			return 0
		}
		best, _, err := m.scores.BestScore(key, order)
		if err != nil {
			m.logger.Warn("cannot read best score", "game", key, "err", err)
			return 0
		}
		return best
	}
}
