package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/games"
	"github.com/vovakirdan/minigame-arcade/internal/platform/tui"
	"github.com/vovakirdan/minigame-arcade/internal/registry"
	"github.com/vovakirdan/minigame-arcade/internal/sched"
	"github.com/vovakirdan/minigame-arcade/internal/session"
	"github.com/vovakirdan/minigame-arcade/internal/storage"
)

// timerQueue is the capacity of posted timer callbacks in a local session.
const timerQueue = 64

// env is what every command shares: settings, catalog, logger and store.
type env struct {
	catalog *registry.Catalog
	logger  *log.Logger
	store   *storage.Store // nil when the database cannot be opened
	logOut  io.Closer
}

// newEnv builds the command environment. fallback receives logs when no
// --log-file is given.
func newEnv(fallback io.Writer) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	e := &env{catalog: games.Catalog(cfg)}

	out := fallback
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		e.logOut = f
	}
	e.logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arcade",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - games still work
		e.logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		e.store = store
	}
	return e, nil
}

// Close releases the store and the log file.
func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("cannot close scores database", "err", err)
		}
	}
	if e.logOut != nil {
		//nolint:errcheck // Best-effort close
		e.logOut.Close()
	}
}

// session creates a local session manager whose timers run on loop.
func (e *env) session(loop *sched.Loop) *session.Manager {
	opts := []session.Option{
		session.WithClock(sched.NewPosted(loop)),
		session.WithLogger(e.logger),
	}
	if flagSeed != 0 {
		opts = append(opts, session.WithSeed(flagSeed))
	}
	if e.store != nil {
		opts = append(opts, session.WithScores(e.store))
	}
	return session.New(e.catalog, opts...)
}

// appOptions returns the UI options for a local terminal.
func (e *env) appOptions() []tui.AppOption {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	opts := []tui.AppOption{
		tui.WithSize(width, height),
		tui.WithAppLogger(e.logger),
	}
	if e.store != nil {
		opts = append(opts, tui.WithPreferences(e.store), tui.WithScoreSource(e.store))
	}
	return opts
}

// order maps a definition's ranking flag to the storage order.
func order(lowerIsBetter bool) storage.Order {
	if lowerIsBetter {
		return storage.LowerIsBetter
	}
	return storage.HigherIsBetter
}

// runSession runs the arcade UI, optionally starting in the game under key.
func (e *env) runSession(key string) error {
	if key != "" {
		if _, err := e.catalog.Get(key); err != nil {
			return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
		}
	}

	loop := sched.NewLoop(timerQueue)
	manager := e.session(loop)
	if key != "" {
		manager.Select(key)
	}

	start := time.Now()
	err := tui.Run(manager, loop, e.appOptions()...)
	e.logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	return err
}
