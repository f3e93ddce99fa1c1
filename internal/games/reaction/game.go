// Package reaction implements Reaction Time: wait for the signal, then
// click as fast as possible.
package reaction

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "reaction"

const (
	roleBox   = "box"
	roleBest  = "best"
	roleStart = "start"

	classWaiting = "waiting"
	classReady   = "ready"
)

type phase int

const (
	phaseIdle phase = iota
	phaseWaiting
	phaseReady
)

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleBox, Kind: core.KindButton, Text: "Click Start!"},
			{Name: roleBest, Label: "Best", Kind: core.KindText},
			{Name: roleStart, Kind: core.KindButton, Text: "Start"},
		},
	}
}

type state struct {
	cfg     config.ReactionConfig
	rng     *rand.Rand
	phase   phase
	readyAt time.Time
	best    int64 // milliseconds, 0 until the first valid click
	signal  lifecycle.TimerID
}

// Definition returns the game definition.
func Definition(cfg config.ReactionConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:           Key,
		Title:         "Reaction Time",
		Summary:       "Wait for green, then click!",
		Template:      Template(),
		LowerIsBetter: true,
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleStart, core.EventClick, begin),
			lifecycle.On(roleBox, core.EventClick, press),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			ctx.SetText(roleBox, "Click Start!")
			if best := ctx.Best(); best > 0 {
				s.best = int64(best)
				ctx.SetText(roleBest, fmt.Sprintf("%d ms", best))
			} else {
				ctx.SetText(roleBest, "-")
			}
			ctx.SetStatus("Press Start, wait for the signal, then click the box.")
		}),
	}
}

// wait returns a uniformly random delay in [MinWait, MaxWait).
func wait(cfg config.ReactionConfig, rng *rand.Rand) time.Duration {
	spread := cfg.MaxWait - cfg.MinWait
	if spread <= 0 {
		return cfg.MinWait
	}
	return cfg.MinWait + time.Duration(rng.Int63n(int64(spread)))
}

func begin(s *state, ctx *lifecycle.Context, _ core.Event) {
	if s.phase != phaseIdle {
		return
	}
	s.phase = phaseWaiting
	box := ctx.El(roleBox)
	box.SetClasses(classWaiting)
	box.SetText("Wait...")
	box.SetData(core.DataColor, core.ColorRed.String())
	ctx.SetStatus("Wait for green, then click!")

	s.signal = ctx.After(wait(s.cfg, s.rng), func() {
		s.phase = phaseReady
		s.readyAt = ctx.Now()
		box.SetClasses(classReady)
		box.SetText("Click now!")
		box.SetData(core.DataColor, core.ColorGreen.String())
	})
}

func press(s *state, ctx *lifecycle.Context, _ core.Event) {
	box := ctx.El(roleBox)
	switch s.phase {
	case phaseReady:
		ms := ctx.Now().Sub(s.readyAt).Milliseconds()
		ctx.SetStatus(fmt.Sprintf("Your time: %dms", ms))
		if s.best == 0 || ms < s.best {
			s.best = ms
			ctx.SetText(roleBest, fmt.Sprintf("%d ms", ms))
		}
		ctx.Report(int(ms))
		box.SetText("Click Start!")
	case phaseWaiting:
		ctx.Cancel(s.signal)
		box.SetText("Too early!")
		ctx.SetStatus("Too early! Click Start to try again.")
	default:
		return
	}
	box.SetClasses()
	box.SetData(core.DataColor, "")
	s.phase = phaseIdle
}
