// Package whack implements Whack-a-Mole.
package whack

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "whack"

const (
	roleHole  = "hole"
	roleScore = "score"
	roleTime  = "time"
	roleStart = "start"

	classActive = "active"

	glyphMole = "🐹"
	glyphHit  = "💥"
)

// Template returns the game's markup for the given number of holes.
func Template(holes int) core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleHole, Kind: core.KindButton, Count: holes, Columns: 3},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
			{Name: roleTime, Label: "Time", Kind: core.KindText},
			{Name: roleStart, Kind: core.KindButton, Text: "Start"},
		},
	}
}

type state struct {
	cfg    config.WhackConfig
	rng    *rand.Rand
	active bool
	score  int
	left   time.Duration
}

// Definition returns the game definition.
func Definition(cfg config.WhackConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Whack-a-Mole",
		Summary:  "Hit the moles before they hide.",
		Template: Template(cfg.Holes),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleStart, core.EventClick, begin),
			lifecycle.On(roleHole, core.EventClick, whack),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			ctx.SetText(roleScore, "0")
			ctx.SetText(roleTime, seconds(cfg.Round))
			ctx.SetStatus("Press Start to play.")
		}),
	}
}

func seconds(d time.Duration) string {
	return strconv.Itoa(int(d/time.Second)) + "s"
}

func begin(s *state, ctx *lifecycle.Context, _ core.Event) {
	if s.active {
		return
	}
	s.active = true
	s.score = 0
	s.left = s.cfg.Round
	ctx.SetText(roleScore, "0")
	ctx.SetText(roleTime, seconds(s.left))
	ctx.SetStatus("Whack the moles!")

	ctx.Every(s.cfg.MoleEvery, func() { showMole(s, ctx) })
	ctx.Every(time.Second, func() {
		s.left -= time.Second
		ctx.SetText(roleTime, seconds(s.left))
		if s.left <= 0 {
			finish(s, ctx)
		}
	})
}

func showMole(s *state, ctx *lifecycle.Context) {
	holes := ctx.Group(roleHole)
	if len(holes) == 0 {
		return
	}
	for _, h := range holes {
		if h.HasClass(classActive) {
			h.RemoveClass(classActive)
			h.SetText("")
		}
	}
	hole := holes[s.rng.Intn(len(holes))]
	hole.AddClass(classActive)
	hole.SetText(glyphMole)
	ctx.After(s.cfg.MoleVisible, func() {
		if hole.HasClass(classActive) {
			hole.RemoveClass(classActive)
			hole.SetText("")
		}
	})
}

func whack(s *state, ctx *lifecycle.Context, ev core.Event) {
	if !s.active {
		return
	}
	hole := ctx.At(roleHole, ev.Index)
	if !hole.HasClass(classActive) {
		return
	}
	s.score++
	ctx.SetText(roleScore, strconv.Itoa(s.score))
	hole.RemoveClass(classActive)
	hole.SetText(glyphHit)
	ctx.After(s.cfg.HitFlash, func() { hole.SetText("") })
}

func finish(s *state, ctx *lifecycle.Context) {
	s.active = false
	ctx.CancelAll()
	for _, h := range ctx.Group(roleHole) {
		h.RemoveClass(classActive)
		h.SetText("")
	}
	ctx.SetStatus(fmt.Sprintf("Game over! You scored %d points!", s.score))
	ctx.Report(s.score)
}
