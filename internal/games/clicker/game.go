// Package clicker implements Clicker Game: as many clicks as possible in a
// fixed round.
package clicker

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
const Key = "clicker"

const (
	roleButton = "button"
	roleCount  = "count"
	roleBest   = "best"
	roleStart  = "start"
)

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleButton, Kind: core.KindButton, Text: "Click me!"},
			{Name: roleCount, Label: "Clicks", Kind: core.KindText},
			{Name: roleBest, Label: "Best", Kind: core.KindText},
			{Name: roleStart, Kind: core.KindButton, Text: "Start"},
		},
	}
}

type state struct {
	cfg    config.ClickerConfig
	active bool
	clicks int
	best   int
	left   time.Duration
}

// Definition returns the game definition.
func Definition(cfg config.ClickerConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Clicker Game",
		Summary:  "Click as fast as you can.",
		Template: Template(),
		NewState: lifecycle.Init(func(*rand.Rand) *state {
			return &state{cfg: cfg}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleStart, core.EventClick, begin),
			lifecycle.On(roleButton, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				if !s.active {
					return
				}
				s.clicks++
				ctx.SetText(roleCount, strconv.Itoa(s.clicks))
			}),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			s.best = ctx.Best()
			ctx.El(roleButton).SetDisabled(true)
			ctx.SetText(roleCount, "0")
			ctx.SetText(roleBest, strconv.Itoa(s.best))
			ctx.SetStatus("Press Start to begin!")
		}),
	}
}

func countdown(d time.Duration) string {
	return fmt.Sprintf("Click as fast as you can! %ds", int(d/time.Second))
}

func begin(s *state, ctx *lifecycle.Context, _ core.Event) {
	if s.active {
		return
	}
	s.active = true
	s.clicks = 0
	s.left = s.cfg.Round
	ctx.SetText(roleCount, "0")
	ctx.El(roleButton).SetDisabled(false)
	ctx.SetStatus(countdown(s.left))

	var timer lifecycle.TimerID
	timer = ctx.Every(time.Second, func() {
		s.left -= time.Second
		ctx.SetStatus(countdown(s.left))
		if s.left > 0 {
			return
		}
		ctx.Cancel(timer)
		s.active = false
		ctx.El(roleButton).SetDisabled(true)
		ctx.Report(s.clicks)
		if s.clicks > s.best {
			s.best = s.clicks
			ctx.SetText(roleBest, strconv.Itoa(s.best))
			ctx.SetStatus(fmt.Sprintf("New record! %d clicks!", s.clicks))
		} else {
			ctx.SetStatus(fmt.Sprintf("Time's up! You got %d clicks!", s.clicks))
		}
	})
}
