// Package simon implements Simon Says: watch a growing pattern of pads and
// repeat it.
package simon

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "simon"

const (
	rolePad   = "pad"
	roleLevel = "level"
	roleStart = "start"

	classActive = "active"
)

var pads = [4]core.Color{core.ColorGreen, core.ColorRed, core.ColorYellow, core.ColorBlue}

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: rolePad, Kind: core.KindButton, Count: len(pads), Columns: 2},
			{Name: roleLevel, Label: "Level", Kind: core.KindText},
			{Name: roleStart, Kind: core.KindButton, Text: "Start"},
		},
	}
}

type state struct {
	cfg      config.SimonConfig
	rng      *rand.Rand
	sequence []int
	step     int  // next index of sequence the player must press
	level    int  // rounds started
	locked   bool // playback or round transition in progress
}

// Definition returns the game definition.
func Definition(cfg config.SimonConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Simon Says",
		Summary:  "Repeat the growing pattern.",
		Template: Template(),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleStart, core.EventClick, begin),
			lifecycle.On(rolePad, core.EventClick, press),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			for i, pad := range ctx.Group(rolePad) {
				pad.SetText("    ")
				pad.SetData(core.DataColor, pads[i].String())
			}
			ctx.SetText(roleLevel, "0")
			ctx.SetStatus("Press Start to play.")
		}),
	}
}

func begin(s *state, ctx *lifecycle.Context, _ core.Event) {
	ctx.CancelAll()
	for _, pad := range ctx.Group(rolePad) {
		pad.RemoveClass(classActive)
	}
	s.sequence = s.sequence[:0]
	s.level = 0
	ctx.SetText(roleLevel, "0")
	nextRound(s, ctx)
}

func nextRound(s *state, ctx *lifecycle.Context) {
	s.level++
	ctx.SetText(roleLevel, strconv.Itoa(s.level))
	s.sequence = append(s.sequence, s.rng.Intn(len(pads)))
	s.step = 0
	playback(s, ctx)
}

// playback lights each pad of the sequence in turn, then unlocks input.
func playback(s *state, ctx *lifecycle.Context) {
	s.locked = true
	ctx.SetStatus("Watch the pattern...")

	var show func(i int)
	show = func(i int) {
		if i == len(s.sequence) {
			s.locked = false
			ctx.SetStatus("Now repeat it!")
			return
		}
		ctx.After(s.cfg.Gap, func() {
			pad := ctx.At(rolePad, s.sequence[i])
			pad.AddClass(classActive)
			ctx.After(s.cfg.Flash, func() {
				pad.RemoveClass(classActive)
				show(i + 1)
			})
		})
	}
	show(0)
}

func press(s *state, ctx *lifecycle.Context, ev core.Event) {
	if s.locked || len(s.sequence) == 0 || ev.Index < 0 || ev.Index >= len(pads) {
		return
	}

	pad := ctx.At(rolePad, ev.Index)
	pad.AddClass(classActive)
	ctx.After(s.cfg.Press, func() { pad.RemoveClass(classActive) })

	if ev.Index != s.sequence[s.step] {
		ctx.SetStatus(fmt.Sprintf("Wrong! You reached level %d. Click Start to try again.", s.level))
		ctx.Report(s.level)
		s.sequence = s.sequence[:0]
		s.level = 0
		ctx.SetText(roleLevel, "0")
		return
	}

	s.step++
	if s.step == len(s.sequence) {
		s.locked = true
		ctx.SetStatus("Correct! Next level...")
		ctx.After(s.cfg.NextRound, func() { nextRound(s, ctx) })
	}
}
