// Package colormatch implements Color Match: click the color the word
// names, whatever color it is printed in.
package colormatch

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "color-match"

const (
	roleWord    = "word"
	roleColor   = "color"
	roleScore   = "score"
	roleRestart = "restart"
)

var colors = [4]core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen, core.ColorYellow}

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleWord, Kind: core.KindText},
			{Name: roleColor, Kind: core.KindButton, Count: len(colors)},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
			{Name: roleRestart, Kind: core.KindButton, Text: "Restart"},
		},
	}
}

type state struct {
	cfg     config.ColorMatchConfig
	rng     *rand.Rand
	target  int
	display int
	score   int
	waiting bool // correct answer given, next round pending
}

// Definition returns the game definition.
func Definition(cfg config.ColorMatchConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Color Match",
		Summary:  "Click the color the word names, not the one it is printed in.",
		Template: Template(),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleColor, core.EventClick, pick),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			for i, btn := range ctx.Group(roleColor) {
				btn.SetText(strings.ToUpper(colors[i].String()[:1]) + colors[i].String()[1:])
				btn.SetData(core.DataColor, colors[i].String())
			}
			reset(s, ctx)
		}),
	}
}

func reset(s *state, ctx *lifecycle.Context) {
	ctx.CancelAll()
	s.score = 0
	ctx.SetText(roleScore, "0")
	newRound(s, ctx)
}

// newRound draws the word and its ink independently.
func newRound(s *state, ctx *lifecycle.Context) {
	s.waiting = false
	s.target = s.rng.Intn(len(colors))
	s.display = s.rng.Intn(len(colors))

	word := ctx.El(roleWord)
	word.SetText(strings.ToUpper(colors[s.target].String()))
	word.SetData(core.DataColor, colors[s.display].String())
	ctx.SetStatus("Click the color that matches the text!")
}

func pick(s *state, ctx *lifecycle.Context, ev core.Event) {
	if s.waiting || ev.Index < 0 || ev.Index >= len(colors) {
		return
	}
	if ev.Index != s.target {
		ctx.SetStatus("Wrong! Try again.")
		return
	}

	s.score++
	s.waiting = true
	ctx.SetText(roleScore, strconv.Itoa(s.score))
	ctx.SetStatus("Correct!")
	ctx.After(s.cfg.NextRound, func() { newRound(s, ctx) })
}
