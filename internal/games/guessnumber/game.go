// Package guessnumber implements Guess the Number.
package guessnumber

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "guess-number"

const (
	roleGuess    = "guess"
	roleSubmit   = "submit"
	roleAttempts = "attempts"
	roleRestart  = "restart"
)

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleGuess, Label: "Your guess", Kind: core.KindInput},
			{Name: roleSubmit, Kind: core.KindButton, Text: "Guess"},
			{Name: roleAttempts, Label: "Attempts", Kind: core.KindText},
			{Name: roleRestart, Kind: core.KindButton, Text: "Restart"},
		},
	}
}

type state struct {
	cfg      config.GuessNumberConfig
	rng      *rand.Rand
	target   int
	attempts int
	solved   bool
}

// Definition returns the game definition.
func Definition(cfg config.GuessNumberConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:           Key,
		Title:         "Guess the Number",
		Summary:       fmt.Sprintf("Find the hidden number between %d and %d.", cfg.Min, cfg.Max),
		Template:      Template(),
		LowerIsBetter: true,
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleSubmit, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				guess(s, ctx)
			}),
			lifecycle.On(roleGuess, core.EventKeyPress, func(s *state, ctx *lifecycle.Context, ev core.Event) {
				if ev.Key == core.KeyEnter {
					guess(s, ctx)
				}
			}),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(reset),
	}
}

func reset(s *state, ctx *lifecycle.Context) {
	s.target = s.cfg.Min + s.rng.Intn(s.cfg.Max-s.cfg.Min+1)
	s.attempts = 0
	s.solved = false
	ctx.SetText(roleAttempts, "0")
	ctx.El(roleGuess).SetValue("")
	ctx.SetStatus(fmt.Sprintf("I'm thinking of a number between %d and %d.", s.cfg.Min, s.cfg.Max))
}

// guess ignores input once the number is found until the round restarts.
func guess(s *state, ctx *lifecycle.Context) {
	if s.solved {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(ctx.El(roleGuess).Value()))
	if err != nil || n < s.cfg.Min || n > s.cfg.Max {
		ctx.SetStatus(fmt.Sprintf("Please enter a number between %d and %d.", s.cfg.Min, s.cfg.Max))
		return
	}

	s.attempts++
	ctx.SetText(roleAttempts, strconv.Itoa(s.attempts))

	switch {
	case n == s.target:
		s.solved = true
		plural := ""
		if s.attempts > 1 {
			plural = "s"
		}
		ctx.SetStatus(fmt.Sprintf("Correct! You guessed it in %d attempt%s!", s.attempts, plural))
		ctx.Report(s.attempts)
	case n < s.target:
		ctx.SetStatus("Too low! Try a higher number.")
	default:
		ctx.SetStatus("Too high! Try a lower number.")
	}
}
