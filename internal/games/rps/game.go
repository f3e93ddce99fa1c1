// Package rps implements Rock Paper Scissors against a uniformly random
// computer.
package rps

import (
	"fmt"
	"math/rand"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "rps"

const (
	roleMove     = "move"
	rolePlayer   = "player-move"
	roleComputer = "computer-move"
	roleScore    = "score"
	roleRestart  = "restart"
)

var moves = [3]string{"rock", "paper", "scissors"}

// beats maps each move to the move it defeats.
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

// label capitalizes a move name. Casers carry state, so each call builds
// its own.
func label(move string) string {
	return cases.Title(language.English).String(move)
}

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleMove, Kind: core.KindButton, Count: len(moves)},
			{Name: rolePlayer, Label: "You", Kind: core.KindText},
			{Name: roleComputer, Label: "Computer", Kind: core.KindText},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
			{Name: roleRestart, Kind: core.KindButton, Text: "Restart"},
		},
	}
}

type state struct {
	rng      *rand.Rand
	player   int
	computer int
}

// Outcome of one round from the player's side.
type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

// Judge decides a round.
func Judge(player, computer string) Outcome {
	switch {
	case player == computer:
		return Tie
	case beats[player] == computer:
		return Win
	default:
		return Lose
	}
}

// Definition returns the game definition.
func Definition() *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Rock Paper Scissors",
		Summary:  "Beat the computer's random pick.",
		Template: Template(),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleMove, core.EventClick, playRound),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			for i, btn := range ctx.Group(roleMove) {
				btn.SetText(label(moves[i]))
			}
			reset(s, ctx)
		}),
	}
}

func reset(s *state, ctx *lifecycle.Context) {
	s.player, s.computer = 0, 0
	ctx.SetText(rolePlayer, "-")
	ctx.SetText(roleComputer, "-")
	ctx.SetText(roleScore, "0 : 0")
	ctx.SetStatus("Choose your move.")
}

func playRound(s *state, ctx *lifecycle.Context, ev core.Event) {
	if ev.Index < 0 || ev.Index >= len(moves) {
		return
	}
	player := moves[ev.Index]
	computer := moves[s.rng.Intn(len(moves))]

	ctx.SetText(rolePlayer, label(player))
	ctx.SetText(roleComputer, label(computer))

	switch Judge(player, computer) {
	case Tie:
		ctx.SetStatus("It's a tie. Try again!")
	case Win:
		s.player++
		ctx.SetStatus("You win this round!")
	case Lose:
		s.computer++
		ctx.SetStatus("Computer wins this round.")
	}
	ctx.SetText(roleScore, fmt.Sprintf("%d : %d", s.player, s.computer))
}
