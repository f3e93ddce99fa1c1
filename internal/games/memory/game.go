// Package memory implements Memory Match: flip tiles two at a time and find
// every pair.
package memory

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "memory"

const (
	roleTile    = "tile"
	roleMoves   = "moves"
	roleRestart = "restart"

	classFlipped = "flipped"
	classMatched = "matched"

	faceDown = "✦"
)

// Template returns the game's markup for a deck of the given number of
// distinct symbols.
func Template(pairs int) core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleTile, Kind: core.KindButton, Count: pairs * 2, Columns: 4},
			{Name: roleMoves, Label: "Moves", Kind: core.KindText},
			{Name: roleRestart, Kind: core.KindButton, Text: "Restart"},
		},
	}
}

type state struct {
	cfg     config.MemoryConfig
	rng     *rand.Rand
	deck    []string
	first   int
	second  int
	locked  bool
	moves   int
	matched int
}

// Definition returns the game definition.
func Definition(cfg config.MemoryConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:           Key,
		Title:         "Memory Match",
		Summary:       "Find all the pairs in as few moves as possible.",
		Template:      Template(len(cfg.Symbols)),
		LowerIsBetter: true,
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleTile, core.EventClick, flip),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(reset),
	}
}

// Shuffle returns a shuffled deck holding every symbol twice.
func Shuffle(symbols []string, rng *rand.Rand) []string {
	deck := make([]string, 0, len(symbols)*2)
	deck = append(deck, symbols...)
	deck = append(deck, symbols...)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func reset(s *state, ctx *lifecycle.Context) {
	// A flip-back from the previous deck must not touch the new one.
	ctx.CancelAll()

	s.deck = Shuffle(s.cfg.Symbols, s.rng)
	s.first, s.second = -1, -1
	s.locked = false
	s.moves = 0
	s.matched = 0

	for _, tile := range ctx.Group(roleTile) {
		tile.SetText(faceDown)
		tile.SetClasses()
	}
	ctx.SetText(roleMoves, "0")
	ctx.SetStatus("Find all the pairs in as few moves as possible.")
}

func flip(s *state, ctx *lifecycle.Context, ev core.Event) {
	i := ev.Index
	if s.locked || i < 0 || i >= len(s.deck) {
		return
	}
	tile := ctx.At(roleTile, i)
	if tile.HasClass(classMatched) || i == s.first {
		return
	}

	tile.AddClass(classFlipped)
	tile.SetText(s.deck[i])

	if s.first < 0 {
		s.first = i
		return
	}

	s.second = i
	s.moves++
	ctx.SetText(roleMoves, strconv.Itoa(s.moves))

	if s.deck[s.first] == s.deck[s.second] {
		ctx.At(roleTile, s.first).AddClass(classMatched)
		tile.AddClass(classMatched)
		s.matched++
		s.first, s.second = -1, -1
		if s.matched == len(s.cfg.Symbols) {
			ctx.SetStatus(fmt.Sprintf("Nice! You found all pairs in %d moves. Hit restart to play again.", s.moves))
			ctx.Report(s.moves)
		}
		return
	}

	s.locked = true
	first, second := s.first, s.second
	ctx.After(s.cfg.FlipBack, func() {
		for _, idx := range []int{first, second} {
			t := ctx.At(roleTile, idx)
			t.RemoveClass(classFlipped)
			t.SetText(faceDown)
		}
		s.first, s.second = -1, -1
		s.locked = false
	})
}
