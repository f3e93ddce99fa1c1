// Package dice implements Dice Roller.
package dice

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "dice"

const (
	roleDie   = "die"
	roleTotal = "total"
	roleHigh  = "high"
	roleRoll  = "roll"

	classRolling = "rolling"
)

// Faces maps a die value minus one to its glyph.
var Faces = [6]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleDie, Kind: core.KindText, Count: 2},
			{Name: roleTotal, Label: "Total", Kind: core.KindText},
			{Name: roleHigh, Label: "High", Kind: core.KindText},
			{Name: roleRoll, Kind: core.KindButton, Text: "Roll"},
		},
	}
}

type state struct {
	cfg     config.DiceConfig
	rng     *rand.Rand
	high    int
	rolling bool
}

// Definition returns the game definition.
func Definition(cfg config.DiceConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Dice Roller",
		Summary:  "Roll two dice and chase a high total.",
		Template: Template(),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleRoll, core.EventClick, roll),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			s.high = ctx.Best()
			for _, die := range ctx.Group(roleDie) {
				die.SetText(Faces[0])
			}
			ctx.SetText(roleTotal, "-")
			ctx.SetText(roleHigh, strconv.Itoa(s.high))
			ctx.SetStatus("Press Roll!")
		}),
	}
}

func roll(s *state, ctx *lifecycle.Context, _ core.Event) {
	if s.rolling {
		return
	}
	s.rolling = true
	dice := ctx.Group(roleDie)
	for _, die := range dice {
		die.AddClass(classRolling)
	}

	ctx.After(s.cfg.Rolling, func() {
		s.rolling = false
		total := 0
		for _, die := range dice {
			v := s.rng.Intn(6) + 1
			total += v
			die.SetText(Faces[v-1])
			die.RemoveClass(classRolling)
		}
		ctx.SetText(roleTotal, strconv.Itoa(total))
		ctx.Report(total)
		ctx.SetStatus(verdict(total, s.high))
		if total > s.high {
			s.high = total
			ctx.SetText(roleHigh, strconv.Itoa(total))
		}
	})
}

// verdict returns the status line for a roll given the previous high.
func verdict(total, high int) string {
	switch {
	case total > high:
		return "New high score!"
	case total == 12:
		return "Double sixes! Maximum roll!"
	case total == 2:
		return "Snake eyes! Unlucky roll."
	default:
		return fmt.Sprintf("You rolled %d!", total)
	}
}
