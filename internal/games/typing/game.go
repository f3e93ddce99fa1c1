// Package typing implements Typing Speed Test.
package typing

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "typing"

const (
	rolePassage  = "passage"
	roleInput    = "input"
	roleWPM      = "wpm"
	roleAccuracy = "accuracy"
	roleRestart  = "restart"
)

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: rolePassage, Kind: core.KindText},
			{Name: roleInput, Label: "Type", Kind: core.KindInput},
			{Name: roleWPM, Label: "WPM", Kind: core.KindText},
			{Name: roleAccuracy, Label: "Accuracy", Kind: core.KindText},
			{Name: roleRestart, Kind: core.KindButton, Text: "New text"},
		},
	}
}

// WPM returns words per minute, rounded. Zero elapsed time yields 0.
func WPM(typed string, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	words := len(strings.Fields(typed))
	return int(math.Round(float64(words) / elapsed.Minutes()))
}

// Accuracy returns the percentage of typed characters that match the
// passage at the same position. An empty input is 100% accurate.
func Accuracy(typed, passage string) int {
	t, p := []rune(typed), []rune(passage)
	if len(t) == 0 {
		return 100
	}
	correct := 0
	for i, r := range t {
		if i < len(p) && p[i] == r {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(t)) * 100))
}

type state struct {
	cfg     config.TypingConfig
	rng     *rand.Rand
	passage string
	started time.Time
	done    bool
}

// Definition returns the game definition.
func Definition(cfg config.TypingConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Typing Speed Test",
		Summary:  "Type the passage fast and clean.",
		Template: Template(),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleInput, core.EventInput, measure),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(reset),
	}
}

func reset(s *state, ctx *lifecycle.Context) {
	s.passage = s.cfg.Texts[s.rng.Intn(len(s.cfg.Texts))]
	s.started = time.Time{}
	s.done = false
	ctx.SetText(rolePassage, s.passage)
	ctx.El(roleInput).SetValue("")
	ctx.SetText(roleWPM, "0")
	ctx.SetText(roleAccuracy, "100%")
	ctx.SetStatus("Type the text below!")
}

func measure(s *state, ctx *lifecycle.Context, ev core.Event) {
	if s.started.IsZero() {
		s.started = ctx.Now()
	}
	typed := ev.Value
	wpm := WPM(typed, ctx.Now().Sub(s.started))
	acc := Accuracy(typed, s.passage)
	ctx.SetText(roleWPM, strconv.Itoa(wpm))
	ctx.SetText(roleAccuracy, fmt.Sprintf("%d%%", acc))

	if typed == s.passage && !s.done {
		s.done = true
		ctx.SetStatus(fmt.Sprintf("Complete! WPM: %d, Accuracy: %d%%", wpm, acc))
		ctx.Report(wpm)
	}
}
