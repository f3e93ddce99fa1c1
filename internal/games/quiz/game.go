// Package quiz implements Quiz Trivia over a fixed question bank.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "quiz"

const (
	roleQuestion = "question"
	roleOption   = "option"
	roleScore    = "score"
	roleNext     = "next"

	classCorrect = "correct"
	classWrong   = "wrong"
)

// Template returns the game's markup with the given number of answer
// buttons.
func Template(options int) core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleQuestion, Kind: core.KindText},
			{Name: roleOption, Kind: core.KindButton, Count: options, Columns: 2},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
			{Name: roleNext, Kind: core.KindButton, Text: "Next"},
		},
	}
}

// maxOptions returns the widest option list in the bank.
func maxOptions(qs []config.Question) int {
	n := 0
	for _, q := range qs {
		n = max(n, len(q.Options))
	}
	return n
}

type state struct {
	cfg      config.QuizConfig
	current  int
	score    int
	total    int
	answered bool
}

// Definition returns the game definition.
func Definition(cfg config.QuizConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Quiz Trivia",
		Summary:  "General knowledge, one shot per question.",
		Template: Template(maxOptions(cfg.Questions)),
		NewState: lifecycle.Init(func(*rand.Rand) *state {
			return &state{cfg: cfg}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleOption, core.EventClick, answer),
			lifecycle.On(roleNext, core.EventClick, next),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			ctx.SetText(roleScore, "0 / 0")
			load(s, ctx)
		}),
	}
}

// next moves to the following question. Wrapping past the last one ends
// the round: its score is saved and the tally starts over.
func next(s *state, ctx *lifecycle.Context, _ core.Event) {
	s.current = (s.current + 1) % len(s.cfg.Questions)
	if s.current == 0 {
		if s.score > 0 {
			ctx.Report(s.score)
		}
		s.score, s.total = 0, 0
		ctx.SetText(roleScore, "0 / 0")
	}
	load(s, ctx)
}

func load(s *state, ctx *lifecycle.Context) {
	q := s.cfg.Questions[s.current]
	s.answered = false
	ctx.SetText(roleQuestion, q.Text)
	for i, btn := range ctx.Group(roleOption) {
		btn.SetClasses()
		if i < len(q.Options) {
			btn.SetText(q.Options[i])
			btn.SetDisabled(false)
		} else {
			btn.SetText("")
			btn.SetDisabled(true)
		}
	}
	ctx.SetStatus("Choose the correct answer!")
}

func answer(s *state, ctx *lifecycle.Context, ev core.Event) {
	q := s.cfg.Questions[s.current]
	if s.answered || ev.Index < 0 || ev.Index >= len(q.Options) {
		return
	}
	s.answered = true
	s.total++

	if ev.Index == q.Answer {
		s.score++
		ctx.At(roleOption, ev.Index).AddClass(classCorrect)
		ctx.SetStatus("Correct!")
	} else {
		ctx.At(roleOption, ev.Index).AddClass(classWrong)
		ctx.At(roleOption, q.Answer).AddClass(classCorrect)
		ctx.SetStatus("Wrong!")
	}
	ctx.SetText(roleScore, fmt.Sprintf("%d / %d", s.score, s.total))
}
