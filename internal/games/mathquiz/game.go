// Package mathquiz implements Math Quiz: solve arithmetic problems and keep a
// streak going.
package mathquiz

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
const Key = "math"

const (
	roleQuestion = "question"
	roleAnswer   = "answer"
	roleSubmit   = "submit"
	roleScore    = "score"
	roleStreak   = "streak"
	roleRestart  = "restart"
)

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleQuestion, Kind: core.KindText},
			{Name: roleAnswer, Label: "Answer", Kind: core.KindInput},
			{Name: roleSubmit, Kind: core.KindButton, Text: "Submit"},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
			{Name: roleStreak, Label: "Streak", Kind: core.KindText},
			{Name: roleRestart, Kind: core.KindButton, Text: "Restart"},
		},
	}
}

// Problem is one arithmetic question.
type Problem struct {
	A, B int
	Op   rune
}

// Answer returns the result of the problem.
func (p Problem) Answer() int {
	switch p.Op {
	case '-':
		return p.A - p.B
	case '×':
		return p.A * p.B
	default:
		return p.A + p.B
	}
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %c %d = ?", p.A, p.Op, p.B)
}

var ops = []rune{'+', '-', '×'}

// NewProblem draws operands in [1, max]. Subtraction puts the larger
// operand first so answers are never negative.
func NewProblem(rng *rand.Rand, max int) Problem {
	a, b := rng.Intn(max)+1, rng.Intn(max)+1
	op := ops[rng.Intn(len(ops))]
	if op == '-' && b > a {
		a, b = b, a
	}
	return Problem{A: a, B: b, Op: op}
}

type state struct {
	cfg     config.MathConfig
	rng     *rand.Rand
	problem Problem
	score   int
	streak  int
	waiting bool
}

// Definition returns the game definition.
func Definition(cfg config.MathConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Math Quiz",
		Summary:  "Quick arithmetic, keep the streak.",
		Template: Template(),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleSubmit, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				check(s, ctx)
			}),
			lifecycle.On(roleAnswer, core.EventKeyPress, func(s *state, ctx *lifecycle.Context, ev core.Event) {
				if ev.Key == core.KeyEnter {
					check(s, ctx)
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
	ctx.CancelAll()
	endStreak(s, ctx)
	s.score = 0
	ctx.SetText(roleScore, "0")
	ctx.SetText(roleStreak, "0")
	next(s, ctx)
}

func next(s *state, ctx *lifecycle.Context) {
	s.waiting = false
	s.problem = NewProblem(s.rng, s.cfg.MaxOperand)
	ctx.SetText(roleQuestion, s.problem.String())
	ctx.El(roleAnswer).SetValue("")
	ctx.SetStatus("Solve the equation!")
}

func check(s *state, ctx *lifecycle.Context) {
	if s.waiting {
		return
	}
	answer, err := strconv.Atoi(strings.TrimSpace(ctx.El(roleAnswer).Value()))
	if err != nil {
		ctx.SetStatus("Please enter a number.")
		return
	}

	s.waiting = true
	if answer == s.problem.Answer() {
		s.score++
		s.streak++
		ctx.SetText(roleScore, strconv.Itoa(s.score))
		ctx.SetText(roleStreak, strconv.Itoa(s.streak))
		ctx.SetStatus("Correct! Keep going!")
		ctx.After(s.cfg.NextCorrect, func() { next(s, ctx) })
		return
	}

	endStreak(s, ctx)
	ctx.SetText(roleStreak, "0")
	ctx.SetStatus("Wrong! Try the next one.")
	ctx.After(s.cfg.NextWrong, func() { next(s, ctx) })
}

// endStreak saves the streak that just ended as the run's score.
func endStreak(s *state, ctx *lifecycle.Context) {
	if s.streak > 0 {
		ctx.Report(s.streak)
	}
	s.streak = 0
}
