// Package wordscramble implements Word Scramble: unscramble the letters.
package wordscramble

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
const Key = "word-scramble"

const (
	roleWord   = "word"
	roleAnswer = "answer"
	roleSubmit = "submit"
	roleSkip   = "skip"
	roleScore  = "score"
)

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleWord, Kind: core.KindText},
			{Name: roleAnswer, Label: "Answer", Kind: core.KindInput},
			{Name: roleSubmit, Kind: core.KindButton, Text: "Check"},
			{Name: roleSkip, Kind: core.KindButton, Text: "Skip"},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
		},
	}
}

type state struct {
	cfg     config.WordScrambleConfig
	rng     *rand.Rand
	word    string
	score   int
	waiting bool // next word pending
}

// Definition returns the game definition.
func Definition(cfg config.WordScrambleConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Word Scramble",
		Summary:  "Unscramble the letters.",
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
			lifecycle.On(roleSkip, core.EventClick, skip),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			ctx.SetText(roleScore, "0")
			newWord(s, ctx)
		}),
	}
}

// Scramble shuffles the letters of word. Words longer than three letters
// never come back unchanged unless all their letters are the same.
func Scramble(word string, rng *rand.Rand) string {
	letters := []rune(word)
	shuffle := func() string {
		rng.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		return string(letters)
	}

	out := shuffle()
	if len(letters) <= 3 || uniform(letters) {
		return out
	}
	for out == word {
		out = shuffle()
	}
	return out
}

func uniform(letters []rune) bool {
	for _, r := range letters[1:] {
		if r != letters[0] {
			return false
		}
	}
	return true
}

func newWord(s *state, ctx *lifecycle.Context) {
	s.waiting = false
	s.word = strings.ToUpper(s.cfg.Words[s.rng.Intn(len(s.cfg.Words))])
	ctx.SetText(roleWord, Scramble(s.word, s.rng))
	ctx.El(roleAnswer).SetValue("")
	ctx.SetStatus("Unscramble the letters!")
}

func check(s *state, ctx *lifecycle.Context) {
	if s.waiting {
		return
	}
	answer := strings.ToUpper(strings.TrimSpace(ctx.El(roleAnswer).Value()))
	if answer != s.word {
		ctx.SetStatus("Wrong! Try again or skip.")
		return
	}

	s.score++
	s.waiting = true
	ctx.SetText(roleScore, strconv.Itoa(s.score))
	ctx.SetStatus("Correct!")
	ctx.After(s.cfg.NextWord, func() { newWord(s, ctx) })
}

func skip(s *state, ctx *lifecycle.Context, _ core.Event) {
	if s.waiting {
		return
	}
	s.waiting = true
	ctx.SetStatus(fmt.Sprintf("The word was: %s", s.word))
	ctx.After(s.cfg.Reveal, func() { newWord(s, ctx) })
}
