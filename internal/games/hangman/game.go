// Package hangman implements Hangman with an on-screen letter keyboard.
package hangman

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "hangman"

const (
	roleWord    = "word"
	roleLetter  = "letter"
	roleLives   = "lives"
	roleRestart = "restart"

	heart = "♥"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleWord, Kind: core.KindText},
			{Name: roleLives, Label: "Lives", Kind: core.KindText},
			{Name: roleLetter, Kind: core.KindButton, Count: len(alphabet), Columns: 9},
			{Name: roleRestart, Kind: core.KindButton, Text: "New word"},
		},
	}
}

// Mask renders word with unguessed letters as underscores, space separated.
func Mask(word string, guessed map[rune]bool) string {
	parts := make([]string, 0, len(word))
	for _, r := range word {
		if guessed[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

type state struct {
	cfg     config.HangmanConfig
	rng     *rand.Rand
	word    string
	guessed map[rune]bool
	lives   int
	over    bool
}

// Definition returns the game definition.
func Definition(cfg config.HangmanConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Hangman",
		Summary:  "Guess the word one letter at a time.",
		Template: Template(),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleLetter, core.EventClick, guess),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(reset),
	}
}

func reset(s *state, ctx *lifecycle.Context) {
	s.word = strings.ToUpper(s.cfg.Words[s.rng.Intn(len(s.cfg.Words))])
	s.guessed = make(map[rune]bool)
	s.lives = s.cfg.Lives
	s.over = false
	for i, btn := range ctx.Group(roleLetter) {
		btn.SetText(string(alphabet[i]))
		btn.SetDisabled(false)
	}
	ctx.SetText(roleWord, Mask(s.word, s.guessed))
	ctx.SetText(roleLives, strings.Repeat(heart, s.lives))
	ctx.SetStatus("Guess a letter!")
}

func guess(s *state, ctx *lifecycle.Context, ev core.Event) {
	if s.over || ev.Index < 0 || ev.Index >= len(alphabet) {
		return
	}
	letter := rune(alphabet[ev.Index])
	if s.guessed[letter] {
		return
	}
	s.guessed[letter] = true
	ctx.At(roleLetter, ev.Index).SetDisabled(true)

	if strings.ContainsRune(s.word, letter) {
		ctx.SetStatus("Good guess!")
	} else {
		s.lives--
		ctx.SetStatus("Wrong letter!")
	}
	ctx.SetText(roleLives, strings.Repeat(heart, s.lives))

	masked := Mask(s.word, s.guessed)
	switch {
	case s.lives == 0:
		s.over = true
		ctx.SetText(roleWord, s.word)
		ctx.SetStatus("Game Over! The word was " + s.word)
	case !strings.Contains(masked, "_"):
		s.over = true
		ctx.SetText(roleWord, masked)
		ctx.SetStatus("You won! The word was " + s.word)
		ctx.Report(s.lives)
	default:
		ctx.SetText(roleWord, masked)
	}
}
