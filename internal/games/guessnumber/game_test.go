package guessnumber

import (
	"strings"
	"testing"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/games/gametest"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

func start(t *testing.T) (*gametest.Harness, *state) {
	t.Helper()
	h := gametest.Start(t, Definition(config.Default().GuessNumber), 11)
	return h, h.Inst.State().(*state)
}

func TestTargetInRange(t *testing.T) {
	for seed := range int64(50) {
		h := gametest.Start(t, Definition(config.Default().GuessNumber), seed)
		s := h.Inst.State().(*state)
		if s.target < 1 || s.target > 100 {
			t.Fatalf("seed %d: target %d out of range", seed, s.target)
		}
	}
}

func TestTooHighThenCorrect(t *testing.T) {
	h, s := start(t)
	s.target = 42

	h.Type(roleGuess, "50")
	h.Click(roleSubmit, 0)
	if !strings.Contains(h.Status(), "Too high") {
		t.Errorf("status = %q, want too high", h.Status())
	}

	h.Type(roleGuess, "42")
	h.Enter(roleGuess)
	if !strings.Contains(h.Status(), "Correct! You guessed it in 2 attempts!") {
		t.Errorf("status = %q, want correct", h.Status())
	}
	if got := h.Text(roleAttempts); got != "2" {
		t.Errorf("attempts = %q, want 2", got)
	}
}

func TestTooLow(t *testing.T) {
	h, s := start(t)
	s.target = 42

	h.Type(roleGuess, " 7 ")
	h.Enter(roleGuess)
	if !strings.Contains(h.Status(), "Too low") {
		t.Errorf("status = %q, want too low", h.Status())
	}
}

func TestInvalidInputDoesNotCountAttempt(t *testing.T) {
	tests := []string{"", "abc", "0", "101", "-5", "4.2"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			h, _ := start(t)
			h.Type(roleGuess, input)
			h.Click(roleSubmit, 0)

			if !strings.Contains(h.Status(), "Please enter a number between 1 and 100.") {
				t.Errorf("status = %q, want re-prompt", h.Status())
			}
			if got := h.Text(roleAttempts); got != "0" {
				t.Errorf("attempts = %q, want 0", got)
			}
		})
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	h, _ := start(t)
	h.Type(roleGuess, "50")
	h.Frozen(func() {
		h.Inst.Dispatch(core.KeyPress(roleGuess, "a"))
	})
}

func TestRestartClearsInput(t *testing.T) {
	h, _ := start(t)
	h.Type(roleGuess, "50")
	h.Click(roleSubmit, 0)

	h.Click(roleRestart, 0)
	if got := h.Container().Get(roleGuess).Value(); got != "" {
		t.Errorf("input = %q after restart", got)
	}
	if got := h.Text(roleAttempts); got != "0" {
		t.Errorf("attempts = %q after restart", got)
	}
	h.Dispose()
}

func TestWinReportsOnce(t *testing.T) {
	var reported []int
	h := gametest.Start(t, Definition(config.Default().GuessNumber), 11,
		lifecycle.WithScores(func(score int) { reported = append(reported, score) }, nil))
	s := h.Inst.State().(*state)
	s.target = 42

	h.Type(roleGuess, "42")
	h.Click(roleSubmit, 0)
	h.Frozen(func() { h.Click(roleSubmit, 0) })
	if got := h.Text(roleAttempts); got != "1" {
		t.Errorf("attempts = %q, want 1 after the win", got)
	}

	h.Click(roleRestart, 0)
	s.target = 7
	h.Type(roleGuess, "50")
	h.Enter(roleGuess)
	h.Type(roleGuess, "7")
	h.Enter(roleGuess)

	if len(reported) != 2 || reported[0] != 1 || reported[1] != 2 {
		t.Errorf("reported = %v, want [1 2]", reported)
	}
}
