package dice

import (
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/games/gametest"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

func TestVerdict(t *testing.T) {
	tests := []struct {
		total, high int
		want        string
	}{
		{7, 0, "New high score!"},
		{12, 11, "New high score!"},
		{12, 12, "Double sixes! Maximum roll!"},
		{2, 12, "Snake eyes! Unlucky roll."},
		{6, 9, "You rolled 6!"},
	}
	for _, tt := range tests {
		if got := verdict(tt.total, tt.high); got != tt.want {
			t.Errorf("verdict(%d, %d) = %q, want %q", tt.total, tt.high, got, tt.want)
		}
	}
}

func TestRollShowsDiceAfterDelay(t *testing.T) {
	h := gametest.Start(t, Definition(config.Default().Dice), 11)

	h.Click(roleRoll, 0)
	for i := range 2 {
		if !h.Container().At(roleDie, i).HasClass(classRolling) {
			t.Fatalf("die %d not rolling", i)
		}
	}
	if got := h.Text(roleTotal); got != "-" {
		t.Fatalf("total shown before the roll finished: %q", got)
	}

	h.Advance(500 * time.Millisecond)

	total := 0
	for i := range 2 {
		die := h.Container().At(roleDie, i)
		if die.HasClass(classRolling) {
			t.Errorf("die %d still rolling", i)
		}
		v := slices.Index(Faces[:], die.Text()) + 1
		if v == 0 {
			t.Fatalf("die %d shows %q", i, die.Text())
		}
		total += v
	}
	if got := h.Text(roleTotal); got != strconv.Itoa(total) {
		t.Errorf("total = %q, dice sum to %d", got, total)
	}
	if got := h.Text(roleHigh); got != strconv.Itoa(total) {
		t.Errorf("high = %q after first roll", got)
	}
	if got := h.Status(); got != "New high score!" {
		t.Errorf("status = %q", got)
	}
}

func TestRollIgnoredWhileRolling(t *testing.T) {
	h := gametest.Start(t, Definition(config.Default().Dice), 11)
	h.Click(roleRoll, 0)
	h.Click(roleRoll, 0)
	if n := h.Inst.PendingTimers(); n != 1 {
		t.Errorf("pending timers = %d, want 1", n)
	}
}

func TestHighLoadedFromStore(t *testing.T) {
	var reported []int
	h := gametest.Start(t, Definition(config.Default().Dice), 11,
		lifecycle.WithScores(func(n int) { reported = append(reported, n) }, func() int { return 12 }))

	if got := h.Text(roleHigh); got != "12" {
		t.Fatalf("high = %q, want stored 12", got)
	}
	h.Click(roleRoll, 0)
	h.Advance(500 * time.Millisecond)

	if got := h.Text(roleHigh); got != "12" {
		t.Errorf("high = %q, a roll cannot beat 12", got)
	}
	if len(reported) != 1 {
		t.Errorf("reported %v, want one total", reported)
	}
}
