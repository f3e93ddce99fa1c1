package memory

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/games/gametest"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

func start(t *testing.T, opts ...lifecycle.Option) (*gametest.Harness, *state) {
	t.Helper()
	h := gametest.Start(t, Definition(config.Default().Memory), 3, opts...)
	return h, h.Inst.State().(*state)
}

// pairOf returns the other index holding the same symbol as i, and some
// index holding a different symbol.
func pairOf(s *state, i int) (same, other int) {
	same, other = -1, -1
	for j, sym := range s.deck {
		if j == i {
			continue
		}
		if sym == s.deck[i] {
			same = j
		} else if other < 0 {
			other = j
		}
	}
	return same, other
}

func TestShuffleHoldsEachSymbolTwice(t *testing.T) {
	_, s := start(t)

	counts := map[string]int{}
	for _, sym := range s.deck {
		counts[sym]++
	}
	if len(counts) != 6 {
		t.Fatalf("deck has %d distinct symbols, want 6", len(counts))
	}
	for sym, n := range counts {
		if n != 2 {
			t.Errorf("symbol %s appears %d times", sym, n)
		}
	}
}

func TestMatchStaysFlipped(t *testing.T) {
	h, s := start(t)
	same, _ := pairOf(s, 0)

	h.Click(roleTile, 0)
	h.Click(roleTile, same)

	for _, i := range []int{0, same} {
		if !h.Container().At(roleTile, i).HasClass(classMatched) {
			t.Errorf("tile %d not matched", i)
		}
	}
	if got := h.Text(roleMoves); got != "1" {
		t.Errorf("moves = %q, want 1", got)
	}
	h.Frozen(func() { h.Click(roleTile, 0) })
}

func TestMismatchFlipsBackAndLocks(t *testing.T) {
	h, s := start(t)
	_, other := pairOf(s, 0)
	third := -1
	for j := range s.deck {
		if j != 0 && j != other {
			third = j
			break
		}
	}

	h.Click(roleTile, 0)
	h.Click(roleTile, other)
	if !s.locked {
		t.Fatal("board should lock while a mismatch is shown")
	}

	h.Frozen(func() { h.Click(roleTile, third) })

	h.Advance(699 * time.Millisecond)
	if h.TextAt(roleTile, 0) == faceDown {
		t.Fatal("tile flipped back too early")
	}
	h.Advance(time.Millisecond)
	for _, i := range []int{0, other} {
		tile := h.Container().At(roleTile, i)
		if tile.Text() != faceDown || tile.HasClass(classFlipped) {
			t.Errorf("tile %d not flipped back", i)
		}
	}
	if s.locked {
		t.Error("board still locked after flip-back")
	}
}

func TestClickingFirstTileAgainIgnored(t *testing.T) {
	h, _ := start(t)
	h.Click(roleTile, 0)
	h.Frozen(func() { h.Click(roleTile, 0) })
	if got := h.Text(roleMoves); got != "0" {
		t.Errorf("moves = %q, want 0", got)
	}
}

func TestCompletingBoardReportsMoves(t *testing.T) {
	var reported []int
	h, s := start(t, lifecycle.WithScores(func(score int) { reported = append(reported, score) }, nil))

	done := map[int]bool{}
	for i := range s.deck {
		if done[i] {
			continue
		}
		same, _ := pairOf(s, i)
		h.Click(roleTile, i)
		h.Click(roleTile, same)
		done[i], done[same] = true, true
	}

	if !strings.Contains(h.Status(), "found all pairs in 6 moves") {
		t.Errorf("status = %q", h.Status())
	}
	if len(reported) != 1 || reported[0] != 6 {
		t.Errorf("reported = %v, want [6]", reported)
	}
}

func TestRestartCancelsPendingFlipBack(t *testing.T) {
	h, s := start(t)
	_, other := pairOf(s, 0)
	h.Click(roleTile, 0)
	h.Click(roleTile, other)

	h.Click(roleRestart, 0)
	if n := h.Inst.PendingTimers(); n != 0 {
		t.Fatalf("pending timers after restart = %d", n)
	}

	h.Click(roleTile, 5)
	h.Advance(time.Second)
	if got := h.TextAt(roleTile, 5); got == faceDown {
		t.Error("stale flip-back hid a tile of the new deck")
	}
}

func TestDisposeDuringFlipBack(t *testing.T) {
	h, s := start(t)
	_, other := pairOf(s, 0)
	h.Click(roleTile, 0)
	h.Click(roleTile, other)

	h.Dispose()
	h.Frozen(func() { h.Advance(time.Second) })
}
