package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/games/gametest"
)

const tick = 150 * time.Millisecond

func start(t *testing.T) (*gametest.Harness, *state) {
	t.Helper()
	h := gametest.Start(t, Definition(config.Default().Snake), 42)
	h.Click(roleStart, 0)
	return h, h.Inst.State().(*state)
}

func TestStartsInCenterMovingRight(t *testing.T) {
	h, s := start(t)
	if s.snake[0] != (core.Point{X: 6, Y: 6}) {
		t.Fatalf("head = %v, want (6,6)", s.snake[0])
	}
	s.food = core.Point{X: 0, Y: 0}

	h.Advance(tick)
	if s.snake[0] != (core.Point{X: 7, Y: 6}) {
		t.Errorf("head = %v after one tick, want (7,6)", s.snake[0])
	}
	if got := h.Container().Get(roleBoard).Surface().Get(7, 6); got != '█' {
		t.Errorf("board at head = %q", got)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	h, s := start(t)
	s.food = core.Point{X: 0, Y: 0}

	h.Key(core.KeyArrowLeft)
	h.Advance(tick)
	if s.direction != DirRight {
		t.Errorf("direction = %v, reversal must be ignored", s.direction)
	}

	// Up then Left inside one tick: Left is checked against the applied
	// direction, so the snake turns up instead of folding back.
	h.Key(core.KeyArrowUp)
	h.Key(core.KeyArrowLeft)
	h.Advance(tick)
	if s.direction != DirUp {
		t.Errorf("direction = %v, want up", s.direction)
	}
}

func TestEatingGrows(t *testing.T) {
	h, s := start(t)
	s.food = core.Point{X: 7, Y: 6}

	h.Advance(tick)
	if len(s.snake) != 2 {
		t.Fatalf("length = %d, want 2", len(s.snake))
	}
	if got := h.Text(roleScore); got != "1" {
		t.Errorf("score = %q", got)
	}
	for _, seg := range s.snake {
		if seg == s.food {
			t.Errorf("food spawned on the body at %v", seg)
		}
	}
}

func TestFoodAvoidsBody(t *testing.T) {
	_, s := start(t)
	for y := range 12 {
		for x := range 12 {
			if x != 11 || y != 11 {
				s.snake = append(s.snake, core.Point{X: x, Y: y})
			}
		}
	}
	s.spawnFood()
	if s.food != (core.Point{X: 11, Y: 11}) {
		t.Errorf("food = %v, want the only free cell", s.food)
	}
}

func TestWallEndsGame(t *testing.T) {
	h, s := start(t)
	s.food = core.Point{X: 0, Y: 0}

	h.Advance(6 * tick)
	if s.running {
		t.Fatal("snake left the grid")
	}
	if got := h.Status(); got != "Game Over! Score: 0. Press Start to play again." {
		t.Errorf("status = %q", got)
	}
	if n := h.Inst.PendingTimers(); n != 0 {
		t.Errorf("pending timers = %d after game over", n)
	}
	h.Frozen(func() {
		h.Key(core.KeyArrowUp)
		h.Advance(time.Second)
	})
}

func TestSelfCollisionEndsGame(t *testing.T) {
	h, s := start(t)
	s.food = core.Point{X: 0, Y: 0}
	// Heading right with a body wrapped below and to the left.
	s.snake = []core.Point{{X: 6, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 7}, {X: 6, Y: 7}, {X: 7, Y: 7}}

	h.Key(core.KeyArrowDown)
	h.Advance(tick)
	if s.running {
		t.Error("snake ran into its body")
	}
}

func TestMovingIntoTailIsAllowed(t *testing.T) {
	h, s := start(t)
	s.food = core.Point{X: 0, Y: 0}
	s.snake = []core.Point{{X: 6, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 7}, {X: 6, Y: 7}}

	h.Key(core.KeyArrowDown)
	h.Advance(tick)
	if !s.running {
		t.Error("the tail moves away this tick, so this is not a collision")
	}
}

func TestHighScoreKept(t *testing.T) {
	h, s := start(t)
	s.food = core.Point{X: 7, Y: 6}
	h.Advance(tick)
	s.food = core.Point{X: 0, Y: 0}
	h.Advance(5 * tick)

	if got := h.Text(roleHigh); got != "1" {
		t.Errorf("high = %q", got)
	}
	h.Click(roleStart, 0)
	if got := h.Text(roleScore); got != "0" {
		t.Errorf("score = %q after restart", got)
	}
	h.Dispose()
}

func TestDeterminism(t *testing.T) {
	_, a := start(t)
	_, b := start(t)
	if a.food != b.food {
		t.Errorf("food mismatch: %v vs %v", a.food, b.food)
	}
}
