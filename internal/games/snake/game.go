// Package snake implements Snake on a square grid driven by the arrow keys.
package snake

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "snake"

const (
	roleBoard = "board"
	roleScore = "score"
	roleHigh  = "high"
	roleStart = "start"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

var deltas = [...]core.Point{
	DirRight: {X: 1},
	DirDown:  {Y: 1},
	DirLeft:  {X: -1},
	DirUp:    {Y: -1},
}

var keyDirs = map[string]Direction{
	core.KeyArrowRight: DirRight,
	core.KeyArrowDown:  DirDown,
	core.KeyArrowLeft:  DirLeft,
	core.KeyArrowUp:    DirUp,
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	}
	return "unknown"
}

// horizontal reports whether d moves along the X axis.
func (d Direction) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Template returns the game's markup for a size×size grid.
func Template(size int) core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleBoard, Kind: core.KindSurface, Width: size, Height: size},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
			{Name: roleHigh, Label: "High", Kind: core.KindText},
			{Name: roleStart, Kind: core.KindButton, Text: "Start"},
		},
	}
}

type state struct {
	cfg       config.SnakeConfig
	rng       *rand.Rand
	running   bool
	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	food      core.Point
	score     int
	high      int
	loop      lifecycle.TimerID
}

// Definition returns the game definition.
func Definition(cfg config.SnakeConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Snake",
		Summary:  "Eat, grow, don't bite yourself.",
		Template: Template(cfg.Size),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleStart, core.EventClick, begin),
			lifecycle.OnDocument(core.EventKeyDown, steer),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			s.high = ctx.Best()
			s.snake = []core.Point{s.origin()}
			s.food = core.Point{X: -1, Y: -1}
			ctx.SetText(roleScore, "0")
			ctx.SetText(roleHigh, strconv.Itoa(s.high))
			ctx.SetStatus("Press Start to play!")
			render(s, ctx)
		}),
	}
}

func (s *state) origin() core.Point {
	return core.Point{X: s.cfg.Size / 2, Y: s.cfg.Size / 2}
}

func begin(s *state, ctx *lifecycle.Context, _ core.Event) {
	if s.running {
		return
	}
	s.running = true
	s.snake = []core.Point{s.origin()}
	s.direction, s.nextDir = DirRight, DirRight
	s.score = 0
	ctx.SetText(roleScore, "0")
	s.spawnFood()
	ctx.SetStatus("Use arrow keys to move!")
	render(s, ctx)
	s.loop = ctx.Every(s.cfg.Tick, func() { step(s, ctx) })
}

// steer buffers a turn. Turns along the current axis are ignored, so the
// snake can never reverse into itself even with two keys inside one tick.
func steer(s *state, _ *lifecycle.Context, ev core.Event) {
	if !s.running {
		return
	}
	d, ok := keyDirs[ev.Key]
	if !ok || d.horizontal() == s.direction.horizontal() {
		return
	}
	s.nextDir = d
}

func step(s *state, ctx *lifecycle.Context) {
	s.direction = s.nextDir
	head := s.snake[0].Add(deltas[s.direction])
	grow := head == s.food

	if !head.In(s.cfg.Size, s.cfg.Size) || s.hits(head, grow) {
		finish(s, ctx)
		return
	}

	s.snake = append([]core.Point{head}, s.snake...)
	if grow {
		s.score++
		ctx.SetText(roleScore, strconv.Itoa(s.score))
		s.spawnFood()
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}
	render(s, ctx)
}

// hits reports whether p is on the body. The tail is excluded when the
// snake is not growing since it moves out of the way this tick.
func (s *state) hits(p core.Point, grow bool) bool {
	body := s.snake
	if !grow {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}

func (s *state) spawnFood() {
	var empty []core.Point
	for y := range s.cfg.Size {
		for x := range s.cfg.Size {
			p := core.Point{X: x, Y: y}
			if !s.hits(p, true) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		s.food = core.Point{X: -1, Y: -1}
		return
	}
	s.food = empty[s.rng.Intn(len(empty))]
}

func finish(s *state, ctx *lifecycle.Context) {
	s.running = false
	ctx.Cancel(s.loop)
	if s.score > s.high {
		s.high = s.score
		ctx.SetText(roleHigh, strconv.Itoa(s.high))
	}
	ctx.Report(s.score)
	ctx.SetStatus(fmt.Sprintf("Game Over! Score: %d. Press Start to play again.", s.score))
}

func render(s *state, ctx *lifecycle.Context) {
	ctx.El(roleBoard).Draw(func(dst *core.Screen) {
		dst.Clear()
		for y := range dst.Height() {
			for x := range dst.Width() {
				dst.Set(x, y, '·', core.ColorGray)
			}
		}
		dst.Set(s.food.X, s.food.Y, '●', core.ColorRed)
		for i, seg := range s.snake {
			if i == 0 {
				dst.Set(seg.X, seg.Y, '█', core.ColorCyan)
			} else {
				dst.Set(seg.X, seg.Y, '▓', core.ColorGreen)
			}
		}
	})
}
