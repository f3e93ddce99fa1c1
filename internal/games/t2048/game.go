// Package t2048 implements 2048: slide the tiles, merge equal values, reach
// the target tile.
package t2048

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "t2048"

const (
	roleTile    = "tile"
	roleScore   = "score"
	roleBest    = "best"
	roleRestart = "restart"
)

var keyDirs = map[string]Direction{
	core.KeyArrowUp:    DirUp,
	core.KeyArrowDown:  DirDown,
	core.KeyArrowLeft:  DirLeft,
	core.KeyArrowRight: DirRight,
}

// tileColors gives each tile value a color; larger values reuse the last.
var tileColors = []core.Color{
	core.ColorWhite, core.ColorYellow, core.ColorOrange, core.ColorRed,
	core.ColorMagenta, core.ColorBlue, core.ColorCyan, core.ColorGreen,
}

func tileColor(v int) core.Color {
	i := 0
	for v > 2 && i < len(tileColors)-1 {
		v >>= 1
		i++
	}
	return tileColors[i]
}

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleTile, Kind: core.KindText, Count: BoardSize * BoardSize, Columns: BoardSize},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
			{Name: roleBest, Label: "Best", Kind: core.KindText},
			{Name: roleRestart, Kind: core.KindButton, Text: "New game"},
		},
	}
}

type state struct {
	cfg      config.T2048Config
	rng      *rand.Rand
	board    Board
	score    int
	best     int
	won      bool // target reached and announced
	reported bool
}

// Definition returns the game definition.
func Definition(cfg config.T2048Config) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "2048",
		Summary:  "Slide and merge to reach 2048.",
		Template: Template(),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			return &state{cfg: cfg, rng: rng}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.OnDocument(core.EventKeyDown, func(s *state, ctx *lifecycle.Context, ev core.Event) {
				if dir, ok := keyDirs[ev.Key]; ok {
					move(s, ctx, dir)
				}
			}),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				s.report(ctx)
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			s.best = ctx.Best()
			reset(s, ctx)
		}),
	}
}

func reset(s *state, ctx *lifecycle.Context) {
	s.board = Board{}
	s.score = 0
	s.won, s.reported = false, false
	s.spawnTile()
	s.spawnTile()
	render(s, ctx)
	ctx.SetStatus("Use arrow keys to slide!")
}

// spawnTile puts a 2, or a 4 with the configured chance, on a random empty
// cell.
func (s *state) spawnTile() {
	empty := EmptyCells(s.board)
	if len(empty) == 0 {
		return
	}
	cell := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() < s.cfg.Spawn4Chance {
		value = 4
	}
	s.board[cell.Y][cell.X] = value
}

// report saves a finished or abandoned game once.
func (s *state) report(ctx *lifecycle.Context) {
	if s.reported || s.score == 0 {
		return
	}
	s.reported = true
	ctx.Report(s.score)
}

func move(s *state, ctx *lifecycle.Context, dir Direction) {
	board, gained, changed := Slide(s.board, dir)
	if !changed {
		return
	}
	s.board = board
	s.score += gained
	s.spawnTile()
	render(s, ctx)

	won := !s.won && MaxTile(s.board) >= s.cfg.Target
	if won {
		s.won = true
		ctx.SetStatus(fmt.Sprintf("You won! You reached %d!", s.cfg.Target))
	}
	if !CanMove(s.board) {
		s.report(ctx)
		if !won {
			ctx.SetStatus(fmt.Sprintf("No moves left! Final score: %d", s.score))
		}
	}
}

func render(s *state, ctx *lifecycle.Context) {
	for i, tile := range ctx.Group(roleTile) {
		v := s.board[i/BoardSize][i%BoardSize]
		if v == 0 {
			tile.SetText("")
			tile.SetData(core.DataColor, "")
			continue
		}
		tile.SetText(strconv.Itoa(v))
		tile.SetData(core.DataColor, tileColor(v).String())
	}
	ctx.SetText(roleScore, strconv.Itoa(s.score))
	s.best = max(s.best, s.score)
	ctx.SetText(roleBest, strconv.Itoa(s.best))
}
