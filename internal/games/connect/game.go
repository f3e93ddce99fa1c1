// Package connect implements Connect Four for two players at one keyboard.
package connect

import (
	"fmt"
	"math/rand"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "connect"

const (
	roleCell    = "cell"
	roleRestart = "restart"

	classFilled = "filled"
)

// Player is a disc color. The zero value marks an empty slot.
type Player string

const (
	Empty  Player = ""
	Red    Player = "red"
	Yellow Player = "yellow"
)

func (p Player) other() Player {
	if p == Red {
		return Yellow
	}
	return Red
}

func (p Player) color() core.Color {
	if p == Red {
		return core.ColorRed
	}
	return core.ColorYellow
}

// Board is a rows×cols grid, row 0 at the top.
type Board [][]Player

// NewBoard returns an empty board.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]Player, cols)
	}
	return b
}

// Drop places p in the lowest empty slot of col and returns its row, or -1
// when the column is full.
func (b Board) Drop(col int, p Player) int {
	if col < 0 || len(b) == 0 || col >= len(b[0]) {
		return -1
	}
	for r := len(b) - 1; r >= 0; r-- {
		if b[r][col] == Empty {
			b[r][col] = p
			return r
		}
	}
	return -1
}

var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Wins reports whether the disc at (row, col) is part of four or more in a
// row along any axis.
func (b Board) Wins(row, col int) bool {
	p := b[row][col]
	if p == Empty {
		return false
	}
	for _, a := range axes {
		n := 1 + b.run(row, col, a[0], a[1], p) + b.run(row, col, -a[0], -a[1], p)
		if n >= 4 {
			return true
		}
	}
	return false
}

func (b Board) run(row, col, dr, dc int, p Player) int {
	n := 0
	for r, c := row+dr, col+dc; r >= 0 && r < len(b) && c >= 0 && c < len(b[r]) && b[r][c] == p; r, c = r+dr, c+dc {
		n++
	}
	return n
}

// Full reports whether no slot is empty.
func (b Board) Full() bool {
	for _, row := range b {
		for _, p := range row {
			if p == Empty {
				return false
			}
		}
	}
	return true
}

// Template returns the game's markup.
func Template(rows, cols int) core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleCell, Kind: core.KindButton, Count: rows * cols, Columns: cols},
			{Name: roleRestart, Kind: core.KindButton, Text: "Restart"},
		},
	}
}

type state struct {
	cfg   config.ConnectConfig
	board Board
	turn  Player
	over  bool
}

// Definition returns the game definition.
func Definition(cfg config.ConnectConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Connect Four",
		Summary:  "Line up four before your opponent.",
		Template: Template(cfg.Rows, cfg.Cols),
		NewState: lifecycle.Init(func(*rand.Rand) *state {
			return &state{cfg: cfg}
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleCell, core.EventClick, drop),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(reset),
	}
}

func reset(s *state, ctx *lifecycle.Context) {
	s.board = NewBoard(s.cfg.Rows, s.cfg.Cols)
	s.turn = Red
	s.over = false
	for _, cell := range ctx.Group(roleCell) {
		cell.SetText("○")
		cell.SetClasses()
		cell.SetData(core.DataColor, "")
	}
	ctx.SetStatus(turnStatus(s.turn))
}

func turnStatus(p Player) string {
	return fmt.Sprintf("%s's turn", cases.Title(language.English).String(string(p)))
}

func drop(s *state, ctx *lifecycle.Context, ev core.Event) {
	if s.over {
		return
	}
	col := ev.Index % s.cfg.Cols
	row := s.board.Drop(col, s.turn)
	if row < 0 {
		return
	}

	cell := ctx.At(roleCell, row*s.cfg.Cols+col)
	cell.SetText("●")
	cell.SetClasses(classFilled, string(s.turn))
	cell.SetData(core.DataColor, s.turn.color().String())

	switch {
	case s.board.Wins(row, col):
		s.over = true
		ctx.SetStatus(fmt.Sprintf("%s wins!", cases.Upper(language.English).String(string(s.turn))))
	case s.board.Full():
		s.over = true
		ctx.SetStatus("It's a draw!")
	default:
		s.turn = s.turn.other()
		ctx.SetStatus(turnStatus(s.turn))
	}
}
