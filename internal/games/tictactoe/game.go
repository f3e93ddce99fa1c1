// Package tictactoe implements two-player Tic Tac Toe on a 3x3 board.
package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "tic-tac-toe"

const (
	roleCell    = "cell"
	roleRestart = "restart"

	classWinner = "winner"
)

// winningLines lists every row, column and diagonal.
var winningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Template returns the game's markup.
func Template() core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleCell, Kind: core.KindButton, Count: 9, Columns: 3},
			{Name: roleRestart, Kind: core.KindButton, Text: "Restart"},
		},
	}
}

type state struct {
	board   [9]string
	current string
	over    bool
}

func newState(*rand.Rand) *state {
	return &state{current: "X"}
}

// Definition returns the game definition.
func Definition() *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Tic Tac Toe",
		Summary:  "Two players take turns. Three in a row wins.",
		Template: Template(),
		NewState: lifecycle.Init(newState),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleCell, core.EventClick, play),
			lifecycle.On(roleRestart, core.EventClick, func(s *state, ctx *lifecycle.Context, _ core.Event) {
				reset(s, ctx)
			}),
		},
		Mount: lifecycle.MountWith(reset),
	}
}

func reset(s *state, ctx *lifecycle.Context) {
	*s = *newState(nil)
	for _, cell := range ctx.Group(roleCell) {
		cell.SetText("")
		cell.RemoveClass(classWinner)
	}
	ctx.SetStatus("Player X's turn")
}

func play(s *state, ctx *lifecycle.Context, ev core.Event) {
	if s.over {
		return
	}
	i := ev.Index
	if i < 0 || i >= len(s.board) || s.board[i] != "" {
		return
	}

	s.board[i] = s.current
	ctx.At(roleCell, i).SetText(s.current)

	if line, ok := winner(s.board); ok {
		for _, idx := range line {
			ctx.At(roleCell, idx).AddClass(classWinner)
		}
		ctx.SetStatus(fmt.Sprintf("Player %s wins!", s.current))
		s.over = true
		return
	}
	if full(s.board) {
		ctx.SetStatus("It's a draw. Hit restart to play again.")
		s.over = true
		return
	}

	if s.current == "X" {
		s.current = "O"
	} else {
		s.current = "X"
	}
	ctx.SetStatus(fmt.Sprintf("Player %s's turn", s.current))
}

// winner returns the first completed line, if any.
func winner(b [9]string) ([3]int, bool) {
	for _, line := range winningLines {
		a := b[line[0]]
		if a != "" && a == b[line[1]] && a == b[line[2]] {
			return line, true
		}
	}
	return [3]int{}, false
}

func full(b [9]string) bool {
	for _, v := range b {
		if v == "" {
			return false
		}
	}
	return true
}
