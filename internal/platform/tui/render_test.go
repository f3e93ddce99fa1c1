package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/games/tictactoe"
	"github.com/vovakirdan/minigame-arcade/internal/theme"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "ef", core.ColorDefault)

	got := strings.Split(ansi.Strip(RenderScreen(s, theme.Default())), "\n")
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if !strings.HasPrefix(got[0], "abcd") {
		t.Errorf("line 0 = %q, want prefix %q", got[0], "abcd")
	}
	if !strings.HasPrefix(got[1], "ef") {
		t.Errorf("line 1 = %q, want prefix %q", got[1], "ef")
	}
}

func TestRenderContainer(t *testing.T) {
	c := core.NewContainer(tictactoe.Template())
	c.Get("status").SetText("Player X's turn")
	c.At("cell", 4).SetText("X")

	out := ansi.Strip(RenderContainer(c, theme.Default(), c.At("cell", 0)))
	for _, want := range []string{"Player X's turn", "Restart", "X"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestElementColor(t *testing.T) {
	c := core.NewContainer(tictactoe.Template())
	cell := c.At("cell", 0)

	if got := elementColor(cell); got != core.ColorDefault {
		t.Errorf("plain cell color = %v, want default", got)
	}
	cell.SetClasses("filled", "yellow")
	if got := elementColor(cell); got != core.ColorYellow {
		t.Errorf("class color = %v, want yellow", got)
	}
	cell.SetClasses("wrong")
	if got := elementColor(cell); got != core.ColorRed {
		t.Errorf("tint = %v, want red", got)
	}
	cell.SetData(core.DataColor, core.ColorBlue.String())
	if got := elementColor(cell); got != core.ColorBlue {
		t.Errorf("data color = %v, want blue", got)
	}
}
