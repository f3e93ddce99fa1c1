package main

import (
	"io"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a game.
Leaving a game stops it completely; picking it again starts fresh.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start game
  Tab          - High scores
  T            - Next color theme
  Q            - Quit

In a game:
  Tab/Shift+Tab - Move focus
  Enter/Space   - Press the focused button
  Arrows, W/S   - Game controls
  Esc/B         - Back to menu

Examples:
  arcade menu
  arcade menu --seed 42
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := newEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	return e.runSession("")
}
