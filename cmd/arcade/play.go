package main

import (
	"io"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Esc returns to the menu.

Examples:
  arcade play snake
  arcade play t2048 --seed 7
  arcade play hangman --config ./my-arcade.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	e, err := newEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	return e.runSession(args[0])
}
