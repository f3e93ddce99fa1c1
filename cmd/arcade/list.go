package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/games"
	"github.com/vovakirdan/minigame-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games in the arcade, in menu order.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	printGames(cmd.OutOrStdout(), games.Catalog(cfg).List())
	return nil
}

func printGames(w io.Writer, list []registry.GameInfo) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxKeyLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range list {
		maxKeyLen = max(maxKeyLen, len(g.Key))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxKeyLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxKeyLen, "--", maxTitleLen, "-----", "-----------")
	for _, g := range list {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxKeyLen, g.Key, maxTitleLen, g.Title, g.Summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}
