package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 scores for the specified game, best first.
Games where less is better (reaction time, guesses) rank the lowest score first.

Examples:
  arcade scores snake
  arcade scores reaction
  arcade scores clicker --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded score of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	e, err := newEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	def, err := e.catalog.Get(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}
	if e.store == nil {
		return errors.New("scores database is not available")
	}

	w := cmd.OutOrStdout()
	if flagClearScores {
		if err := e.store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared scores for %s.\n", def.Title)
		return nil
	}

	ord := order(def.LowerIsBetter)
	scores, err := e.store.TopScores(gameID, 10, ord)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", def.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := e.store.GetGameStats(gameID, ord)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Games: %d  Average: %.1f\n", stats.Best, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
