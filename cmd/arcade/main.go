// arcade is a terminal mini-game arcade: a menu of small games, each
// running as an isolated instance that is fully torn down on exit.
//
// Usage:
//
//	arcade                   - Start the game picker (same as arcade menu)
//	arcade list              - List available games
//	arcade play <game>       - Play a game directly
//	arcade scores <game>     - Show high scores for a game
//	arcade theme [name]      - Show or set the color theme
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Load game settings from a YAML file
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - Log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Mini Arcade - small games in your terminal",
	Long: `Mini Arcade is a collection of small games you play in the terminal:
Tic Tac Toe, Memory Match, Simon Says, Snake, 2048 and more.

Available commands:
  menu     - Interactive game picker (default)
  list     - Show all available games
  play     - Play a specific game directly
  scores   - View high scores
  theme    - Show or change the color theme
  serve    - Start SSH server for remote play

Examples:
  arcade
  arcade play snake
  arcade scores reaction
  arcade theme ocean
  arcade serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arcade config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(serveCmd)
}
