package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigame-arcade/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the color theme",
	Long: `Without an argument, lists the themes and marks the current one.
With a name, stores it as the theme for the next session.
The theme can also be cycled with T inside the arcade.

Examples:
  arcade theme
  arcade theme forest`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	e, err := newEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	w := cmd.OutOrStdout()
	if len(args) == 0 {
		current := theme.DefaultName
		if e.store != nil {
			current = theme.Load(e.store).Name
		}
		for _, name := range theme.Names() {
			marker := "  "
			if name == current {
				marker = "* "
			}
			fmt.Fprintln(w, marker+name)
		}
		return nil
	}

	if e.store == nil {
		return errors.New("scores database is not available, cannot store the theme")
	}
	if err := theme.Save(e.store, args[0]); err != nil {
		if errors.Is(err, theme.ErrUnknown) {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(theme.Names(), ", "))
		}
		return err
	}
	fmt.Fprintf(w, "Theme set to %s.\n", args[0])
	return nil
}
