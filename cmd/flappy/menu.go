package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a skin, then play",
	Long: `Start with an interactive skin picker.

Use arrow keys or j/k to navigate, Enter to play.
After a game ends you return to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play with the selected skin
  Q/Esc        - Quit

Examples:
  flappy menu
  flappy menu --fps 60`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	for {
		rt := runtimeConfig()

		res, err := tui.RunMenu(rt.ScreenW, rt.ScreenH)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}

		if err := playSkin(res.Skin); err != nil {
			return err
		}
	}
}
