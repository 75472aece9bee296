package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List all available skins",
	Long:  `Shows a list of all skins registered in the game.`,
	Args:  cobra.NoArgs,
	Run:   runSkins,
}

func runSkins(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	list := registry.List()

	if len(list) == 0 {
		fmt.Fprintln(out, "No skins available.")
		return
	}

	fmt.Fprintln(out, "Available skins:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range list {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range list {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play --skin <id>' to play with a skin.")
}
