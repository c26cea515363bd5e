package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-boards/internal/registry"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games and the board topologies they can be played on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Print("Topologies:")
	for _, m := range topology.Modes {
		fmt.Printf(" %s", m)
	}
	fmt.Println()
	fmt.Println()
	fmt.Println("Run 'boards play <id> --mode <topology>' to play a game.")
}
