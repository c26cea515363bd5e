package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/registry"
	"github.com/vovakirdan/torus-boards/internal/storage"
)

var flagLimit int

var resultsCmd = &cobra.Command{
	Use:   "results [game]",
	Short: "Show recorded results",
	Long: `Display the most recent finished games, and win statistics when a game
is given.

Examples:
  boards results
  boards results go --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runResults(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'boards list' to see available games.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.RecentResults(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-8s  %-6s  %5s  %9s\n", "Date", "Game", "Mode", "Winner", "Moves", "Captures")
	fmt.Printf("  %-16s  %-6s  %-8s  %-6s  %5s  %9s\n", "----", "----", "----", "------", "-----", "--------")
	for _, r := range results {
		winner := r.Winner.String()
		if r.Winner == core.NoColor {
			winner = "tie"
		}
		fmt.Printf("  %-16s  %-6s  %-8s  %-6s  %5d  %4d/%-4d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.Mode, winner,
			r.Moves, r.BlackCaptures, r.WhiteCaptures)
	}

	if gameID == "" {
		return
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("%d games: black %d, white %d, ties %d, %.1f moves on average\n",
		stats.GamesCount, stats.BlackWins, stats.WhiteWins, stats.Draws, stats.AvgMoves)
}
