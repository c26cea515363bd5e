package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/games/chess"
	"github.com/vovakirdan/torus-boards/internal/platform/cli"
	"github.com/vovakirdan/torus-boards/internal/registry"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

var movesCmd = &cobra.Command{
	Use:   "moves <game> <square|all>",
	Short: "Show legal moves from a square in the starting position",
	Long: `Lists the legal destinations of the piece on a square in the starting
position under the chosen topology. The square may be algebraic (g1) or
numeric row,col; "all" lists every move for the side to move.

Examples:
  boards moves chess g1 --mode rollover
  boards moves chess 7,1 --mode mirror
  boards moves chess all --mode rollover`,
	Args: cobra.ExactArgs(2),
	Run:  runMoves,
}

func runMoves(cmd *cobra.Command, args []string) {
	gameID, square := args[0], args[1]

	if gameID != "chess" {
		fmt.Fprintf(os.Stderr, "Error: moves is only available for chess, not %q\n", gameID)
		os.Exit(1)
	}

	cfg, err := runtimeConfig(cmd, gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if strings.EqualFold(square, "all") {
		listAllMoves(gameID, cfg)
		return
	}

	from, err := cli.ParseSquare(strings.ToLower(square), chess.BoardSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	from, _, ok := topology.Resolve(from, chess.BoardSize, cfg.Mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v is off the board\n", args[1])
		os.Exit(1)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	board := game.(*chess.Game).Board()

	piece := board.At(from)
	if piece.Empty() {
		fmt.Printf("%s is empty.\n", chess.SquareName(from))
		return
	}

	moves := chess.LegalMoves(board, from, cfg.Mode)
	fmt.Printf("%s %s on %s (%s): %d moves\n", piece.Color, piece.Kind, chess.SquareName(from), cfg.Mode, len(moves))
	for _, m := range moves {
		marker := ""
		if target := board.At(m); !target.Empty() {
			marker = " x" + target.Kind.String()
		}
		fmt.Printf("  %s %v%s\n", chess.SquareName(m), m, marker)
	}
}

// listAllMoves prints every move available to the side to move in the
// starting position.
func listAllMoves(gameID string, cfg core.RuntimeConfig) {
	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	g := game.(*chess.Game)

	moves := chess.AllLegalMoves(g.Board(), g.Turn(), cfg.Mode)
	fmt.Printf("%s to move (%s): %d moves\n", g.Turn().Title(), cfg.Mode, len(moves))
	for _, m := range moves {
		fmt.Printf("  %s-%s\n", chess.SquareName(m.From), chess.SquareName(m.To))
	}
}
