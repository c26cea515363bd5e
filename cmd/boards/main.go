// boards plays chess and Go on flat, toroidal and mirrored boards from the
// terminal.
//
// Usage:
//
//	boards list                    - List available games and topologies
//	boards play <game>             - Play a game from standard input
//	boards moves <game> <square>   - Show legal moves from a square
//	boards results [game]          - Show recorded results
//
// Global flags:
//
//	--db <path>         - Set database path (default: $XDG_DATA_HOME/boards/results.db)
//	--config <path>     - Use a custom game config YAML
//	--mode <topology>   - Override the topology: classic, rollover, mirror
//	--log-level <level> - Set log level (default: warn)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/torus-boards/internal/games/chess"
	_ "github.com/vovakirdan/torus-boards/internal/games/goban"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagMode     string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boards",
	Short: "Chess and Go on wrapping boards",
	Long: `boards is a terminal front end for a topology-aware rules engine.
Chess and Go can be played on a flat board, on a torus (rollover) where
every edge wraps, or on a mirrored torus where crossing the top or bottom
edge reflects the board.

Available commands:
  list     - Show all available games
  play     - Play a game from standard input
  moves    - Show legal moves from a square
  results  - View recorded results

Examples:
  boards list
  boards play chess --mode rollover
  boards play go --size 9 --komi 6.5
  boards moves chess g1 --mode mirror
  boards results go`,
	SilenceUsage: true,
}

func init() {
	defaultDB := filepath.Join(xdg.DataHome, "boards", "results.db")

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDB, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Board topology: classic, rollover, mirror (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(resultsCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "boards",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}
