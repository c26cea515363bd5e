package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/torus-boards/internal/config"
	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/games/goban"
	"github.com/vovakirdan/torus-boards/internal/platform/cli"
	"github.com/vovakirdan/torus-boards/internal/registry"
	"github.com/vovakirdan/torus-boards/internal/storage"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

var (
	flagSize    int
	flagKomi    float64
	flagKo      string
	flagNoColor bool
	flagNoSave  bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start a game that reads one command per line from standard input.

Chess commands:
  e2 e4 | e2e4 | 6,4 4,4   - Move a piece (row,col may wrap off the board)
  moves e2                 - List legal destinations

Go commands:
  d4 | 3,3                 - Place a stone
  pass                     - Pass; two passes in a row end the game

Common commands:
  show, reset, help, quit

Finished games are recorded in the results database.

Examples:
  boards play chess
  boards play chess --mode mirror
  boards play go --size 9 --mode rollover --komi 6.5
  boards play go --ko superko
  boards play go --config ./my-go.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Go board size: 9, 13, 19 (default from config)")
	playCmd.Flags().Float64Var(&flagKomi, "komi", 0, "Points added to White's Go score (default from config)")
	playCmd.Flags().StringVar(&flagKo, "ko", "", "Go ko rule: simple, superko (default from config)")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the result")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	logger := newLogger()

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'boards list' to see available games.")
		os.Exit(1)
	}

	cfg, err := runtimeConfig(cmd, gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if lg, ok := game.(interface{ SetLogger(*log.Logger) }); ok {
		lg.SetLogger(logger)
	}
	logger.Debug("session started", "game", gameID, "mode", cfg.Mode, "size", game.State().Size)

	opts := cli.Options{
		Logger: logger,
		Color:  !flagNoColor && term.IsTerminal(int(os.Stdout.Fd())),
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			// Continue without storage - game still works
			store = nil
		} else {
			opts.Store = store
		}
	}

	runErr := cli.NewDriver(game, os.Stdout, opts).Run(os.Stdin)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig loads the game config and applies command line overrides.
func runtimeConfig(cmd *cobra.Command, gameID string) (core.RuntimeConfig, error) {
	cfg, err := config.LoadRuntime(gameID, flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagMode != "" {
		mode, err := topology.ParseMode(flagMode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}

	flags := cmd.Flags()
	if flags.Lookup("size") == nil {
		return cfg, nil
	}
	if flags.Changed("size") {
		if !goban.ValidSize(flagSize) {
			return cfg, fmt.Errorf("unsupported board size %d (want one of %v)", flagSize, goban.Sizes)
		}
		cfg.BoardSize = flagSize
	}
	if flags.Changed("komi") {
		if flagKomi < 0 {
			return cfg, fmt.Errorf("komi must not be negative")
		}
		cfg.Komi = flagKomi
	}
	if flags.Changed("ko") {
		if _, err := goban.ParseKoRule(flagKo); err != nil {
			return cfg, err
		}
		cfg.KoRule = flagKo
	}
	return cfg, nil
}
