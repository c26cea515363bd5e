package config

import (
	_ "embed"

	"github.com/vovakirdan/torus-boards/internal/games/goban"
)

//go:embed defaults/chess.yaml
var defaultChessYAML []byte

//go:embed defaults/go.yaml
var defaultGoYAML []byte

// DefaultChessConfig returns the default chess configuration.
func DefaultChessConfig() ChessConfig {
	return ChessConfig{
		Mode: "classic",
	}
}

// DefaultGoConfig returns the default Go configuration.
func DefaultGoConfig() GoConfig {
	return GoConfig{
		Size:   goban.DefaultSize,
		Mode:   "classic",
		Komi:   0,
		KoRule: "simple",
	}
}
