package goban

import (
	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// Snapshot captures the complete session state for renderers and tests.
type Snapshot struct {
	Size     int
	Mode     topology.Mode
	KoRule   KoRule
	Komi     float64
	Turn     core.Color
	Passes   int
	Moves    int
	GameOver bool
	Winner   core.Color
	Board    *Board // Independent copy
	LastMove *topology.Cell
	Captures map[core.Color]int
	Stones   map[core.Color]int
}

// Snapshot returns a copy of the session state. Mutating it does not
// affect the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Size:     g.board.size,
		Mode:     g.mode,
		KoRule:   g.ko,
		Komi:     g.komi,
		Turn:     g.turn,
		Passes:   g.passes,
		Moves:    g.moves,
		GameOver: g.gameOver,
		Winner:   g.winner,
		Board:    g.board.Clone(),
		Captures: map[core.Color]int{
			Black: g.captures[Black],
			White: g.captures[White],
		},
		Stones: map[core.Color]int{
			Black: g.board.Count(Black),
			White: g.board.Count(White),
		},
	}
	if g.hasLast {
		last := g.last
		s.LastMove = &last
	}
	return s
}
