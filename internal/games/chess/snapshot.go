package chess

import (
	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// Snapshot captures the complete session state for renderers and tests.
type Snapshot struct {
	Mode     topology.Mode
	Turn     core.Color
	GameOver bool
	Winner   core.Color
	Moves    int
	Board    *Board // Independent copy
	LastMove *Record
	Lost     map[core.Color]int
}

// Snapshot returns a copy of the session state. Mutating it does not
// affect the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:     g.mode,
		Turn:     g.turn,
		GameOver: g.gameOver,
		Winner:   g.winner,
		Moves:    len(g.history),
		Board:    g.board.Clone(),
		Lost: map[core.Color]int{
			White: g.lost[White],
			Black: g.lost[Black],
		},
	}
	if last, ok := g.LastMove(); ok {
		s.LastMove = &last
	}
	return s
}
