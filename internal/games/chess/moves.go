package chess

import (
	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

var (
	orthogonalDirs = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalDirs   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royalDirs      = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps    = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// target is a generated destination together with how it was reached.
type target struct {
	cell      topology.Cell
	reflected bool
}

// moveGen accumulates destinations for a single source square.
type moveGen struct {
	board *Board
	from  topology.Cell
	piece Piece
	mode  topology.Mode
	seen  []bool
	out   []target
}

// resolve canonicalizes a delta from the source square.
func (g *moveGen) resolve(dr, dc int) (topology.Cell, bool, bool) {
	return topology.Canonicalize(g.from.Row+dr, g.from.Col+dc, g.board.size, g.mode)
}

// add records a destination once. The source square is never a destination.
func (g *moveGen) add(c topology.Cell, reflected bool) {
	if c == g.from {
		return
	}
	i := c.Index(g.board.size)
	if g.seen[i] {
		return
	}
	g.seen[i] = true
	g.out = append(g.out, target{cell: c, reflected: reflected})
}

// enemy reports whether p belongs to the other side.
func (g *moveGen) enemy(p Piece) bool {
	return !p.Empty() && p.Color != g.piece.Color
}

// steps handles kings and knights: each delta is one jump.
func (g *moveGen) steps(deltas [][2]int) {
	for _, d := range deltas {
		c, reflected, ok := g.resolve(d[0], d[1])
		if !ok {
			continue
		}
		if occ := g.board.At(c); occ.Empty() || g.enemy(occ) {
			g.add(c, reflected)
		}
	}
}

// rays handles sliders. Each ray is capped at the board size so wrapping
// topologies terminate.
func (g *moveGen) rays(dirs [][2]int) {
	for _, d := range dirs {
		for n := 1; n <= g.board.size; n++ {
			c, reflected, ok := g.resolve(d[0]*n, d[1]*n)
			if !ok {
				break
			}
			occ := g.board.At(c)
			if occ.Empty() {
				g.add(c, reflected)
				continue
			}
			if g.enemy(occ) {
				g.add(c, reflected)
			}
			break
		}
	}
}

// pawn generates pushes and diagonal captures along the pawn's direction.
func (g *moveGen) pawn() {
	dir := g.piece.Direction
	if dir == 0 {
		dir = forward(g.piece.Color)
	}

	if one, reflected, ok := g.resolve(dir, 0); ok && g.board.At(one).Empty() && one != g.from {
		g.add(one, reflected)

		if g.from.Row == startRank(g.piece.Color, g.board.size) {
			two, reflected2, ok2 := g.resolve(2*dir, 0)
			if ok2 && two != g.from && g.board.At(two).Empty() {
				g.add(two, reflected2)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		c, reflected, ok := g.resolve(dir, dc)
		if ok && g.enemy(g.board.At(c)) {
			g.add(c, reflected)
		}
	}
}

// generate returns every legal destination for the piece on from.
func generate(b *Board, from topology.Cell, mode topology.Mode) []target {
	if !from.In(b.size) {
		return nil
	}
	piece := b.At(from)
	if piece.Empty() {
		return nil
	}

	g := &moveGen{
		board: b,
		from:  from,
		piece: piece,
		mode:  mode,
		seen:  make([]bool, b.size*b.size),
	}

	switch piece.Kind {
	case Pawn:
		g.pawn()
	case Knight:
		g.steps(knightJumps)
	case King:
		g.steps(royalDirs)
	case Bishop:
		g.rays(diagonalDirs)
	case Rook:
		g.rays(orthogonalDirs)
	case Queen:
		g.rays(royalDirs)
	}

	return g.out
}

// LegalMoves returns the canonical destinations available to the piece on
// from under the given topology. The board is not modified. An empty
// source yields no moves.
func LegalMoves(b *Board, from topology.Cell, mode topology.Mode) []topology.Cell {
	targets := generate(b, from, mode)
	if len(targets) == 0 {
		return nil
	}
	cells := make([]topology.Cell, len(targets))
	for i, t := range targets {
		cells[i] = t.cell
	}
	return cells
}

// Move is a (from, to) pair.
type Move struct {
	From topology.Cell
	To   topology.Cell
}

// AllLegalMoves lists every move available to a side, in row-major order
// of the source square.
func AllLegalMoves(b *Board, side core.Color, mode topology.Mode) []Move {
	var moves []Move
	for i, p := range b.squares {
		if p.Empty() || p.Color != side {
			continue
		}
		from := topology.CellAt(i, b.size)
		for _, t := range generate(b, from, mode) {
			moves = append(moves, Move{From: from, To: t.cell})
		}
	}
	return moves
}

// startRank is the row a color's pawns start on.
func startRank(c core.Color, size int) int {
	if c == White {
		return size - 2
	}
	return 1
}

// promotionRank is the far row for a color.
func promotionRank(c core.Color, size int) int {
	if c == White {
		return 0
	}
	return size - 1
}

// nextDirection is the only place a pawn's direction changes: a pawn that
// reaches its destination through a mirror seam turns around.
func nextDirection(p Piece, reflected bool) int {
	if p.Kind != Pawn || !reflected {
		return p.Direction
	}
	return -p.Direction
}
