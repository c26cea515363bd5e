package chess

import (
	"strconv"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// Render draws the board with file letters along the top and bottom and
// rank numbers on both sides. The last move's squares are highlighted.
func (g *Game) Render(dst *core.Screen) {
	size := g.board.size
	dst.Resize(2*size+4, size+3)
	dst.Clear()

	files := make([]byte, 0, size)
	for col := 0; col < size; col++ {
		files = append(files, FileLetter(col))
	}
	for col, f := range files {
		dst.SetGlyph(2+2*col, 0, rune(f), core.TintLabel)
		dst.SetGlyph(2+2*col, size+1, rune(f), core.TintLabel)
	}

	last, hasLast := g.LastMove()
	for row := 0; row < size; row++ {
		rank := strconv.Itoa(size - row)
		dst.DrawText(0, row+1, rank, core.TintLabel)
		dst.DrawText(2*size+2, row+1, rank, core.TintLabel)

		for col := 0; col < size; col++ {
			c := topology.C(row, col)
			p := g.board.At(c)

			tint := core.TintDarkSquare
			if (row+col)%2 == 0 {
				tint = core.TintLightSquare
			}
			switch {
			case hasLast && (c == last.From || c == last.To):
				tint = core.TintHighlight
			case p.Color == White:
				tint = core.TintWhitePiece
			case p.Color == Black:
				tint = core.TintBlackPiece
			}
			dst.SetGlyph(2+2*col, row+1, p.Symbol(), tint)
		}
	}

	dst.DrawText(0, size+2, g.State().Status, core.TintDefault)
}

// FileLetter returns the algebraic file name for a column.
func FileLetter(col int) byte {
	return byte('a' + col)
}

// SquareName returns the algebraic name of a cell on an 8x8 board
// (row 0 is rank 8).
func SquareName(c topology.Cell) string {
	return string(FileLetter(c.Col)) + strconv.Itoa(BoardSize-c.Row)
}
