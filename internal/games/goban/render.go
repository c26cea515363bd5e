package goban

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// columnLetters are the Go board column names; 'I' is skipped.
const columnLetters = "ABCDEFGHJKLMNOPQRST"

// ColumnLetter returns the column name for col.
func ColumnLetter(col int) byte {
	if col < 0 || col >= len(columnLetters) {
		return '?'
	}
	return columnLetters[col]
}

// ColumnIndex is the inverse of ColumnLetter. It accepts either case.
func ColumnIndex(letter byte) (int, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	for i := 0; i < len(columnLetters); i++ {
		if columnLetters[i] == letter {
			return i, true
		}
	}
	return 0, false
}

// PointName returns the coordinate name of a point, e.g. "D4".
// Row 0 is the top line, numbered size.
func PointName(c topology.Cell, size int) string {
	return string(ColumnLetter(c.Col)) + strconv.Itoa(size-c.Row)
}

// Render draws the board with column letters above and below and line
// numbers on both sides. The last placement is highlighted.
func (g *Game) Render(dst *core.Screen) {
	size := g.board.size
	dst.Resize(2*size+6, size+3)
	dst.Clear()

	for col := 0; col < size; col++ {
		letter := rune(ColumnLetter(col))
		dst.SetGlyph(3+2*col, 0, letter, core.TintLabel)
		dst.SetGlyph(3+2*col, size+1, letter, core.TintLabel)
	}

	for row := 0; row < size; row++ {
		line := fmt.Sprintf("%2d", size-row)
		dst.DrawText(0, row+1, line, core.TintLabel)
		dst.DrawText(2*size+3, row+1, line, core.TintLabel)

		for col := 0; col < size; col++ {
			c := topology.C(row, col)
			r, tint := '·', core.TintDarkSquare
			switch g.board.At(c) {
			case Black:
				r, tint = '●', core.TintBlackPiece
			case White:
				r, tint = '○', core.TintWhitePiece
			}
			if g.hasLast && c == g.last {
				tint = core.TintHighlight
			}
			dst.SetGlyph(3+2*col, row+1, r, tint)
		}
	}

	dst.DrawText(0, size+2, g.State().Status, core.TintDefault)
}
