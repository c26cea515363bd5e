// Package goban implements Go stone placement with capture, suicide and ko
// detection on flat, toroidal and mirrored boards.
package goban

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// Stone colors. Empty points hold core.NoColor.
const (
	Black = core.Black
	White = core.White
	Empty = core.NoColor
)

// DefaultSize is the board dimension used when none is configured.
const DefaultSize = 19

// Sizes lists the supported session board sizes.
var Sizes = []int{9, 13, 19}

// ValidSize reports whether n is a supported session board size.
func ValidSize(n int) bool {
	return slices.Contains(Sizes, n)
}

// Fingerprint is the canonical encoding of a whole board.
// Equal boards always produce equal fingerprints.
type Fingerprint string

// Board is a square grid of points stored row-major.
type Board struct {
	size   int
	points []core.Color
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("goban: invalid board size %d", size))
	}
	return &Board{
		size:   size,
		points: make([]core.Color, size*size),
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// At returns the stone on a point. Off-board points read as empty.
func (b *Board) At(c topology.Cell) core.Color {
	if !c.In(b.size) {
		return Empty
	}
	return b.points[c.Index(b.size)]
}

// Set puts a stone (or Empty) on a canonical point.
func (b *Board) Set(c topology.Cell, color core.Color) {
	b.points[c.Index(b.size)] = color
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{size: b.size, points: slices.Clone(b.points)}
}

// Count returns the number of stones of a color on the board.
func (b *Board) Count(color core.Color) int {
	n := 0
	for _, p := range b.points {
		if p == color {
			n++
		}
	}
	return n
}

// Fingerprint encodes the board as 'b', 'w' or '.' per point with rows
// separated by '|'.
func (b *Board) Fingerprint() Fingerprint {
	buf := make([]byte, 0, len(b.points)+b.size)
	for i, p := range b.points {
		if i > 0 && i%b.size == 0 {
			buf = append(buf, '|')
		}
		switch p {
		case Black:
			buf = append(buf, 'b')
		case White:
			buf = append(buf, 'w')
		default:
			buf = append(buf, '.')
		}
	}
	return Fingerprint(buf)
}
