// Package topology maps raw board coordinates onto canonical cells.
// A raw coordinate is whatever a move delta produces and may lie outside the
// board; the active Mode decides whether it wraps, reflects or falls off.
//
// The package has no dependencies so every rules engine can share it.
package topology

import (
	"fmt"
	"strings"
)

// Mode selects how the board edges are glued together.
type Mode int

const (
	// Classic is a flat board: off-board coordinates are invalid.
	Classic Mode = iota
	// Rollover wraps both axes, making the board a torus.
	Rollover
	// Mirror wraps columns like Rollover and wraps rows with a reflection,
	// so crossing the top or bottom seam flips the board orientation.
	Mirror
)

// Modes lists every supported mode in declaration order.
var Modes = []Mode{Classic, Rollover, Mirror}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case Classic:
		return "classic"
	case Rollover:
		return "rollover"
	case Mirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// ParseMode converts a configuration name into a Mode.
// "torus" is accepted as an alias for rollover.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic", "flat":
		return Classic, nil
	case "rollover", "torus":
		return Rollover, nil
	case "mirror":
		return Mirror, nil
	default:
		return Classic, fmt.Errorf("topology: unknown mode %q", s)
	}
}

// Cell is a (row, col) board coordinate. Row 0 is the top edge.
type Cell struct {
	Row int
	Col int
}

// C is a convenience constructor for Cell.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Cell offset by (dr, dc). The result is raw.
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// In reports whether the cell lies on a size x size board.
func (c Cell) In(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Index returns the row-major arena index of a canonical cell.
func (c Cell) Index(size int) int {
	return c.Row*size + c.Col
}

// CellAt is the inverse of Cell.Index.
func CellAt(index, size int) Cell {
	return Cell{Row: index / size, Col: index % size}
}

// wrap folds n into [0, size).
func wrap(n, size int) int {
	return ((n % size) + size) % size
}

// Canonicalize resolves a raw coordinate on a size x size board.
//
// ok is false only in Classic mode when the coordinate is off the board.
// reflected is true only in Mirror mode when the row was folded through a
// seam an odd number of times.
func Canonicalize(row, col, size int, mode Mode) (cell Cell, reflected bool, ok bool) {
	if size <= 0 {
		panic(fmt.Sprintf("topology: invalid board size %d", size))
	}

	switch mode {
	case Rollover:
		return Cell{Row: wrap(row, size), Col: wrap(col, size)}, false, true

	case Mirror:
		folded := wrap(row, 2*size)
		if folded >= size {
			return Cell{Row: 2*size - 1 - folded, Col: wrap(col, size)}, true, true
		}
		return Cell{Row: folded, Col: wrap(col, size)}, false, true

	default:
		if row < 0 || row >= size || col < 0 || col >= size {
			return Cell{}, false, false
		}
		return Cell{Row: row, Col: col}, false, true
	}
}

// Resolve is Canonicalize for a Cell value.
func Resolve(raw Cell, size int, mode Mode) (Cell, bool, bool) {
	return Canonicalize(raw.Row, raw.Col, size, mode)
}

// Orthogonal deltas in up, down, left, right order.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the orthogonal neighbors of a canonical cell.
// Classic edge cells have fewer than four; the wrapping modes always
// return four, and under Mirror a top or bottom row cell lists itself
// because its vertical seam folds back onto the same square.
func Neighbors(c Cell, size int, mode Mode) []Cell {
	return AppendNeighbors(make([]Cell, 0, 4), c, size, mode)
}

// AppendNeighbors appends the neighbors of c to dst and returns the
// extended slice. Flood fills use it with a reused buffer.
func AppendNeighbors(dst []Cell, c Cell, size int, mode Mode) []Cell {
	for _, d := range orthogonal {
		n, _, ok := Canonicalize(c.Row+d[0], c.Col+d[1], size, mode)
		if !ok {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}
