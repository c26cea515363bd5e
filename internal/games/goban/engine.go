package goban

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// Placement rejection reasons. A rejected placement never modifies the board.
var (
	ErrOutOfBounds = errors.New("point is off the board")
	ErrOccupied    = errors.New("point is occupied")
	ErrSuicide     = errors.New("placement would be suicide")
	ErrKo          = errors.New("placement repeats an earlier position")
)

// Placement is the outcome of an applied placement.
type Placement struct {
	At          topology.Cell
	Captured    int
	Fingerprint Fingerprint
}

// walker holds the scratch state for group traversal. The visited and
// liberty marks are arenas indexed like the board, and the stack and
// neighbor buffer are reused across walks.
type walker struct {
	board     *Board
	mode      topology.Mode
	visited   []bool
	liberty   []bool
	stack     []topology.Cell
	neighbors []topology.Cell
	stones    []topology.Cell
}

func newWalker(b *Board, mode topology.Mode) *walker {
	n := b.size * b.size
	return &walker{
		board:     b,
		mode:      mode,
		visited:   make([]bool, n),
		liberty:   make([]bool, n),
		neighbors: make([]topology.Cell, 0, 4),
	}
}

// walk collects the group containing start into w.stones and returns its
// liberty count. start must hold a stone.
func (w *walker) walk(start topology.Cell) int {
	clear(w.visited)
	clear(w.liberty)
	w.stones = w.stones[:0]

	size := w.board.size
	color := w.board.At(start)
	libs := 0

	w.stack = append(w.stack[:0], start)
	w.visited[start.Index(size)] = true

	for len(w.stack) > 0 {
		c := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.stones = append(w.stones, c)

		w.neighbors = topology.AppendNeighbors(w.neighbors[:0], c, size, w.mode)
		for _, n := range w.neighbors {
			i := n.Index(size)
			switch w.board.points[i] {
			case color:
				if !w.visited[i] {
					w.visited[i] = true
					w.stack = append(w.stack, n)
				}
			case Empty:
				if !w.liberty[i] {
					w.liberty[i] = true
					libs++
				}
			}
		}
	}
	return libs
}

// remove empties every stone of the last walked group.
func (w *walker) remove() int {
	for _, c := range w.stones {
		w.board.Set(c, Empty)
	}
	return len(w.stones)
}

// Group returns the stones connected to c, or nil if c is empty or off the
// board. The order is traversal order.
func Group(b *Board, c topology.Cell, mode topology.Mode) []topology.Cell {
	if b.At(c) == Empty {
		return nil
	}
	w := newWalker(b, mode)
	w.walk(c)
	return append([]topology.Cell(nil), w.stones...)
}

// Liberties returns the number of distinct empty points adjacent to the
// group containing c. An empty or off-board point has none.
func Liberties(b *Board, c topology.Cell, mode topology.Mode) int {
	if b.At(c) == Empty {
		return 0
	}
	return newWalker(b, mode).walk(c)
}

// place puts a stone on b, removes opponent groups left without liberties,
// and rejects suicide. On error b is unchanged.
func place(b *Board, raw topology.Cell, color core.Color, mode topology.Mode) (Placement, error) {
	at, _, ok := topology.Resolve(raw, b.size, mode)
	if !ok {
		return Placement{}, fmt.Errorf("%w: %v", ErrOutOfBounds, raw)
	}
	if b.At(at) != Empty {
		return Placement{}, fmt.Errorf("%w: %v", ErrOccupied, at)
	}

	b.Set(at, color)

	w := newWalker(b, mode)
	opponent := color.Opponent()
	captured := 0
	for _, n := range topology.Neighbors(at, b.size, mode) {
		if b.At(n) != opponent {
			continue
		}
		if w.walk(n) == 0 {
			captured += w.remove()
		}
	}

	if captured == 0 && w.walk(at) == 0 {
		b.Set(at, Empty)
		return Placement{}, fmt.Errorf("%w: %v", ErrSuicide, at)
	}

	return Placement{At: at, Captured: captured, Fingerprint: b.Fingerprint()}, nil
}

// simulate plays a placement on a copy of b and returns the result.
func simulate(b *Board, raw topology.Cell, color core.Color, mode topology.Mode) (Placement, error) {
	return place(b.Clone(), raw, color, mode)
}

// IsLegalPlacement reports whether color may play on c. The checks run in
// order: occupancy, suicide after captures, then simple ko against previous
// (the position before the opponent's last placement). An empty previous
// disables the ko check. The board is not modified.
func IsLegalPlacement(b *Board, c topology.Cell, color core.Color, mode topology.Mode, previous Fingerprint) error {
	p, err := simulate(b, c, color, mode)
	if err != nil {
		return err
	}
	if previous != "" && p.Fingerprint == previous {
		return fmt.Errorf("%w: %v recreates the previous position", ErrKo, p.At)
	}
	return nil
}

// ApplyPlacement places a stone on b in place and removes captured groups.
// It does not check ko; callers validate with IsLegalPlacement first.
func ApplyPlacement(b *Board, c topology.Cell, color core.Color, mode topology.Mode) (Placement, error) {
	return place(b, c, color, mode)
}
