// Package chess implements chess move generation and a game session on
// flat, toroidal and mirrored boards.
//
// Check and checkmate are not part of the rules: the game ends the moment a
// king is captured.
package chess

import (
	"strings"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// BoardSize is the dimension of a standard chess board.
const BoardSize = 8

// Kind is a chess piece type.
type Kind uint8

const (
	NoKind Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the lowercase piece name.
func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// Piece is a chess piece. The zero value is an empty square.
//
// Direction is the row delta of a pawn's forward step: -1 moves toward
// row 0, +1 toward the last row. It only changes under the mirror topology.
type Piece struct {
	Kind      Kind
	Color     core.Color
	Direction int
}

// Empty reports whether the piece value represents an empty square.
func (p Piece) Empty() bool {
	return p.Kind == NoKind
}

var whiteSymbols = map[Kind]rune{King: '♔', Queen: '♕', Rook: '♖', Bishop: '♗', Knight: '♘', Pawn: '♙'}
var blackSymbols = map[Kind]rune{King: '♚', Queen: '♛', Rook: '♜', Bishop: '♝', Knight: '♞', Pawn: '♟'}

// Symbol returns the Unicode chess glyph for the piece, or '·' if empty.
func (p Piece) Symbol() rune {
	if p.Empty() {
		return '·'
	}
	if p.Color == White {
		return whiteSymbols[p.Kind]
	}
	return blackSymbols[p.Kind]
}

// Letter returns the FEN-style letter: uppercase for white.
func (p Piece) Letter() byte {
	var b byte
	switch p.Kind {
	case King:
		b = 'k'
	case Queen:
		b = 'q'
	case Rook:
		b = 'r'
	case Bishop:
		b = 'b'
	case Knight:
		b = 'n'
	case Pawn:
		b = 'p'
	default:
		return '.'
	}
	if p.Color == White {
		b -= 'a' - 'A'
	}
	return b
}

// Aliases so callers in this package read naturally.
const (
	White = core.White
	Black = core.Black
)

// forward returns the initial pawn direction for a color.
// White starts at the bottom and moves toward row 0.
func forward(c core.Color) int {
	if c == White {
		return -1
	}
	return 1
}

// NewPiece returns a piece with its color's initial direction.
func NewPiece(kind Kind, color core.Color) Piece {
	return Piece{Kind: kind, Color: color, Direction: forward(color)}
}

// Board is a square grid of pieces stored row-major.
type Board struct {
	size    int
	squares []Piece
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	return &Board{
		size:    size,
		squares: make([]Piece, size*size),
	}
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardBoard returns the orthodox starting position.
// Black occupies rows 0-1, white rows 6-7.
func StandardBoard() *Board {
	b := NewBoard(BoardSize)
	for col, kind := range backRank {
		b.Set(topology.C(0, col), NewPiece(kind, Black))
		b.Set(topology.C(1, col), NewPiece(Pawn, Black))
		b.Set(topology.C(BoardSize-2, col), NewPiece(Pawn, White))
		b.Set(topology.C(BoardSize-1, col), NewPiece(kind, White))
	}
	return b
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// At returns the piece on a cell. Off-board cells read as empty.
func (b *Board) At(c topology.Cell) Piece {
	if !c.In(b.size) {
		return Piece{}
	}
	return b.squares[c.Index(b.size)]
}

// Set places a piece on a canonical cell.
func (b *Board) Set(c topology.Cell, p Piece) {
	b.squares[c.Index(b.size)] = p
}

// Remove empties a canonical cell and returns what was there.
func (b *Board) Remove(c topology.Cell) Piece {
	i := c.Index(b.size)
	p := b.squares[i]
	b.squares[i] = Piece{}
	return p
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	squares := make([]Piece, len(b.squares))
	copy(squares, b.squares)
	return &Board{size: b.size, squares: squares}
}

// HasKing reports whether a king of the given color is on the board.
func (b *Board) HasKing(c core.Color) bool {
	for _, p := range b.squares {
		if p.Kind == King && p.Color == c {
			return true
		}
	}
	return false
}

// Count returns the number of pieces of a color.
func (b *Board) Count(c core.Color) int {
	n := 0
	for _, p := range b.squares {
		if !p.Empty() && p.Color == c {
			n++
		}
	}
	return n
}

// Fingerprint encodes the full board, one letter per square and rows
// separated by '|'. Pawn direction is part of the state, so a pawn whose
// direction flipped is written with a trailing marker.
func (b *Board) Fingerprint() string {
	var sb strings.Builder
	sb.Grow(len(b.squares)*2 + b.size)
	for i, p := range b.squares {
		if i > 0 && i%b.size == 0 {
			sb.WriteByte('|')
		}
		sb.WriteByte(p.Letter())
		if p.Kind == Pawn && p.Direction != forward(p.Color) {
			sb.WriteByte('\'')
		}
	}
	return sb.String()
}
