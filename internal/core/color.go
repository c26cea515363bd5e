package core

import (
	"fmt"
	"strings"
)

// Color identifies a side. NoColor doubles as "empty" on a Go board.
type Color uint8

const (
	NoColor Color = iota
	Black
	White
)

// Opponent returns the other side. NoColor has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoColor
	}
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Title returns the capitalized color name for status lines.
func (c Color) Title() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Nobody"
	}
}

// ParseColor converts "black" or "white" (or their first letter) to a Color.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return NoColor, fmt.Errorf("core: unknown color %q", s)
	}
}

// Tint is the display hint attached to a screen cell.
// The platform layer maps tints to terminal styles.
type Tint uint8

const (
	TintDefault Tint = iota
	TintLabel
	TintLightSquare
	TintDarkSquare
	TintWhitePiece
	TintBlackPiece
	TintHighlight
)
