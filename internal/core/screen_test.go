package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 10)

	if s.Width() != 20 {
		t.Errorf("Width() = %d, expected 20", s.Width())
	}
	if s.Height() != 10 {
		t.Errorf("Height() = %d, expected 10", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetGlyph(5, 5, 'X', TintHighlight)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Tint != TintHighlight {
		t.Errorf("GetCell(5, 5).Tint = %v, expected TintHighlight", s.GetCell(5, 5).Tint)
	}

	s.Set(5, 5, 'Y')
	if g := s.GetCell(5, 5); g.Rune != 'Y' || g.Tint != TintHighlight {
		t.Errorf("Set should keep the tint, got %+v", g)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetGlyph(0, -1, 'A', TintLabel)
	s.SetGlyph(0, 100, 'A', TintLabel)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextAndString(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(1, 0, "ab♔", TintLabel)
	s.DrawText(6, 1, "xyz", TintDefault) // clipped

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, expected 2", len(lines))
	}
	if lines[0] != " ab♔" {
		t.Errorf("line 0 = %q, expected %q", lines[0], " ab♔")
	}
	if lines[1] != "      xy" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "      xy")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'Q')
	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear content")
	}
}

func TestColorOpponent(t *testing.T) {
	if Black.Opponent() != White || White.Opponent() != Black {
		t.Error("Black and White should be opponents")
	}
	if NoColor.Opponent() != NoColor {
		t.Error("NoColor has no opponent")
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]Color{"black": Black, "W": White, " white ": White, "b": Black} {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Errorf("ParseColor(%q) = %v, %v; expected %v", in, got, err, want)
		}
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("ParseColor(red) should fail")
	}
}
