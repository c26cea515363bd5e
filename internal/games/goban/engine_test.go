package goban

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vovakirdan/torus-boards/internal/topology"
)

// boardFrom builds a board from rows of 'b', 'w' and '.'.
func boardFrom(rows ...string) *Board {
	b := NewBoard(len(rows))
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case 'b':
				b.Set(topology.C(r, c), Black)
			case 'w':
				b.Set(topology.C(r, c), White)
			}
		}
	}
	return b
}

var sortCells = cmpopts.SortSlices(func(a, b topology.Cell) bool {
	return a.Index(32) < b.Index(32)
})

func TestFingerprint(t *testing.T) {
	b := boardFrom(
		"b..",
		".w.",
		"...",
	)
	if got, want := b.Fingerprint(), Fingerprint("b..|.w.|..."); got != want {
		t.Errorf("Fingerprint() = %q, expected %q", got, want)
	}

	c := b.Clone()
	if c.Fingerprint() != b.Fingerprint() {
		t.Error("clone fingerprint differs")
	}
	c.Set(topology.C(2, 2), White)
	if c.Fingerprint() == b.Fingerprint() {
		t.Error("clone shares storage with the original")
	}
}

func TestGroupAndLiberties(t *testing.T) {
	b := boardFrom(
		".....",
		".bb..",
		".bw..",
		".....",
		".....",
	)

	got := Group(b, topology.C(1, 1), topology.Classic)
	want := []topology.Cell{topology.C(1, 1), topology.C(1, 2), topology.C(2, 1)}
	if diff := cmp.Diff(want, got, sortCells); diff != "" {
		t.Errorf("Group() mismatch (-want +got):\n%s", diff)
	}

	if n := Liberties(b, topology.C(1, 1), topology.Classic); n != 6 {
		t.Errorf("black liberties = %d, expected 6", n)
	}
	if n := Liberties(b, topology.C(2, 2), topology.Classic); n != 2 {
		t.Errorf("white liberties = %d, expected 2", n)
	}
	if g := Group(b, topology.C(0, 0), topology.Classic); g != nil {
		t.Errorf("Group(empty) = %v, expected nil", g)
	}
	if n := Liberties(b, topology.C(0, 0), topology.Classic); n != 0 {
		t.Errorf("Liberties(empty) = %d, expected 0", n)
	}
}

func TestLibertiesWrap(t *testing.T) {
	b := boardFrom(
		"b...",
		"....",
		"....",
		"....",
	)
	tests := []struct {
		mode topology.Mode
		want int
	}{
		{topology.Classic, 2},
		{topology.Rollover, 4},
		// The top seam folds (0,0) onto itself, leaving three distinct points.
		{topology.Mirror, 3},
	}
	for _, tc := range tests {
		if n := Liberties(b, topology.C(0, 0), tc.mode); n != tc.want {
			t.Errorf("%v: liberties = %d, expected %d", tc.mode, n, tc.want)
		}
	}
}

func TestGroupAcrossSeam(t *testing.T) {
	b := boardFrom(
		"b...",
		"....",
		"....",
		"b..b",
	)

	if n := len(Group(b, topology.C(0, 0), topology.Classic)); n != 1 {
		t.Errorf("classic group size = %d, expected 1", n)
	}
	// (0,0)-(3,0) join vertically and (3,0)-(3,3) join horizontally.
	if n := len(Group(b, topology.C(0, 0), topology.Rollover)); n != 3 {
		t.Errorf("rollover group size = %d, expected 3", n)
	}
}

func TestFullBoardGroupTerminates(t *testing.T) {
	b := NewBoard(9)
	for i := 0; i < 81; i++ {
		b.Set(topology.CellAt(i, 9), Black)
	}
	for _, mode := range topology.Modes {
		if n := len(Group(b, topology.C(4, 4), mode)); n != 81 {
			t.Errorf("%v: group size = %d, expected 81", mode, n)
		}
		if n := Liberties(b, topology.C(4, 4), mode); n != 0 {
			t.Errorf("%v: liberties = %d, expected 0", mode, n)
		}
	}
}

func TestApplyPlacementCaptures(t *testing.T) {
	b := boardFrom(
		".....",
		"..b..",
		".bw..",
		"..b..",
		".....",
	)

	p, err := ApplyPlacement(b, topology.C(2, 3), Black, topology.Classic)
	if err != nil {
		t.Fatalf("ApplyPlacement() = %v", err)
	}
	if p.Captured != 1 {
		t.Errorf("Captured = %d, expected 1", p.Captured)
	}
	if b.At(topology.C(2, 2)) != Empty {
		t.Error("captured stone still on the board")
	}
	if p.Fingerprint != b.Fingerprint() {
		t.Error("placement fingerprint does not match the board")
	}
}

func TestIsLegalPlacement(t *testing.T) {
	suicide := boardFrom(
		".....",
		"..w..",
		".w.w.",
		"..w..",
		".....",
	)
	capture := boardFrom(
		"..b..",
		".bwb.",
		"bw.wb",
		".bwb.",
		"..b..",
	)

	tests := []struct {
		name    string
		board   *Board
		at      topology.Cell
		mode    topology.Mode
		wantErr error
	}{
		{"empty point", NewBoard(5), topology.C(2, 2), topology.Classic, nil},
		{"occupied", suicide, topology.C(1, 2), topology.Classic, ErrOccupied},
		{"off board", NewBoard(5), topology.C(5, 0), topology.Classic, ErrOutOfBounds},
		{"wrapped coordinate", NewBoard(5), topology.C(5, 0), topology.Rollover, nil},
		{"suicide", suicide, topology.C(2, 2), topology.Classic, ErrSuicide},
		{"capture is not suicide", capture, topology.C(2, 2), topology.Classic, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.board.Fingerprint()
			err := IsLegalPlacement(tc.board, tc.at, Black, tc.mode, "")
			if tc.wantErr == nil && err != nil {
				t.Fatalf("IsLegalPlacement() = %v, expected nil", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("IsLegalPlacement() = %v, expected %v", err, tc.wantErr)
			}
			if tc.board.Fingerprint() != before {
				t.Error("IsLegalPlacement modified the board")
			}
		})
	}
}

func TestApplyPlacementRejectsSuicide(t *testing.T) {
	b := boardFrom(
		".w...",
		"w....",
		".....",
		".....",
		".....",
	)
	before := b.Fingerprint()

	_, err := ApplyPlacement(b, topology.C(0, 0), Black, topology.Classic)
	if !errors.Is(err, ErrSuicide) {
		t.Fatalf("ApplyPlacement() = %v, expected ErrSuicide", err)
	}
	if b.Fingerprint() != before {
		t.Error("board changed after rejected placement")
	}

	// The same corner has two more liberties on a torus.
	if _, err := ApplyPlacement(b, topology.C(0, 0), Black, topology.Rollover); err != nil {
		t.Errorf("rollover placement = %v, expected nil", err)
	}
}

func TestIsLegalPlacementKo(t *testing.T) {
	// White has just taken the black stone on (1,2) by playing (1,1).
	previous := boardFrom(
		".bw..",
		"b.bw.",
		".bw..",
		".....",
		".....",
	).Fingerprint()
	current := boardFrom(
		".bw..",
		"bw.w.",
		".bw..",
		".....",
		".....",
	)
	before := current.Fingerprint()

	err := IsLegalPlacement(current, topology.C(1, 2), Black, topology.Classic, previous)
	if !errors.Is(err, ErrKo) {
		t.Fatalf("immediate retake = %v, expected ErrKo", err)
	}
	if current.Fingerprint() != before {
		t.Error("board changed after ko rejection")
	}

	if err := IsLegalPlacement(current, topology.C(1, 2), Black, topology.Classic, ""); err != nil {
		t.Errorf("retake without a previous position = %v, expected nil", err)
	}
	if err := IsLegalPlacement(current, topology.C(1, 2), Black, topology.Classic, Fingerprint("other")); err != nil {
		t.Errorf("retake against another position = %v, expected nil", err)
	}
}

func TestCountStones(t *testing.T) {
	b := boardFrom(
		"bb.",
		".w.",
		"..b",
	)
	if b.Count(Black) != 3 || b.Count(White) != 1 || b.Count(Empty) != 5 {
		t.Errorf("counts = %d/%d/%d", b.Count(Black), b.Count(White), b.Count(Empty))
	}
}

func TestValidSize(t *testing.T) {
	for _, n := range []int{9, 13, 19} {
		if !ValidSize(n) {
			t.Errorf("ValidSize(%d) = false", n)
		}
	}
	for _, n := range []int{0, 8, 21} {
		if ValidSize(n) {
			t.Errorf("ValidSize(%d) = true", n)
		}
	}
}
