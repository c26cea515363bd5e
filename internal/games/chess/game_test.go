package chess

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// newGameWith builds a session around a custom position.
func newGameWith(b *Board, mode topology.Mode, turn core.Color) *Game {
	g := New(mode)
	g.board = b
	g.turn = turn
	return g
}

func TestOpeningMove(t *testing.T) {
	g := New(topology.Classic)

	if err := g.AttemptMove(topology.C(6, 4), topology.C(4, 4)); err != nil {
		t.Fatalf("e2-e4 rejected: %v", err)
	}
	if g.Turn() != Black {
		t.Errorf("turn = %v, expected black", g.Turn())
	}
	if p := g.Board().At(topology.C(4, 4)); p.Kind != Pawn || p.Color != White {
		t.Errorf("e4 holds %v %v, expected white pawn", p.Color, p.Kind)
	}
	last, ok := g.LastMove()
	if !ok || last.From != topology.C(6, 4) || last.To != topology.C(4, 4) {
		t.Errorf("LastMove() = %+v, %v", last, ok)
	}
}

func TestRejectedMovesLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name     string
		from, to topology.Cell
		wantErr  error
	}{
		{"empty source", topology.C(4, 4), topology.C(3, 4), ErrNoPiece},
		{"off board source", topology.C(-1, 0), topology.C(0, 0), ErrNoPiece},
		{"opponent piece", topology.C(1, 4), topology.C(3, 4), ErrNotYourTurn},
		{"too far", topology.C(6, 4), topology.C(3, 4), ErrIllegalDestination},
		{"own piece", topology.C(7, 0), topology.C(6, 0), ErrIllegalDestination},
		{"off board target", topology.C(6, 4), topology.C(8, 4), ErrIllegalDestination},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(topology.Classic)
			before := g.Board().Fingerprint()

			err := g.AttemptMove(tc.from, tc.to)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("AttemptMove() error = %v, expected %v", err, tc.wantErr)
			}
			if after := g.Board().Fingerprint(); after != before {
				t.Errorf("board changed after rejection")
			}
			if g.Turn() != White {
				t.Errorf("turn changed to %v after rejection", g.Turn())
			}
			if _, ok := g.LastMove(); ok {
				t.Error("rejected move recorded in history")
			}
		})
	}
}

func TestRolloverAcceptsTessellatedTarget(t *testing.T) {
	g := New(topology.Rollover)

	// Row -4 wraps to row 4.
	if err := g.AttemptMove(topology.C(6, 4), topology.C(-4, 4)); err != nil {
		t.Fatalf("AttemptMove() = %v", err)
	}
	if p := g.Board().At(topology.C(4, 4)); p.Kind != Pawn {
		t.Errorf("(4,4) holds %v, expected pawn", p.Kind)
	}
}

func TestPromotion(t *testing.T) {
	b := NewBoard(BoardSize)
	b.Set(topology.C(1, 0), NewPiece(Pawn, White))
	b.Set(topology.C(7, 4), NewPiece(King, White))
	b.Set(topology.C(0, 4), NewPiece(King, Black))
	g := newGameWith(b, topology.Classic, White)

	if err := g.AttemptMove(topology.C(1, 0), topology.C(0, 0)); err != nil {
		t.Fatalf("AttemptMove() = %v", err)
	}
	if p := g.Board().At(topology.C(0, 0)); p.Kind != Queen || p.Color != White {
		t.Errorf("promoted piece = %v %v, expected white queen", p.Color, p.Kind)
	}
	last, _ := g.LastMove()
	if !last.Promoted {
		t.Error("record not marked as promotion")
	}
}

func TestKingCaptureEndsGame(t *testing.T) {
	b := NewBoard(BoardSize)
	b.Set(topology.C(4, 4), NewPiece(Rook, White))
	b.Set(topology.C(7, 0), NewPiece(King, White))
	b.Set(topology.C(0, 4), NewPiece(King, Black))
	g := newGameWith(b, topology.Classic, White)

	res := g.Step(core.MoveInput(topology.C(4, 4), topology.C(0, 4)))
	if res.Err != nil {
		t.Fatalf("Step() = %v", res.Err)
	}
	if res.Captured != 1 {
		t.Errorf("Captured = %d, expected 1", res.Captured)
	}
	if !g.GameOver() || g.Winner() != White {
		t.Errorf("GameOver=%v Winner=%v, expected white win", g.GameOver(), g.Winner())
	}
	if g.Turn() != White {
		t.Errorf("turn flipped to %v after king capture", g.Turn())
	}
	if g.Lost(Black) != 1 {
		t.Errorf("Lost(black) = %d, expected 1", g.Lost(Black))
	}
	if !strings.Contains(res.State.Status, "White wins") {
		t.Errorf("status = %q", res.State.Status)
	}

	before := g.Board().Fingerprint()
	if err := g.AttemptMove(topology.C(0, 4), topology.C(1, 4)); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after game over: error = %v, expected ErrGameOver", err)
	}
	if g.Board().Fingerprint() != before {
		t.Error("board changed after game over")
	}
	if moves := g.LegalMoves(topology.C(0, 4)); moves != nil {
		t.Errorf("LegalMoves after game over = %v", moves)
	}
}

func TestMirrorCaptureFlipsPawnInSession(t *testing.T) {
	b := NewBoard(BoardSize)
	b.Set(topology.C(0, 3), Piece{Kind: Pawn, Color: Black, Direction: -1})
	b.Set(topology.C(0, 4), NewPiece(Rook, White))
	b.Set(topology.C(7, 7), NewPiece(King, White))
	b.Set(topology.C(7, 0), NewPiece(King, Black))
	g := newGameWith(b, topology.Mirror, Black)

	if err := g.AttemptMove(topology.C(0, 3), topology.C(0, 4)); err != nil {
		t.Fatalf("AttemptMove() = %v", err)
	}
	p := g.Board().At(topology.C(0, 4))
	if p.Kind != Pawn || p.Direction != 1 {
		t.Errorf("pawn after reflected capture = %+v, expected direction 1", p)
	}
	// The reflection turned the pawn back to Black's natural direction.
	want := "....p...|........|........|........|........|........|........|k......K"
	if got := g.Board().Fingerprint(); got != want {
		t.Errorf("Fingerprint() = %q, expected %q", got, want)
	}
	if g.Turn() != White {
		t.Errorf("turn = %v, expected white", g.Turn())
	}
}

func TestSessionLegalMovesOnlyForSideToMove(t *testing.T) {
	g := New(topology.Classic)

	if moves := g.LegalMoves(topology.C(1, 4)); moves != nil {
		t.Errorf("black pawn moves on white's turn = %v", moves)
	}
	if moves := g.LegalMoves(topology.C(6, 4)); len(moves) != 2 {
		t.Errorf("white pawn moves = %v, expected 2", moves)
	}
}

func TestSessionLegalMovesResolvesRawSource(t *testing.T) {
	g := New(topology.Rollover)

	// (-2,4) is e2 seen one board height above the canonical board.
	want := []topology.Cell{topology.C(5, 4), topology.C(4, 4)}
	got := g.LegalMoves(topology.C(-2, 4))
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("LegalMoves((-2,4)) = %v, expected %v", got, want)
	}

	if err := g.AttemptMove(topology.C(-2, 4), topology.C(4, 4)); err != nil {
		t.Fatalf("AttemptMove((-2,4), (4,4)) = %v", err)
	}

	classic := New(topology.Classic)
	if moves := classic.LegalMoves(topology.C(-2, 4)); moves != nil {
		t.Errorf("classic LegalMoves off the board = %v, expected nil", moves)
	}
}

func TestStepResetAndUnsupported(t *testing.T) {
	g := New(topology.Classic)
	g.Step(core.MoveInput(topology.C(6, 4), topology.C(4, 4)))

	res := g.Step(core.PassInput())
	if !errors.Is(res.Err, core.ErrUnsupportedAction) {
		t.Errorf("pass error = %v, expected ErrUnsupportedAction", res.Err)
	}

	res = g.Step(core.ResetInput())
	if res.Err != nil {
		t.Fatalf("reset error = %v", res.Err)
	}
	if res.State.Moves != 0 || res.State.Turn != White {
		t.Errorf("state after reset = %+v", res.State)
	}
	if g.Board().Fingerprint() != StandardBoard().Fingerprint() {
		t.Error("board not restored by reset")
	}
}

func TestResetAppliesMode(t *testing.T) {
	g := New(topology.Classic)
	cfg := core.DefaultConfig()
	cfg.Mode = topology.Mirror
	g.Reset(cfg)

	if g.Mode() != topology.Mirror {
		t.Errorf("Mode() = %v, expected mirror", g.Mode())
	}
	if s := g.State(); s.Size != BoardSize || s.Mode != topology.Mirror {
		t.Errorf("State() = %+v", s)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := New(topology.Classic)
	g.AttemptMove(topology.C(6, 4), topology.C(4, 4))

	snap := g.Snapshot()
	snap.Board.Remove(topology.C(4, 4))

	if g.Board().At(topology.C(4, 4)).Empty() {
		t.Error("mutating the snapshot changed the game")
	}
	if snap.LastMove == nil || snap.Moves != 1 || snap.Turn != Black {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestRender(t *testing.T) {
	g := New(topology.Classic)
	scr := core.NewScreen(1, 1)
	g.Render(scr)

	if scr.Width() != 2*BoardSize+4 || scr.Height() != BoardSize+3 {
		t.Fatalf("screen is %dx%d", scr.Width(), scr.Height())
	}
	if r := scr.Get(2, 1); r != '♜' {
		t.Errorf("a8 glyph = %q, expected black rook", r)
	}
	if r := scr.Get(2+2*4, 8); r != '♔' {
		t.Errorf("e1 glyph = %q, expected white king", r)
	}
	if !strings.HasPrefix(scr.Row(BoardSize+2), "White to move") {
		t.Errorf("status row = %q", scr.Row(BoardSize+2))
	}
}

func TestSquareName(t *testing.T) {
	if got := SquareName(topology.C(6, 4)); got != "e2" {
		t.Errorf("SquareName(6,4) = %q, expected e2", got)
	}
	if got := SquareName(topology.C(0, 0)); got != "a8" {
		t.Errorf("SquareName(0,0) = %q, expected a8", got)
	}
}
