package chess

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/registry"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// Rejection reasons. A rejected move leaves the session unchanged.
var (
	ErrGameOver           = errors.New("game is already over")
	ErrNoPiece            = errors.New("no piece at source square")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrIllegalDestination = errors.New("illegal destination")
)

// Record describes an accepted move.
type Record struct {
	Move
	Piece    Piece // Piece as it stood on From
	Captured Piece // Empty if nothing was taken
	Promoted bool
}

// Game is a chess session: it owns the board and turn state.
type Game struct {
	board    *Board
	mode     topology.Mode
	turn     core.Color
	gameOver bool
	winner   core.Color
	history  []Record
	lost     [3]int // pieces lost, indexed by color
	logger   *log.Logger
}

func init() {
	registry.Register("chess", func() registry.Game {
		return New(topology.Classic)
	})
}

// New creates a session in the starting position with White to move.
func New(mode topology.Mode) *Game {
	g := &Game{
		mode:   mode,
		logger: log.New(io.Discard),
	}
	g.reset()
	return g
}

// SetLogger routes session logging to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l.WithPrefix("chess")
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chess"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chess"
}

// Reset restarts the game in the starting position under cfg's topology.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.mode = cfg.Mode
	g.reset()
}

func (g *Game) reset() {
	g.board = StandardBoard()
	g.turn = White
	g.gameOver = false
	g.winner = core.NoColor
	g.history = nil
	g.lost = [3]int{}
}

// Mode returns the active topology.
func (g *Game) Mode() topology.Mode {
	return g.mode
}

// Turn returns the side to move.
func (g *Game) Turn() core.Color {
	return g.turn
}

// GameOver reports whether a king has been captured.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Winner returns the side that captured a king, or NoColor.
func (g *Game) Winner() core.Color {
	return g.winner
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// LastMove returns the most recent accepted move.
func (g *Game) LastMove() (Record, bool) {
	if len(g.history) == 0 {
		return Record{}, false
	}
	return g.history[len(g.history)-1], true
}

// Lost returns how many pieces a side has lost to captures.
func (g *Game) Lost(c core.Color) int {
	return g.lost[c]
}

// Captures returns how many enemy pieces a side has taken.
func (g *Game) Captures(c core.Color) int {
	return g.lost[c.Opponent()]
}

// LegalMoves returns the destinations for the piece on from, but only when
// it belongs to the side to move and the game is still running. A raw from
// is resolved like AttemptMove does.
func (g *Game) LegalMoves(from topology.Cell) []topology.Cell {
	if g.gameOver {
		return nil
	}
	from, _, ok := topology.Resolve(from, g.board.size, g.mode)
	if !ok {
		return nil
	}
	if p := g.board.At(from); p.Empty() || p.Color != g.turn {
		return nil
	}
	return LegalMoves(g.board, from, g.mode)
}

// AttemptMove validates and applies a move. On error nothing changes.
func (g *Game) AttemptMove(from, to topology.Cell) error {
	if err := g.move(from, to); err != nil {
		g.logger.Debug("move rejected", "from", from, "to", to, "reason", err)
		return err
	}
	return nil
}

func (g *Game) move(from, to topology.Cell) error {
	if g.gameOver {
		return ErrGameOver
	}

	// Wrapping boards accept tessellated coordinates from the renderer.
	canonFrom, _, ok := topology.Resolve(from, g.board.size, g.mode)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoPiece, from)
	}
	canonTo, _, ok := topology.Resolve(to, g.board.size, g.mode)
	if !ok {
		return fmt.Errorf("%w: %v is off the board", ErrIllegalDestination, to)
	}
	from, to = canonFrom, canonTo

	piece := g.board.At(from)
	if piece.Empty() {
		return fmt.Errorf("%w: %v", ErrNoPiece, from)
	}
	if piece.Color != g.turn {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.turn)
	}

	dest, found := findTarget(generate(g.board, from, g.mode), to)
	if !found {
		return fmt.Errorf("%w: %s %v -> %v", ErrIllegalDestination, piece.Kind, from, to)
	}

	moved := piece
	moved.Direction = nextDirection(piece, dest.reflected)

	rec := Record{
		Move:  Move{From: from, To: to},
		Piece: piece,
	}
	if moved.Kind == Pawn && to.Row == promotionRank(moved.Color, g.board.size) {
		moved = Piece{Kind: Queen, Color: moved.Color}
		rec.Promoted = true
	}

	g.board.Remove(from)
	rec.Captured = g.board.Remove(to)
	g.board.Set(to, moved)

	if !rec.Captured.Empty() {
		g.lost[rec.Captured.Color]++
	}
	g.history = append(g.history, rec)

	g.logger.Debug("move accepted",
		"piece", piece.Kind, "color", piece.Color,
		"from", from, "to", to,
		"captured", rec.Captured.Kind, "promoted", rec.Promoted)

	opponent := g.turn.Opponent()
	if !g.board.HasKing(opponent) {
		g.gameOver = true
		g.winner = g.turn
		g.logger.Info("king captured", "winner", g.winner)
		return nil
	}

	g.turn = opponent
	return nil
}

// findTarget looks up a requested destination in the generated set.
func findTarget(targets []target, to topology.Cell) (target, bool) {
	for _, t := range targets {
		if t.cell == to {
			return t, true
		}
	}
	return target{}, false
}

// Step applies a platform action.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var err error
	captured := 0

	switch in.Action {
	case core.ActionMove:
		before := len(g.history)
		err = g.AttemptMove(in.From, in.To)
		if err == nil && len(g.history) > before && !g.history[before].Captured.Empty() {
			captured = 1
		}
	case core.ActionReset:
		g.reset()
	default:
		err = fmt.Errorf("%w: %s", core.ErrUnsupportedAction, in.Action)
	}

	return core.StepResult{State: g.State(), Captured: captured, Err: err}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := fmt.Sprintf("%s to move", g.turn.Title())
	if g.gameOver {
		status = fmt.Sprintf("%s wins by capturing the king", g.winner.Title())
	}
	return core.GameState{
		Size:     g.board.size,
		Mode:     g.mode,
		Turn:     g.turn,
		Moves:    len(g.history),
		GameOver: g.gameOver,
		Winner:   g.winner,
		Status:   status,
	}
}
