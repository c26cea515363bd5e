package goban

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/registry"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// ErrGameOver is returned for any placement or pass after two consecutive
// passes ended the game.
var ErrGameOver = errors.New("game is already over")

// KoRule selects which earlier positions a placement may not recreate.
type KoRule int

const (
	// KoSimple forbids recreating the position before the opponent's
	// last placement.
	KoSimple KoRule = iota
	// KoSuperko forbids recreating any position seen since the start.
	KoSuperko
)

// String returns the configuration name of the rule.
func (k KoRule) String() string {
	if k == KoSuperko {
		return "superko"
	}
	return "simple"
}

// ParseKoRule converts a configuration name into a KoRule.
func ParseKoRule(s string) (KoRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simple":
		return KoSimple, nil
	case "superko", "positional":
		return KoSuperko, nil
	default:
		return KoSimple, fmt.Errorf("goban: unknown ko rule %q", s)
	}
}

// Game is a Go session. Black moves first.
type Game struct {
	board    *Board
	mode     topology.Mode
	komi     float64
	ko       KoRule
	turn     core.Color
	passes   int
	moves    int
	previous Fingerprint
	history  []Fingerprint
	seen     map[Fingerprint]struct{}
	captures [3]int // stones captured, indexed by capturing color
	last     topology.Cell
	hasLast  bool
	gameOver bool
	winner   core.Color
	logger   *log.Logger
}

func init() {
	registry.Register("go", func() registry.Game {
		return New(DefaultSize, topology.Classic)
	})
}

// New creates an empty session with simple ko and no komi.
// Unsupported sizes fall back to DefaultSize.
func New(size int, mode topology.Mode) *Game {
	if !ValidSize(size) {
		size = DefaultSize
	}
	g := &Game{
		mode:   mode,
		logger: log.New(io.Discard),
	}
	g.reset(size)
	return g
}

// SetLogger routes session logging to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l.WithPrefix("go")
}

// SetKomi sets the points added to White's final score.
func (g *Game) SetKomi(komi float64) {
	g.komi = komi
}

// SetKoRule switches the ko rule. The recorded history is kept.
func (g *Game) SetKoRule(k KoRule) {
	g.ko = k
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "go"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Go"
}

// Reset clears the board and applies cfg. A zero or unsupported
// BoardSize keeps the current size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	size := g.board.size
	if ValidSize(cfg.BoardSize) {
		size = cfg.BoardSize
	}
	g.mode = cfg.Mode
	g.komi = cfg.Komi
	if k, err := ParseKoRule(cfg.KoRule); err == nil {
		g.ko = k
	}
	g.reset(size)
}

func (g *Game) reset(size int) {
	g.board = NewBoard(size)
	g.turn = Black
	g.passes = 0
	g.moves = 0
	g.previous = ""
	start := g.board.Fingerprint()
	g.history = []Fingerprint{start}
	g.seen = map[Fingerprint]struct{}{start: {}}
	g.captures = [3]int{}
	g.last = topology.Cell{}
	g.hasLast = false
	g.gameOver = false
	g.winner = core.NoColor
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.board.size
}

// Mode returns the active topology.
func (g *Game) Mode() topology.Mode {
	return g.mode
}

// Komi returns the points added to White's score.
func (g *Game) Komi() float64 {
	return g.komi
}

// KoRule returns the active ko rule.
func (g *Game) KoRule() KoRule {
	return g.ko
}

// Turn returns the side to move.
func (g *Game) Turn() core.Color {
	return g.turn
}

// Passes returns the number of consecutive passes.
func (g *Game) Passes() int {
	return g.passes
}

// GameOver reports whether two consecutive passes ended the game.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Winner returns the side with the higher score once the game is over.
// NoColor means the game is running or tied.
func (g *Game) Winner() core.Color {
	return g.winner
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Captures returns the number of stones color has captured.
func (g *Game) Captures(color core.Color) int {
	return g.captures[color]
}

// LastMove returns the most recent placement. A pass clears it.
func (g *Game) LastMove() (topology.Cell, bool) {
	return g.last, g.hasLast
}

// Previous returns the position before the last placement, used for ko.
func (g *Game) Previous() Fingerprint {
	return g.previous
}

// History returns the fingerprint of every position reached, starting with
// the empty board.
func (g *Game) History() []Fingerprint {
	return append([]Fingerprint(nil), g.history...)
}

// Score returns color's stones on the board, plus komi for White.
func (g *Game) Score(color core.Color) float64 {
	score := float64(g.board.Count(color))
	if color == White {
		score += g.komi
	}
	return score
}

// IsLegal reports whether the side to move may play on c.
func (g *Game) IsLegal(c topology.Cell) error {
	_, err := g.check(c)
	return err
}

// check validates a placement for the side to move and returns the
// simulated result.
func (g *Game) check(c topology.Cell) (Placement, error) {
	if g.gameOver {
		return Placement{}, ErrGameOver
	}
	p, err := simulate(g.board, c, g.turn, g.mode)
	if err != nil {
		return Placement{}, err
	}
	if g.previous != "" && p.Fingerprint == g.previous {
		return Placement{}, fmt.Errorf("%w: %v recreates the previous position", ErrKo, p.At)
	}
	if g.ko == KoSuperko {
		if _, dup := g.seen[p.Fingerprint]; dup {
			return Placement{}, fmt.Errorf("%w: %v repeats an earlier position", ErrKo, p.At)
		}
	}
	return p, nil
}

// AttemptPlacement validates and plays a stone for the side to move.
// On error nothing changes.
func (g *Game) AttemptPlacement(c topology.Cell) error {
	if _, err := g.check(c); err != nil {
		g.logger.Debug("placement rejected", "color", g.turn, "at", c, "reason", err)
		return err
	}

	before := g.board.Fingerprint()
	p, err := ApplyPlacement(g.board, c, g.turn, g.mode)
	if err != nil {
		// check already ran the same placement on a copy.
		return err
	}

	g.captures[g.turn] += p.Captured
	g.previous = before
	g.history = append(g.history, p.Fingerprint)
	g.seen[p.Fingerprint] = struct{}{}
	g.passes = 0
	g.moves++
	g.last, g.hasLast = p.At, true

	g.logger.Debug("placement accepted", "color", g.turn, "at", p.At, "captured", p.Captured)

	g.turn = g.turn.Opponent()
	return nil
}

// Pass gives up the turn. The second consecutive pass ends the game and
// the turn does not flip.
func (g *Game) Pass() error {
	if g.gameOver {
		return ErrGameOver
	}

	g.passes++
	g.moves++
	g.hasLast = false
	g.logger.Debug("pass", "color", g.turn, "passes", g.passes)

	if g.passes >= 2 {
		g.finish()
		return nil
	}

	g.turn = g.turn.Opponent()
	return nil
}

// finish ends the game and decides the winner by score.
func (g *Game) finish() {
	g.gameOver = true
	black, white := g.Score(Black), g.Score(White)
	switch {
	case black > white:
		g.winner = Black
	case white > black:
		g.winner = White
	default:
		g.winner = core.NoColor
	}
	g.logger.Info("game over", "black", black, "white", white, "winner", g.winner)
}

// Step applies a platform action.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var err error
	captured := 0

	switch in.Action {
	case core.ActionPlace:
		before := g.captures[g.turn]
		mover := g.turn
		err = g.AttemptPlacement(in.At)
		captured = g.captures[mover] - before
	case core.ActionPass:
		err = g.Pass()
	case core.ActionReset:
		g.reset(g.board.size)
	default:
		err = fmt.Errorf("%w: %s", core.ErrUnsupportedAction, in.Action)
	}

	return core.StepResult{State: g.State(), Captured: captured, Err: err}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var status string
	switch {
	case !g.gameOver:
		status = fmt.Sprintf("%s to move", g.turn.Title())
		if g.passes == 1 {
			status += " (opponent passed)"
		}
	case g.winner == core.NoColor:
		status = fmt.Sprintf("Tie at %g", g.Score(Black))
	default:
		status = fmt.Sprintf("%s wins %g to %g", g.winner.Title(),
			g.Score(g.winner), g.Score(g.winner.Opponent()))
	}
	return core.GameState{
		Size:     g.board.size,
		Mode:     g.mode,
		Turn:     g.turn,
		Moves:    g.moves,
		GameOver: g.gameOver,
		Winner:   g.winner,
		Status:   status,
	}
}
