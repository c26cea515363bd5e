package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/registry"
	"github.com/vovakirdan/torus-boards/internal/storage"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// ResultSaver persists finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.Result) (storage.Result, error)
}

// captureCounter is implemented by games that track captures per side.
type captureCounter interface {
	Captures(c core.Color) int
}

// moveLister is implemented by games that can list destinations.
type moveLister interface {
	LegalMoves(from topology.Cell) []topology.Cell
}

// Driver runs one game session against a line-oriented input stream.
type Driver struct {
	game   registry.Game
	store  ResultSaver
	out    io.Writer
	logger *log.Logger
	color  bool
	screen *core.Screen
	saved  bool // Whether the result has been saved for the current game over
}

// Options configures a Driver. Store and Logger may be nil.
type Options struct {
	Store  ResultSaver
	Logger *log.Logger
	Color  bool
}

// NewDriver creates a driver for an already reset game.
func NewDriver(game registry.Game, out io.Writer, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:   game,
		store:  opts.Store,
		out:    out,
		logger: logger,
		color:  opts.Color,
		screen: core.NewScreen(1, 1),
	}
}

// Run reads commands until quit or end of input.
func (d *Driver) Run(in io.Reader) error {
	d.show()
	d.prompt()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if quit := d.Exec(scanner.Text()); quit {
			return nil
		}
		d.prompt()
	}
	return scanner.Err()
}

// Exec runs a single command line and reports whether the session should
// end.
func (d *Driver) Exec(line string) bool {
	state := d.game.State()
	cmd, err := ParseCommand(d.game.ID(), state.Size, line)
	if err != nil {
		d.printf("%v\n", err)
		return false
	}

	switch cmd.Kind {
	case KindEmpty:
	case KindQuit:
		return true
	case KindShow:
		d.show()
	case KindHelp:
		d.printf("%s\n", helpText(d.game.ID()))
	case KindMoves:
		d.listMoves(cmd.Input.From)
	case KindAction:
		d.step(cmd.Input)
	}
	return false
}

func (d *Driver) step(in core.InputFrame) {
	if in.Action == core.ActionReset {
		d.saved = false
	}

	res := d.game.Step(in)
	if res.Err != nil {
		d.logger.Debug("action rejected", "action", in.Action, "err", res.Err)
		d.printf("rejected: %v\n", res.Err)
		return
	}
	if res.Captured > 0 {
		d.printf("captured %d\n", res.Captured)
	}
	d.show()

	if res.State.GameOver && !d.saved {
		d.saveResult(res.State)
	}
}

func (d *Driver) listMoves(from topology.Cell) {
	lister, ok := d.game.(moveLister)
	if !ok {
		d.printf("%s cannot list moves\n", d.game.Title())
		return
	}
	moves := lister.LegalMoves(from)
	if len(moves) == 0 {
		d.printf("no moves from %v\n", from)
		return
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	d.printf("%s\n", strings.Join(names, " "))
}

// saveResult stores the finished game once. Storage failures only warn.
func (d *Driver) saveResult(state core.GameState) {
	d.saved = true
	if d.store == nil {
		return
	}

	r := storage.Result{
		GameID: d.game.ID(),
		Mode:   state.Mode.String(),
		Winner: state.Winner,
		Moves:  state.Moves,
	}
	if cc, ok := d.game.(captureCounter); ok {
		r.BlackCaptures = cc.Captures(core.Black)
		r.WhiteCaptures = cc.Captures(core.White)
	}

	saved, err := d.store.SaveResult(r)
	if err != nil {
		d.logger.Warn("could not save result", "err", err)
		return
	}
	d.logger.Info("result saved", "match", saved.MatchID, "winner", saved.Winner)
}

func (d *Driver) show() {
	d.game.Render(d.screen)
	d.printf("%s\n", RenderScreen(d.screen, d.color))
}

func (d *Driver) prompt() {
	d.printf("> ")
}

func (d *Driver) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(d.out, format, args...); err != nil {
		d.logger.Debug("write failed", "err", err)
	}
}
