// Package cli drives a registered game from line-oriented text input.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/games/goban"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("cannot parse command")

// Kind classifies a parsed command line.
type Kind int

const (
	KindEmpty  Kind = iota
	KindAction      // Input holds a game action
	KindShow        // Redraw the board
	KindMoves       // List legal moves from Input.From
	KindHelp        // Print the command summary
	KindQuit        // Leave the session
)

// Command is one parsed input line.
type Command struct {
	Kind  Kind
	Input core.InputFrame
}

// ParseCommand parses a line for the given game on a size x size board.
//
// Chess accepts "e2 e4" or "6,4 4,4"; Go accepts "d4", "3,3" or "pass".
// Both accept reset, show, help and quit. Chess also accepts "moves e2".
// Numeric coordinates are raw (row, col) and may lie off the board; the
// game resolves them under its topology.
func ParseCommand(gameID string, size int, line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Kind: KindEmpty}, nil
	}

	switch fields[0] {
	case "show", "board":
		return Command{Kind: KindShow}, nil
	case "help", "?":
		return Command{Kind: KindHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: KindQuit}, nil
	case "reset", "new":
		return Command{Kind: KindAction, Input: core.ResetInput()}, nil
	}

	switch gameID {
	case "chess":
		return parseChess(fields, size)
	case "go":
		return parseGo(fields, size)
	default:
		return Command{}, fmt.Errorf("%w: no notation for game %q", ErrSyntax, gameID)
	}
}

func parseChess(fields []string, size int) (Command, error) {
	if fields[0] == "moves" {
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%w: usage: moves <square>", ErrSyntax)
		}
		from, err := ParseSquare(fields[1], size)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindMoves, Input: core.InputFrame{From: from}}, nil
	}

	if len(fields) == 1 && len(fields[0]) == 4 && !strings.Contains(fields[0], ",") {
		// "e2e4"
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: expected <from> <to>", ErrSyntax)
	}
	from, err := ParseSquare(fields[0], size)
	if err != nil {
		return Command{}, err
	}
	to, err := ParseSquare(fields[1], size)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindAction, Input: core.MoveInput(from, to)}, nil
}

func parseGo(fields []string, size int) (Command, error) {
	if len(fields) != 1 {
		return Command{}, fmt.Errorf("%w: expected <point> or pass", ErrSyntax)
	}
	if fields[0] == "pass" {
		return Command{Kind: KindAction, Input: core.PassInput()}, nil
	}
	at, err := ParsePoint(fields[0], size)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindAction, Input: core.PlaceInput(at)}, nil
}

// ParseSquare parses a chess square: algebraic ("e2", rank 1 is the bottom
// row) or numeric "row,col".
func ParseSquare(s string, size int) (topology.Cell, error) {
	if c, ok, err := parseNumeric(s); ok {
		return c, err
	}
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return topology.Cell{}, fmt.Errorf("%w: bad square %q", ErrSyntax, s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 || rank > size {
		return topology.Cell{}, fmt.Errorf("%w: bad rank in %q", ErrSyntax, s)
	}
	col := int(s[0] - 'a')
	if col >= size {
		return topology.Cell{}, fmt.Errorf("%w: bad file in %q", ErrSyntax, s)
	}
	return topology.C(size-rank, col), nil
}

// ParsePoint parses a Go point: letter and line number ("d4", no 'i'
// column, line 1 is the bottom row) or numeric "row,col".
func ParsePoint(s string, size int) (topology.Cell, error) {
	if c, ok, err := parseNumeric(s); ok {
		return c, err
	}
	if len(s) < 2 {
		return topology.Cell{}, fmt.Errorf("%w: bad point %q", ErrSyntax, s)
	}
	col, ok := goban.ColumnIndex(s[0])
	if !ok || col >= size {
		return topology.Cell{}, fmt.Errorf("%w: bad column in %q", ErrSyntax, s)
	}
	line, err := strconv.Atoi(s[1:])
	if err != nil || line < 1 || line > size {
		return topology.Cell{}, fmt.Errorf("%w: bad line in %q", ErrSyntax, s)
	}
	return topology.C(size-line, col), nil
}

// parseNumeric handles "row,col". ok is false when s is not in that form.
func parseNumeric(s string) (topology.Cell, bool, error) {
	r, c, found := strings.Cut(s, ",")
	if !found {
		return topology.Cell{}, false, nil
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return topology.Cell{}, true, fmt.Errorf("%w: bad row in %q", ErrSyntax, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return topology.Cell{}, true, fmt.Errorf("%w: bad column in %q", ErrSyntax, s)
	}
	return topology.C(row, col), true, nil
}

// helpText returns the command summary for a game.
func helpText(gameID string) string {
	common := "reset, show, help, quit"
	switch gameID {
	case "chess":
		return "moves: e2 e4 | 6,4 4,4 | moves e2 | " + common
	case "go":
		return "moves: d4 | 3,3 | pass | " + common
	default:
		return common
	}
}
