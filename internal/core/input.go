package core

import "github.com/vovakirdan/torus-boards/internal/topology"

// Action represents a semantic player action, abstracted from how the
// platform collected it (typed command, click, test script).
type Action int

const (
	ActionNone  Action = iota
	ActionMove         // Chess: move the piece on From to To
	ActionPlace        // Go: place a stone on At
	ActionPass         // Go: pass the turn
	ActionReset        // Restart with the starting layout
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionPlace:
		return "Place"
	case ActionPass:
		return "Pass"
	case ActionReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// InputFrame is a single player action with its coordinates.
// Coordinates may be raw; games canonicalize them under their topology.
type InputFrame struct {
	Action Action
	From   topology.Cell
	To     topology.Cell
	At     topology.Cell
}

// MoveInput builds a chess move frame.
func MoveInput(from, to topology.Cell) InputFrame {
	return InputFrame{Action: ActionMove, From: from, To: to}
}

// PlaceInput builds a Go placement frame.
func PlaceInput(at topology.Cell) InputFrame {
	return InputFrame{Action: ActionPlace, At: at}
}

// PassInput builds a pass frame.
func PassInput() InputFrame {
	return InputFrame{Action: ActionPass}
}

// ResetInput builds a reset frame.
func ResetInput() InputFrame {
	return InputFrame{Action: ActionReset}
}
