package core

import "errors"

// ErrUnsupportedAction is returned by Step for actions a game does not know,
// such as a pass in chess.
var ErrUnsupportedAction = errors.New("unsupported action")
