package core

import "github.com/vovakirdan/torus-boards/internal/topology"

// RuntimeConfig contains configuration passed to games on Reset.
// Fields a game does not use are ignored (chess is always 8x8).
type RuntimeConfig struct {
	BoardSize int           // Go board size; 0 means the game default
	Mode      topology.Mode // Edge topology
	Komi      float64       // Points added to White's Go score
	KoRule    string        // "simple" or "superko"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardSize: 0,
		Mode:      topology.Classic,
		Komi:      0,
		KoRule:    "simple",
	}
}

// GameState represents the read-only status of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Size     int           // Board dimension
	Mode     topology.Mode // Active topology
	Turn     Color         // Side to move
	Moves    int           // Accepted moves and passes so far
	GameOver bool          // Whether the game has ended
	Winner   Color         // NoColor while playing or on a tie
	Status   string        // One-line summary for the platform
}

// StepResult is returned by Game.Step() after each action.
// Err is non-nil when the action was rejected; the state is then unchanged.
type StepResult struct {
	State    GameState
	Captured int
	Err      error
}
