// Package registry provides a global registry for board game factories.
// Games register themselves in init() functions, allowing the CLI
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/torus-boards/internal/core"
)

// Game is the interface every board game session implements.
// Games contain pure rules logic with no terminal or storage dependencies.
// The platform handles parsing input, printing, and persistence.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "chess", "go").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Chess").
	Title() string

	// Reset restores the starting layout and clears all counters.
	// The RuntimeConfig provides topology and board options.
	Reset(cfg core.RuntimeConfig)

	// Step applies one player action. A rejected action is reported in
	// StepResult.Err and leaves the game unchanged.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current board into the provided screen buffer,
	// resizing it as needed.
	Render(dst *core.Screen)

	// State returns the current game state (turn, game over, winner).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new game session.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new session by game ID and resets it with cfg.
func Create(id string, cfg core.RuntimeConfig) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	g := f()
	g.Reset(cfg)
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
