// Package registry lets games announce themselves from init() so hosts
// can look them up by ID without importing them directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what a host drives. Implementations hold pure logic; the host
// owns input mapping, frame timing and terminal output.
type Game interface {
	// ID returns the identifier used on the command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset (re)starts the game. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one host frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. The title is read once from a
// throwaway instance. Registering an empty or duplicate id panics, since
// it can only happen from a broken init().
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: empty id or nil factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a fresh, unstarted instance of the game. Each caller
// (a local run or an SSH session) gets its own.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
