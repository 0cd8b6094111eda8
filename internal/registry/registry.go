// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/lifecycle"
)

// Game is the interface every mini-game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	// Used for CLI commands, catalog descriptors and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset re-initializes the board and returns the session to Ready.
	// It never fires lifecycle hooks.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input. At most one phase transition happens
	// per call; the simulation only advances while Playing.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. It must not mutate the game.
	Render(dst *core.Screen)

	// State returns the session state (score, phase, tick interval).
	State() core.GameState

	// TickInterval is the delay the host should wait before the next Step.
	TickInterval() time.Duration
}

// Snapshotter is implemented by games that can export their state for
// tests, replays and remote frame payloads.
type Snapshotter interface {
	SnapshotAny() any
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a game wired to the given host hooks.
type Factory func(hooks lifecycle.Hooks) Game

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
	titles[id] = f(lifecycle.Hooks{}).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by its ID with the given hooks.
// Returns an error if the game ID is not registered.
func Create(id string, hooks lifecycle.Hooks) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(hooks), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
