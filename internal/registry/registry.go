// Package registry holds the playable game modes. Modes register a factory
// in init(), so the CLI and the mode menu can list and build them without
// importing the game package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic;
// input mapping, timing and terminal output stay in the platform.
type Game interface {
	// ID is the unique mode identifier used by the CLI and the journal.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Description is a one-line summary for menus and `chomp list`.
	Description() string

	// Reset builds a fresh session from cfg. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one platform frame with the actions collected since
	// the previous frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score, terminal and pause flags.
	State() core.GameState
}

// Info describes a registered mode.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	infos[id] = Info{ID: id, Title: g.Title(), Description: g.Description()}
}

// List returns every registered mode sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
