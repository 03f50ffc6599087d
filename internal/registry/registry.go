// Package registry maps game variant IDs to factories. Variants register
// themselves from init() so the platform can list and start them by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/missile-arcade/internal/core"
)

// Game is what the platform drives. Implementations never import Bubble Tea;
// the platform owns input mapping, timing, sound and the terminal.
type Game interface {
	// ID is the variant key used by the CLI and the runs table.
	ID() string

	// Title is the name shown in pickers and score tables.
	Title() string

	// Reset loads configuration and returns the game to its main menu.
	Reset(cfg core.RuntimeConfig)

	// Step advances by the frame's elapsed time and reports cues raised.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, run counters and which screen is up.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant. A duplicate ID is a programming error and panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns every variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds the variant with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
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
