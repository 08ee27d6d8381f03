// Package registry maps game IDs to factories. Games register from init, so
// the CLI and the SSH server can start one by ID without importing it by
// name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/coin-rush/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is a fixed-step simulation the terminal platform can drive. It never
// touches the terminal: input arrives as core.InputFrame and output goes
// into a core.Screen.
type Game interface {
	// ID is the stable key used on the command line and in the score table.
	ID() string
	Title() string

	// Reset starts a fresh session for the given runtime.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. It may assume nothing about dst's
	// previous contents.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory builds a new, unstarted game. Every call must return a fresh
// instance; sessions never share one.
type Factory func() Game

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds f under id. It panics on an empty ID, a nil factory or an
// ID that is already taken, since all of those are programming errors.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: empty game id or nil factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, taken := entries[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the description of id without creating a game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
