// Package registry maps game IDs to factories. Game packages register
// from init(), so frontends only need a blank import to offer a mode.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Game is a frontend-independent simulation. It reads one InputFrame
// per Step and draws through a core.Surface; timing, key mapping and
// presentation belong to the driver.
type Game interface {
	// ID is the stable name used on the command line and in the
	// scores table.
	ID() string
	Title() string

	// Reset starts a fresh round. PlayArea and FrameRate are only
	// meaningful afterwards.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame and draws it into dst. The game presents
	// dst itself, possibly more than once, so drivers must not present
	// again. A non-zero StepResult.Hold keeps the last frame on screen
	// for that long before the driver continues.
	Step(in core.InputFrame, dst core.Surface) core.StepResult

	State() core.GameState
	PlayArea() core.Size
	FrameRate() int
}

// GameInfo describes a registered game for menus and listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	info GameInfo
	make Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, make: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	mu.RUnlock()
	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.make(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
