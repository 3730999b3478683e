// Package registry provides a global registry of renderer factories.
// Renderers register themselves in init() functions, allowing the front-end
// to discover and select them by configuration without hardcoded branches.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Renderer draws a snapshot of the simulation into a screen buffer.
// Renderers only read state; they never mutate the game.
type Renderer interface {
	// ID returns a unique identifier (e.g., "classic").
	// Used in config files, flags and saved preferences.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Render draws the snapshot into dst. The screen is cleared by the renderer.
	Render(dst *core.Screen, snap snake.Snapshot)
}

// RendererInfo contains metadata about a registered renderer.
type RendererInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new renderer instance.
type Factory func() Renderer

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a renderer factory to the registry.
// Typically called from an init() function.
// Panics if a renderer with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: renderer %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered renderers, sorted by ID.
func List() []RendererInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RendererInfo, 0, len(factories))
	for id := range factories {
		result = append(result, RendererInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered renderer IDs, sorted.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a renderer by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Renderer, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown renderer %q", id)
	}

	return f(), nil
}

// Exists checks if a renderer with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Next returns the ID after id in sorted order, wrapping around.
// An unknown id yields the first registered renderer.
func Next(id string) string {
	ids := IDs()
	if len(ids) == 0 {
		return id
	}
	for i, cur := range ids {
		if cur == id {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}
