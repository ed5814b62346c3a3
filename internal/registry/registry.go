// Package registry provides a global registry for level factories.
// Levels register themselves in init() functions, allowing the platform
// to discover and instantiate stages without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/termfolio/internal/engine"
)

// ErrUnknownLevel is returned when no level is registered under an ID.
var ErrUnknownLevel = errors.New("registry: unknown level")

// Level is a playable stage. Geometry is authored relative to the ground,
// so the engine asks for it once the viewport height is known.
type Level interface {
	// ID returns a unique identifier (e.g., "portfolio").
	// Used for CLI flags and the visit ledger.
	ID() string

	// Name returns a human-readable name for listings.
	Name() string

	// Title is shown on the intro screen.
	Title() string

	engine.Layout
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID   string
	Name string
}

// Factory is a function that creates a new instance of a level.
type Factory func() Level

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from an init() function.
// Panics if a level with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f

	// Get name by creating a temporary instance
	names[id] = f().Name()
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LevelInfo{
			ID:   id,
			Name: names[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a level by its ID.
func Create(id string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}

	return f(), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
