// Package registry holds the catalog of game definitions the arcade can
// instantiate. Keys are unique; registering a key twice is a configuration
// error and panics at startup.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	Key     string
	Title   string
	Summary string
}

// Catalog maps game keys to their definitions. Definitions are immutable,
// so one catalog can be shared by any number of sessions.
type Catalog struct {
	mu    sync.RWMutex
	defs  map[string]*lifecycle.Definition
	order []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{defs: make(map[string]*lifecycle.Definition)}
}

// Register adds a definition to the catalog.
// Panics if the definition is invalid or its key is already registered.
func (c *Catalog) Register(def *lifecycle.Definition) {
	if err := def.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.defs[def.Key]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", def.Key))
	}
	c.defs[def.Key] = def
	c.order = append(c.order, def.Key)
}

// List returns information about all registered games in registration order.
func (c *Catalog) List() []GameInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]GameInfo, 0, len(c.order))
	for _, key := range c.order {
		def := c.defs[key]
		result = append(result, GameInfo{
			Key:     def.Key,
			Title:   def.Title,
			Summary: def.Summary,
		})
	}
	return result
}

// Lookup returns the definition registered under key.
func (c *Catalog) Lookup(key string) (*lifecycle.Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.defs[key]
	return def, ok
}

// Get returns the definition registered under key, or an error if the key
// is unknown.
func (c *Catalog) Get(key string) (*lifecycle.Definition, error) {
	def, ok := c.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", key)
	}
	return def, nil
}
