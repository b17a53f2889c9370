package level

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/sky-fighter/engine"
)

// Constructor builds a fresh configuration for one level instance
type Constructor func() (engine.LevelConfig, error)

// Registry maps level ids to constructors
// Levels are registered up front; lookups never reflect on names
type Registry struct {
	mu     sync.RWMutex
	levels map[string]Constructor
	order  []string
	first  string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{levels: make(map[string]Constructor)}
}

// FromCatalog registers every definition of a validated catalog
func FromCatalog(c *Catalog) (*Registry, error) {
	r := NewRegistry()
	for i := range c.Levels {
		d := c.Levels[i]
		if err := r.Register(d.ID, func() (engine.LevelConfig, error) {
			cfg := d.Config()
			return cfg, cfg.Validate()
		}); err != nil {
			return nil, err
		}
	}
	r.first = c.First
	return r, nil
}

// Register adds a constructor, ids are unique
func (r *Registry) Register(id string, c Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.levels[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateLevel, id)
	}
	r.levels[id] = c
	r.order = append(r.order, id)
	if r.first == "" {
		r.first = id
	}
	return nil
}

// Build constructs the configuration for id
func (r *Registry) Build(id string) (engine.LevelConfig, error) {
	r.mu.RLock()
	c, ok := r.levels[id]
	r.mu.RUnlock()

	if !ok {
		return engine.LevelConfig{}, fmt.Errorf("%w: %q", ErrUnknownLevel, id)
	}
	return c()
}

// Has reports whether id is registered
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.levels[id]
	return ok
}

// First returns the entry level
func (r *Registry) First() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.first
}

// IDs returns registered ids in registration order
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
