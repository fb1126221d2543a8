package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/favonia/ddnsp/internal/pp"
)

// A Constructor builds a backend from the settings of its own namespace.
// The identifier is the one the constructor was registered under.
type Constructor func(ppfmt pp.PP, id string, settings Settings) (Backend, bool)

// Registry maps backend identifiers to constructors and remembers the built backends.
type Registry struct {
	mu           sync.Mutex
	constructors map[string]Constructor
	instances    map[string]Backend
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:           sync.Mutex{},
		constructors: map[string]Constructor{},
		instances:    map[string]Backend{},
	}
}

// DefaultRegistry registers all the backends shipped with this program.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("bind9", NewBind9)
	r.Register("cloudflare", NewCloudflare)
	r.Register("godaddy", NewGoDaddy)
	return r
}

// Register adds a constructor. Registering the same identifier twice replaces the constructor.
func (r *Registry) Register(id string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.constructors[id] = c
	delete(r.instances, id)
}

// IDs returns the sorted list of registered identifiers.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.constructors))
	for id := range r.constructors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Resolve returns the backend registered under id, building it on the first call.
// Later calls return the same backend and ignore settings.
func (r *Registry) Resolve(ppfmt pp.PP, id string, settings Settings) (Backend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.instances[id]; ok {
		return b, nil
	}

	c, ok := r.constructors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotFound, id)
	}

	b, ok := c(ppfmt, id, settings)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendSetup, id)
	}

	r.instances[id] = b
	return b, nil
}
