package schema

import (
	"fmt"
	"sync"
)

// Registry holds model declarations by name. It is safe for concurrent use;
// the builders only ever read from it.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*Model
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Model)}
}

// Register adds or replaces a model declaration.
func (r *Registry) Register(m *Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[m.Name] = m
}

// Lookup returns the model registered under name.
func (r *Registry) Lookup(name string) (*Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("schema: model %q not registered", name)
	}
	return m, nil
}

// Names returns the registered model names, unordered.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	return names
}
