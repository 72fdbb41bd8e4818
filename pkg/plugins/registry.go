package plugins

import (
	"sort"
	"sync"

	"github.com/arthur-debert/slideshow/pkg/errors"
)

// Registry holds the plugins loaded in this run, keyed by name
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds a plugin. A second plugin with the same name is rejected.
func (r *Registry) Register(p Plugin) error {
	if p.Name == "" {
		return errors.New(errors.ErrInvalidInput, "plugin name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.plugins[p.Name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "plugin '%s' is already registered from %s", p.Name, existing.Path)
	}
	r.plugins[p.Name] = p
	return nil
}

// Get retrieves a plugin by name
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[name]
	return p, ok
}

// List returns all registered names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered plugins
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// Helpers merges the helpers of every plugin. Plugins are visited in name
// order, so when two define the same helper the later name wins.
func (r *Registry) Helpers() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)

	helpers := make(map[string]string)
	for _, name := range names {
		for k, v := range r.plugins[name].Helpers {
			helpers[k] = v
		}
	}
	return helpers
}
