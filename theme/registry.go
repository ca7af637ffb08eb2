package theme

import (
	"sort"
	"sync"
)

// Registry holds the available themes and tracks the active one.
type Registry struct {
	mu      sync.RWMutex
	themes  map[string]*Theme
	current *Theme
}

// NewRegistry returns a registry seeded with the built-in themes,
// with the default theme active.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}
	r.Register(Default())
	r.Register(Mono())
	r.current = r.themes["default"]
	return r
}

// Register adds a theme, replacing any theme of the same name.
func (r *Registry) Register(t *Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[t.Name()] = t
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (*Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the active theme.
func (r *Registry) Current() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SetCurrent activates the named theme and reports whether it exists.
func (r *Registry) SetCurrent(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.themes[name]
	if !ok {
		return false
	}
	r.current = t
	return true
}

// Names returns the registered theme names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
