package table

import (
	"fmt"
	"sync"
)

// Preset describes a named domino table configuration.
type Preset struct {
	Name     string `json:"name"`
	MaxPips  int    `json:"maxPips"`
	HandSize int    `json:"handSize"`
}

// Registry holds all registered table presets.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]Preset)}
}

// Register adds a preset. Panics on duplicate names.
func (r *Registry) Register(p Preset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.presets[p.Name]; exists {
		panic(fmt.Sprintf("preset %q already registered", p.Name))
	}
	r.presets[p.Name] = p
}

// Get returns a preset by name.
func (r *Registry) Get(name string) (Preset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[name]
	return p, ok
}

// List returns all registered presets.
func (r *Registry) List() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	presets := make([]Preset, 0, len(r.presets))
	for _, p := range r.presets {
		presets = append(presets, p)
	}
	return presets
}

// DefaultPresets returns the standard set of table configurations.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "double-six", MaxPips: 6, HandSize: 7},
		{Name: "double-nine", MaxPips: 9, HandSize: 10},
		{Name: "mexican-twelve", MaxPips: 12, HandSize: 15},
	}
}
