package calc

import (
	"fmt"
	"sync"
)

// Registry stores calculated-field definitions keyed by Key. Registration
// order is preserved; re-registering a key replaces the definition in place.
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	order []string
	defs  map[string]Definition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register validates d and stores it, fully replacing any definition with the
// same key. Nothing is stored when validation fails.
func (r *Registry) Register(d Definition) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("registering calculated field %q: %w", d.Key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[d.Key]; !exists {
		r.order = append(r.order, d.Key)
	}
	r.defs[d.Key] = d.clone()
	return nil
}

// All returns a snapshot of every definition in registration order.
func (r *Registry) All() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Definition, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.defs[key].clone())
	}
	return out
}

// Get returns the definition registered under key.
func (r *Registry) Get(key string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.defs[key]
	if !ok {
		return Definition{}, false
	}
	return d.clone(), true
}

// Policy reports the confirmation policy of key. ok is false for unknown keys.
func (r *Registry) Policy(key string) (threshold int, needsConfirmation, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.defs[key]
	if !ok {
		return 0, false, false
	}
	return d.ConfirmationThreshold, d.NeedsConfirmation, true
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Clear removes every definition.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.defs = make(map[string]Definition)
}
