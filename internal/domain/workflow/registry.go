package workflow

import (
	"fmt"
	"sort"
	"sync"
)

// Registry keeps workflow steps sorted by Order. Steps with the same order
// stay in registration sequence. A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	steps []Step
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register validates s, appends it and re-sorts the list.
func (r *Registry) Register(s Step) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("registering workflow step %q: %w", s.Title, err)
	}
	if s.ComponentType == "" {
		s.ComponentType = ComponentForm
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps = append(r.steps, s.clone())
	sort.SliceStable(r.steps, func(i, j int) bool {
		return r.steps[i].Order < r.steps[j].Order
	})
	return nil
}

// All returns a snapshot of the steps in order.
func (r *Registry) All() []Step {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Step, len(r.steps))
	for i := range r.steps {
		out[i] = r.steps[i].clone()
	}
	return out
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.steps)
}

// Clear removes every step.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = nil
}

// Visible returns the steps whose condition holds for data. Unconditional
// steps are always visible.
func Visible(steps []Step, data map[string]any) []Step {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.ShowIf == nil || s.ShowIf.Fn(data) {
			out = append(out, s)
		}
	}
	return out
}
