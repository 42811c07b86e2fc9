package check

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds check factories by rule key
type Registry struct {
	factories []Factory
	index     map[string]int
}

// NewRegistry creates a registry with factories
func NewRegistry(factories ...Factory) (*Registry, error) {
	r := &Registry{index: map[string]int{}}
	for _, factory := range factories {
		if err := r.Register(factory); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds factory; keys are unique, compared case-insensitively
func (r *Registry) Register(factory Factory) error {
	key := normalizeKey(factory().Key())
	if key == "" {
		return fmt.Errorf("check key was empty")
	}
	if _, ok := r.index[key]; ok {
		return fmt.Errorf("check %v already registered", key)
	}
	r.factories = append(r.factories, factory)
	r.index[key] = len(r.factories) - 1
	return nil
}

// Keys returns registered rule keys sorted
func (r *Registry) Keys() []string {
	var result []string
	for _, factory := range r.factories {
		result = append(result, factory().Key())
	}
	sort.Strings(result)
	return result
}

// Factory returns factory for a rule key
func (r *Registry) Factory(key string) (Factory, bool) {
	idx, ok := r.index[normalizeKey(key)]
	if !ok {
		return nil, false
	}
	return r.factories[idx], true
}

// Checks instantiates every registered check in registration order
func (r *Registry) Checks() []Check {
	result := make([]Check, 0, len(r.factories))
	for _, factory := range r.factories {
		result = append(result, factory())
	}
	return result
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
