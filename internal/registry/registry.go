// Package registry provides a name-keyed registry for content definitions.
// Content packages register their definitions in init() functions, allowing
// the engine to look them up by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps stable names to definitions of type T.
// It is safe for concurrent use; registration normally happens once during
// package initialisation and lookups happen afterwards.
type Registry[T any] struct {
	kind  string
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// New creates an empty registry. kind is used in panic messages
// (e.g., "item", "effect").
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// Register adds a definition under the given name.
// Panics if a definition with the same name is already registered.
func (r *Registry[T]) Register(name string, def T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		panic(fmt.Sprintf("registry: %s with empty name", r.kind))
	}
	if _, exists := r.items[name]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, name))
	}

	r.items[name] = def
	r.order = append(r.order, name)
}

// Lookup returns the definition registered under name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.items[name]
	return def, ok
}

// Exists checks if a definition with the given name is registered.
func (r *Registry[T]) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[name]
	return ok
}

// Names returns all registered names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.items))
	for name := range r.items {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// InOrder returns all definitions in registration order.
// Weighted draws iterate this slice, so it must not depend on map order.
func (r *Registry[T]) InOrder() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.items[name])
	}
	return result
}

// Len returns the number of registered definitions.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
