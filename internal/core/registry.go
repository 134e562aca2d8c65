package core

import (
	"fmt"
	"sort"
)

// Registry is the dynamic module-resolution table the core operates on,
// keyed by full dotted-path strings. It is always passed as an explicit
// handle; the core holds no hidden reference to it across calls.
//
// All operations are synchronous, single-threaded mutations. Concurrent
// activation on overlapping paths is unsupported and must be serialized by
// the caller.
type Registry interface {
	Exists(key string) bool
	Get(key string) (any, bool)
	Set(key string, module any)
	Delete(key string)
}

// Resolver performs real resolution of a dotted name. Implementations return
// an error satisfying errors.Is(err, ErrNotFound) when the name cannot be
// resolved.
type Resolver interface {
	Resolve(name string) (any, error)
}

// MapRegistry is the default in-memory Registry. It is deliberately
// lock-free: nested single-threaded use is first-class, cross-thread use is
// the caller's problem to serialize.
type MapRegistry struct {
	modules map[string]any
}

// NewMapRegistry returns an empty in-memory registry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{modules: map[string]any{}}
}

// Exists reports whether key is present.
func (r *MapRegistry) Exists(key string) bool {
	_, ok := r.modules[key]
	return ok
}

// Get returns the module stored under key.
func (r *MapRegistry) Get(key string) (any, bool) {
	module, ok := r.modules[key]
	return module, ok
}

// Set stores module under key, replacing any prior entry.
func (r *MapRegistry) Set(key string, module any) {
	r.modules[key] = module
}

// Delete removes key. Deleting an absent key is a no-op.
func (r *MapRegistry) Delete(key string) {
	delete(r.modules, key)
}

// Keys returns every key in sorted order. Tests and StateDiff use this to
// snapshot registry membership.
func (r *MapRegistry) Keys() []string {
	keys := make([]string, 0, len(r.modules))
	for key := range r.modules {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// RegistryResolver resolves names directly against a Registry. It is the
// default Resolver for ImportOrStub: once a stub chain is installed, every
// path it covers resolves.
type RegistryResolver struct {
	Registry Registry
}

// Resolve returns the registry entry for name, or ErrNotFound.
func (r RegistryResolver) Resolve(name string) (any, error) {
	module, ok := r.Registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return module, nil
}
