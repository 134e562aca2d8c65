// Package surrogate stubs dotted module paths that do not exist yet, so test
// code can reference them before a mocking layer substitutes real
// implementations. Activation installs placeholder namespaces for every
// missing level of a path into a module-resolution registry; deactivation
// restores the registry and the last existing ancestor bit-exactly, on every
// exit path.
//
// Three equivalent entry points are provided: an explicit scoped guard
// (Activate), a function wrapper (Wrap), and a one-shot import-or-stub
// helper (ImportOrStub).
//
// This is the public API entry point. Implementation lives in internal/core.
package surrogate

import (
	"github.com/toejough/surrogate/internal/core"
)

// BaseSnapshot captures an ancestor's pre-activation export-list state.
type BaseSnapshot = core.BaseSnapshot

// ConflictError reports an internal-consistency fault: the path analysis and
// the registry disagree about which keys exist.
type ConflictError = core.ConflictError

// MapRegistry is the default in-memory Registry implementation.
type MapRegistry = core.MapRegistry

// NewMapRegistry creates an empty in-memory registry.
func NewMapRegistry() *MapRegistry {
	return core.NewMapRegistry()
}

// Namespace is the capability an ancestor exposes for export-list and child
// wiring.
type Namespace = core.Namespace

// NamespaceStub is a synthetic placeholder namespace standing in for a real,
// not-yet-resolvable module.
type NamespaceStub = core.NamespaceStub

// Registry is the module-resolution table surrogate operates on, keyed by
// full dotted-path strings.
type Registry = core.Registry

// Resolver performs real resolution of a dotted name.
type Resolver = core.Resolver

// RegistryResolver resolves names directly against a Registry.
type RegistryResolver = core.RegistryResolver

// ScopeController orchestrates a single activation/deactivation of a stub
// chain.
type ScopeController = core.ScopeController

// New returns an IDLE ScopeController for path, bound to the given registry
// handle. Use Activate/Deactivate on the result for explicit control over
// the stub's lifetime.
func New(registry Registry, path string) (*ScopeController, error) {
	return core.NewScopeController(registry, path)
}

// Activate is the scoped-guard entry point: it activates a stub chain for
// path and returns the matching release function. Deferring the release
// guarantees exactly-once deactivation on normal or abrupt exit:
//
//	release, err := surrogate.Activate(reg, "my.module.one")
//	if err != nil { ... }
//	defer release()
func Activate(registry Registry, path string) (func(), error) {
	controller, err := core.NewScopeController(registry, path)
	if err != nil {
		return nil, err
	}

	err = controller.Activate()
	if err != nil {
		return nil, err
	}

	return controller.Deactivate, nil
}

// Wrap returns a function of the same type that activates a stub chain for
// path around every invocation of fn. Panics from fn propagate unchanged
// after state is restored. Stacked wrappers activate outer-to-inner and
// deactivate inner-to-outer.
func Wrap[T any](fn T, registry Registry, path string) (T, error) {
	return core.Wrap(fn, registry, path)
}

// ImportOrStub resolves name if it is already resolvable, otherwise installs
// a persistent stub for it and returns that. The stub is intentionally left
// active for the rest of the enclosing scope. A nil resolver resolves
// against the registry itself.
func ImportOrStub(registry Registry, resolver Resolver, name string) (any, error) {
	return core.ImportOrStub(registry, resolver, name)
}

// StateDiff renders a unified diff between two registry key snapshots.
// Empty output means the states match.
func StateDiff(label string, before, after []string) string {
	return core.StateDiff(label, before, after)
}

// ErrNotFound is the registry's signal that a name has neither a real entry
// nor an active stub.
var ErrNotFound = core.ErrNotFound

// ErrAlreadyActive reports activation of an already-active controller.
var ErrAlreadyActive = core.ErrAlreadyActive
