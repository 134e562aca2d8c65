package core

import "errors"

// ImportOrStub activates a stub chain for name, then attempts real
// resolution. An already-resolvable name comes back as the real object,
// untouched. A currently-unresolvable one comes back as the installed stub,
// so later resolutions of the same path cannot fail just because
// intermediate levels are missing.
//
// The activation is deliberately not torn down: the stub is meant to persist
// for the scope using it, typically the rest of a test file or run.
//
// A nil resolver defaults to resolving against the registry itself. Resolver
// failures other than ErrNotFound surface unchanged.
func ImportOrStub(registry Registry, resolver Resolver, name string) (any, error) {
	controller, err := NewScopeController(registry, name)
	if err != nil {
		return nil, err
	}

	err = controller.Activate()
	if err != nil {
		return nil, err
	}

	if resolver == nil {
		resolver = RegistryResolver{Registry: registry}
	}

	module, err := resolver.Resolve(name)
	if err == nil {
		return module, nil
	}

	if errors.Is(err, ErrNotFound) {
		// the chain we just installed covers every level of the path, so a
		// NotFound from an external resolver still leaves a usable stub
		if stub, ok := registry.Get(name); ok {
			return stub, nil
		}
	}

	return nil, err
}
