package core

// Install inserts each stub of the chain into the registry, outermost first,
// under its full dotted key (knownPrefix joined with the chain segments so
// far). Each stub's resolved key is recorded as it is installed.
//
// If a key unexpectedly already exists, Install removes the entries it added
// and returns a *ConflictError: the analyzer said the key was missing, so a
// present key is an internal-consistency violation, not a user error.
func Install(registry Registry, chain []*NamespaceStub, knownPrefix string) error {
	segments := make([]string, len(chain))
	for i, stub := range chain {
		segments[i] = stub.name
	}

	for i, stub := range chain {
		key := joinKey(knownPrefix, segments, i)
		if registry.Exists(key) {
			Uninstall(registry, chain[:i])
			return &ConflictError{Key: key}
		}

		stub.resolvedKey = key
		registry.Set(key, stub)
	}

	return nil
}

// Uninstall deletes each installed stub's key, innermost first. Deletion is
// idempotent: absent keys are silently skipped so partial or repeated
// teardown is tolerated.
func Uninstall(registry Registry, chain []*NamespaceStub) {
	for i := len(chain) - 1; i >= 0; i-- {
		key := chain[i].resolvedKey
		if key == "" {
			continue
		}

		if registry.Exists(key) {
			registry.Delete(key)
		}
	}
}
