// Package core provides the internal implementation of surrogate's stub
// installer and restorer infrastructure.
package core

import (
	"strings"

	"github.com/google/uuid"
)

// ScopeController orchestrates one activation of a stub chain for a dotted
// path: analyze the existing prefix, build placeholder stubs for the missing
// suffix, install them into the registry, and wire them into the last
// existing ancestor. Deactivation reverses all of it, bit for bit.
//
// The controller is a two-state machine, IDLE and ACTIVE. Activation that
// finds nothing to stub stays IDLE. Deactivating from IDLE is a no-op.
// Activation state lives only for the activation's duration; repeated
// activations of the same controller start fresh.
type ScopeController struct {
	registry Registry
	segments []string

	active       bool
	activationID string
	knownPrefix  string
	chain        []*NamespaceStub
	ancestor     Namespace
	snapshot     BaseSnapshot
}

// NewScopeController validates the path and returns an IDLE controller bound
// to the given registry handle.
func NewScopeController(registry Registry, path string) (*ScopeController, error) {
	segments, err := SplitPath(path)
	if err != nil {
		return nil, err
	}

	return &ScopeController{registry: registry, segments: segments}, nil
}

// Active reports whether the controller currently holds installed stubs.
func (c *ScopeController) Active() bool {
	return c.active
}

// ActivationID returns the unique ID of the live activation, or "" when
// IDLE. Useful when correlating leaked stubs back to their activation site.
func (c *ScopeController) ActivationID() string {
	return c.activationID
}

// Activate installs placeholder stubs for every missing level of the path.
//
// If the whole path already resolves there is nothing to stub: the registry
// is untouched, the controller stays IDLE, and Activate returns nil. A
// *ConflictError means the registry changed between analysis and install;
// everything installed so far is rolled back before returning.
func (c *ScopeController) Activate() error {
	if c.active {
		return ErrAlreadyActive
	}

	known := ExistingPrefixLen(c.segments, c.registry)
	remaining := c.segments[known:]

	if len(remaining) == 0 {
		// true no-op: stay IDLE
		return nil
	}

	c.knownPrefix = strings.Join(c.segments[:known], ".")
	c.chain = BuildChain(remaining)
	c.ancestor = c.lookupAncestor()
	c.snapshot = Capture(c.ancestor)

	err := Attach(c.ancestor, remaining[0], c.chain[0])
	if err != nil {
		c.reset()
		return err
	}

	err = Install(c.registry, c.chain, c.knownPrefix)
	if err != nil {
		Restore(c.ancestor, c.snapshot, remaining[0])
		c.reset()

		return err
	}

	c.active = true
	c.activationID = uuid.NewString()

	return nil
}

// Deactivate removes the installed chain and restores the ancestor to its
// snapshotted state. It is a no-op on an IDLE controller, so calling it from
// a defer is always safe.
func (c *ScopeController) Deactivate() {
	if !c.active {
		return
	}

	Uninstall(c.registry, c.chain)
	Restore(c.ancestor, c.snapshot, c.chain[0].name)
	c.reset()
}

// lookupAncestor fetches the last existing module on the path, if there is
// one and it exposes the Namespace capability. Anything else (no prefix, or
// an opaque registry value) means no ancestor to mutate.
func (c *ScopeController) lookupAncestor() Namespace {
	if c.knownPrefix == "" {
		return nil
	}

	module, ok := c.registry.Get(c.knownPrefix)
	if !ok {
		return nil
	}

	namespace, ok := module.(Namespace)
	if !ok {
		return nil
	}

	return namespace
}

// reset discards all per-activation state.
func (c *ScopeController) reset() {
	c.active = false
	c.activationID = ""
	c.knownPrefix = ""
	c.chain = nil
	c.ancestor = nil
	c.snapshot = BaseSnapshot{}
}
