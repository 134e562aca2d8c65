package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is the registry's own signal that a name has neither a real
// entry nor an active stub. Resolvers return it (possibly wrapped); the core
// never raises or suppresses it on its own.
var ErrNotFound = errors.New("name not found")

// ErrAlreadyActive reports activation of a controller that is already ACTIVE.
// The original design silently clobbered its own bookkeeping here; surfacing
// the misuse is deliberate.
var ErrAlreadyActive = errors.New("controller already active")

// ConflictError reports that the path analysis and the registry disagree
// about which keys exist. It signals an internal-consistency fault, not a
// user error: the analyzer said a key was missing, but installation (or
// attachment) found it present.
type ConflictError struct {
	Key string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("registry key %q already present", e.Key)
}
