package core

import "slices"

// BaseSnapshot captures the pre-activation state of the last existing
// ancestor: whether it carried an export list at all, and a copy of the list
// if so. A present-but-empty list and an absent list restore differently, so
// the distinction is explicit.
type BaseSnapshot struct {
	HadExports bool
	ExportList []string
}

// Capture records the ancestor's export-list state. A nil ancestor (the
// whole path is new, or the registry entry exposes no Namespace capability)
// yields the zero snapshot.
func Capture(ancestor Namespace) BaseSnapshot {
	if ancestor == nil {
		return BaseSnapshot{}
	}

	exports, ok := ancestor.Exports()
	if !ok {
		return BaseSnapshot{}
	}

	return BaseSnapshot{HadExports: true, ExportList: slices.Clone(exports)}
}

// Attach makes the new chain reachable from the ancestor: the outermost
// stub's name is appended to the ancestor's export list (created if absent)
// and set as a child reference. A nil ancestor is a no-op - the chain is
// then reachable only through the registry.
//
// The analyzer guarantees the child name cannot already exist on the
// ancestor; that is asserted, not assumed.
func Attach(ancestor Namespace, name string, outer *NamespaceStub) error {
	if ancestor == nil {
		return nil
	}

	if _, ok := ancestor.Child(name); ok {
		return &ConflictError{Key: name}
	}

	exports, _ := ancestor.Exports()
	ancestor.SetExports(append(slices.Clone(exports), name))
	ancestor.SetChild(name, outer)

	return nil
}

// Restore resets the ancestor to its captured state, value for value: the
// export list is put back exactly as snapshotted (removed entirely if it was
// absent before, never left as an empty list), and the attached child
// reference is removed if present. A nil ancestor is a no-op.
func Restore(ancestor Namespace, snapshot BaseSnapshot, name string) {
	if ancestor == nil {
		return
	}

	if snapshot.HadExports {
		ancestor.SetExports(snapshot.ExportList)
	} else {
		ancestor.ClearExports()
	}

	if _, ok := ancestor.Child(name); ok {
		ancestor.RemoveChild(name)
	}
}
