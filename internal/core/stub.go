package core

import "slices"

// Namespace is the capability an ancestor must expose for the adapter to
// wire a new stub chain into it: an ordered public-export list plus named
// child references. It replaces open-ended attribute access with explicit
// operations.
type Namespace interface {
	// Exports returns the public-export list and whether one exists at all.
	// "Had no list" and "had an empty list" are distinct states.
	Exports() ([]string, bool)
	SetExports(names []string)
	ClearExports()

	// Child returns the named child reference, if any.
	Child(name string) (any, bool)
	SetChild(name string, ref any)
	RemoveChild(name string)
}

// NamespaceStub is a synthetic placeholder standing in for a real,
// not-yet-resolvable module. Each stub owns at most one child stub - a chain
// is a simple path, never a tree, and back edges are never created.
type NamespaceStub struct {
	name        string
	resolvedKey string
	pkgRoot     bool

	child *NamespaceStub

	hasExports bool
	exports    []string

	// attached holds children wired in after construction, e.g. the outer
	// stub of a nested activation whose ancestor is this stub.
	attached map[string]any
}

// NewNamespaceStub returns a stub with the given segment name, an empty but
// present export list, and no child.
func NewNamespaceStub(name string) *NamespaceStub {
	return &NamespaceStub{
		name:       name,
		hasExports: true,
		exports:    []string{},
		attached:   map[string]any{},
	}
}

// Name returns the stub's own path segment.
func (s *NamespaceStub) Name() string {
	return s.name
}

// ResolvedKey returns the full dotted registry key, set at install time.
func (s *NamespaceStub) ResolvedKey() string {
	return s.resolvedKey
}

// PackageRoot reports whether this stub is the outermost of its chain and
// stands in for a package-style container.
func (s *NamespaceStub) PackageRoot() bool {
	return s.pkgRoot
}

// Exports returns a copy of the export list and whether one exists.
func (s *NamespaceStub) Exports() ([]string, bool) {
	if !s.hasExports {
		return nil, false
	}

	return slices.Clone(s.exports), true
}

// SetExports replaces the export list.
func (s *NamespaceStub) SetExports(names []string) {
	s.hasExports = true
	s.exports = slices.Clone(names)
}

// ClearExports removes the export list entirely, distinguishable from
// setting it empty.
func (s *NamespaceStub) ClearExports() {
	s.hasExports = false
	s.exports = nil
}

// Child returns the named child: the owned chain child if the name matches,
// otherwise any reference attached after construction.
func (s *NamespaceStub) Child(name string) (any, bool) {
	if s.child != nil && s.child.name == name {
		return s.child, true
	}

	ref, ok := s.attached[name]

	return ref, ok
}

// SetChild attaches a named reference.
func (s *NamespaceStub) SetChild(name string, ref any) {
	s.attached[name] = ref
}

// RemoveChild detaches a named reference. The owned chain child is part of
// the stub's identity and is not removable this way.
func (s *NamespaceStub) RemoveChild(name string) {
	delete(s.attached, name)
}

// BuildChain constructs the placeholder chain for the missing path suffix.
// Construction runs innermost-first: the leaf gets an empty export list,
// then each enclosing stub takes the previously built one as its single
// child and exports exactly that child's name. The returned slice is
// reversed to outermost-first, ready for installation, with the outermost
// stub flagged as a package root.
//
// len(chain) == len(remaining); an empty remaining yields an empty chain.
func BuildChain(remaining []string) []*NamespaceStub {
	if len(remaining) == 0 {
		return nil
	}

	leaf := NewNamespaceStub(remaining[len(remaining)-1])
	chain := []*NamespaceStub{leaf}

	for i := len(remaining) - 2; i >= 0; i-- {
		inner := chain[len(chain)-1]
		stub := NewNamespaceStub(remaining[i])
		stub.child = inner
		stub.exports = []string{inner.name}
		chain = append(chain, stub)
	}

	slices.Reverse(chain)
	chain[0].pkgRoot = true

	return chain
}
