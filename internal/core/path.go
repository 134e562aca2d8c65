package core

import (
	"fmt"
	"strings"
)

// SplitPath splits a dotted path into its segments, rejecting empty paths
// and empty segments ("a..b", ".a", "a.").
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("dotted path must not be empty")
	}

	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("dotted path %q contains an empty segment", path)
		}
	}

	return segments, nil
}

// ExistingPrefixLen walks the cumulative prefixes of segments ("a", "a.b",
// "a.b.c", ...) and returns how many consecutive leading prefixes are already
// registry keys. It stops at the first missing prefix and has no side
// effects.
//
// Membership is always tested with the full cumulative dotted string, never a
// bare segment name.
func ExistingPrefixLen(segments []string, registry Registry) int {
	known := 0
	for known < len(segments) && registry.Exists(strings.Join(segments[:known+1], ".")) {
		known++
	}

	return known
}

// joinKey builds the full registry key for the segment at index i of the
// remaining chain, given the already-existing prefix (empty when the whole
// path is new).
func joinKey(knownPrefix string, remaining []string, i int) string {
	key := strings.Join(remaining[:i+1], ".")
	if knownPrefix != "" {
		key = knownPrefix + "." + key
	}

	return key
}
