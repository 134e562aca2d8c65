package core_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/toejough/surrogate/internal/core"
)

// drawSegments draws a dotted path as 1-5 lowercase segments.
func drawSegments(rt *rapid.T, label string) []string {
	return rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,6}`), 1, 5).Draw(rt, label)
}

// TestRoundTrip_Rapid verifies the round-trip property over randomized paths
// and randomized pre-existing prefixes: activate-then-deactivate leaves
// registry membership and object identity exactly as before.
func TestRoundTrip_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		segments := drawSegments(rt, "segments")
		prefixCount := rapid.IntRange(0, len(segments)).Draw(rt, "prefixCount")
		stubAncestors := rapid.Bool().Draw(rt, "stubAncestors")

		reg := core.NewMapRegistry()
		reg.Set("unrelated.bystander", "untouchable")

		for i := 0; i < prefixCount; i++ {
			key := strings.Join(segments[:i+1], ".")
			if stubAncestors {
				reg.Set(key, core.NewNamespaceStub(segments[i]))
			} else {
				reg.Set(key, "opaque:"+key)
			}
		}

		beforeKeys := reg.Keys()
		beforeValues := map[string]any{}

		for _, key := range beforeKeys {
			beforeValues[key], _ = reg.Get(key)
		}

		controller, err := core.NewScopeController(reg, strings.Join(segments, "."))
		if err != nil {
			rt.Fatalf("unexpected path error: %v", err)
		}

		if err := controller.Activate(); err != nil {
			rt.Fatalf("activation failed: %v", err)
		}

		controller.Deactivate()

		if diff := core.StateDiff("registry", beforeKeys, reg.Keys()); diff != "" {
			rt.Fatalf("registry membership changed across round-trip:\n%s", diff)
		}

		for key, value := range beforeValues {
			after, ok := reg.Get(key)
			if !ok {
				rt.Fatalf("key %q vanished", key)
			}

			if after != value {
				rt.Fatalf("key %q lost its identity", key)
			}
		}
	})
}

// TestPrefixPreservation_Rapid verifies activation only ever adds keys
// beyond the existing prefix and never touches the entries at or before it.
func TestPrefixPreservation_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		segments := drawSegments(rt, "segments")
		prefixCount := rapid.IntRange(0, len(segments)).Draw(rt, "prefixCount")

		reg := core.NewMapRegistry()
		prefixValues := map[string]any{}

		for i := 0; i < prefixCount; i++ {
			key := strings.Join(segments[:i+1], ".")
			value := core.NewNamespaceStub(segments[i])
			reg.Set(key, value)
			prefixValues[key] = value
		}

		controller, err := core.NewScopeController(reg, strings.Join(segments, "."))
		if err != nil {
			rt.Fatalf("unexpected path error: %v", err)
		}

		if err := controller.Activate(); err != nil {
			rt.Fatalf("activation failed: %v", err)
		}

		for key, value := range prefixValues {
			after, ok := reg.Get(key)
			if !ok || after != value {
				rt.Fatalf("prefix entry %q was altered by activation", key)
			}
		}

		// every cumulative prefix of the path must now resolve
		for i := range segments {
			key := strings.Join(segments[:i+1], ".")
			if !reg.Exists(key) {
				rt.Fatalf("prefix %q missing after activation", key)
			}
		}

		controller.Deactivate()
	})
}

// TestStackDiscipline_Rapid verifies nested activation on shared prefixes:
// activating base then base+extension and deactivating in reverse order ends
// exactly where we started.
func TestStackDiscipline_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		base := drawSegments(rt, "base")
		extension := drawSegments(rt, "extension")

		basePath := strings.Join(base, ".")
		fullPath := basePath + "." + strings.Join(extension, ".")

		reg := core.NewMapRegistry()
		beforeKeys := reg.Keys()

		outer, err := core.NewScopeController(reg, basePath)
		if err != nil {
			rt.Fatalf("unexpected path error: %v", err)
		}

		inner, err := core.NewScopeController(reg, fullPath)
		if err != nil {
			rt.Fatalf("unexpected path error: %v", err)
		}

		if err := outer.Activate(); err != nil {
			rt.Fatalf("outer activation failed: %v", err)
		}

		if err := inner.Activate(); err != nil {
			rt.Fatalf("inner activation failed: %v", err)
		}

		inner.Deactivate()
		outer.Deactivate()

		if diff := core.StateDiff("registry", beforeKeys, reg.Keys()); diff != "" {
			rt.Fatalf("nested round-trip leaked state:\n%s", diff)
		}
	})
}
