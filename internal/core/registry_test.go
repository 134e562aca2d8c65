package core_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/surrogate/internal/core"
)

// TestMapRegistry_BasicOperations verifies the four registry operations over
// full dotted keys.
func TestMapRegistry_BasicOperations(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reg := core.NewMapRegistry()

	g.Expect(reg.Exists("my.module")).To(BeFalse())

	reg.Set("my.module", "value")
	g.Expect(reg.Exists("my.module")).To(BeTrue())

	got, ok := reg.Get("my.module")
	g.Expect(ok).To(BeTrue())
	g.Expect(got).To(Equal("value"))

	reg.Delete("my.module")
	g.Expect(reg.Exists("my.module")).To(BeFalse())

	// deleting again is a no-op
	reg.Delete("my.module")
}

// TestMapRegistry_KeysAreSorted verifies snapshots come back in a stable
// order.
func TestMapRegistry_KeysAreSorted(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reg := core.NewMapRegistry()
	reg.Set("z", 1)
	reg.Set("a.b", 2)
	reg.Set("a", 3)

	g.Expect(reg.Keys()).To(Equal([]string{"a", "a.b", "z"}))
}

// TestRegistryResolver_NotFound verifies the registry-backed resolver
// surfaces the ErrNotFound sentinel for absent names.
func TestRegistryResolver_NotFound(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	resolver := core.RegistryResolver{Registry: core.NewMapRegistry()}

	_, err := resolver.Resolve("missing.module")
	g.Expect(err).To(MatchError(core.ErrNotFound))
}

// TestRegistryResolver_Found verifies a present name resolves to its stored
// object.
func TestRegistryResolver_Found(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reg := core.NewMapRegistry()
	module := &struct{ x int }{x: 1}
	reg.Set("real.module", module)

	resolver := core.RegistryResolver{Registry: reg}

	got, err := resolver.Resolve("real.module")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(BeIdenticalTo(module))
}
