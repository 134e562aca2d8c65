package core

import (
	"strings"

	"github.com/akedrou/textdiff"
)

// StateDiff renders a unified diff between two registry key snapshots (as
// produced by MapRegistry.Keys). Empty output means the states match. Tests
// use it to assert round-trips; it is also handy for tracking down stubs
// leaked by ImportOrStub.
func StateDiff(label string, before, after []string) string {
	return textdiff.Unified(
		label+" (before)",
		label+" (after)",
		joinKeys(before),
		joinKeys(after),
	)
}

func joinKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	return strings.Join(keys, "\n") + "\n"
}
