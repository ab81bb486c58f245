// Package testutils provides shared helpers for inkline tests.
package testutils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RequireEqualText fails the test when actual differs from expected,
// printing a character-level diff. Escape sequences stay visible as
// quoted text so off-by-one ANSI mistakes are easy to spot.
func RequireEqualText(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)

	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "- %q\n", diff.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "+ %q\n", diff.Text)
		case diffmatchpatch.DiffEqual:
			if len(diff.Text) > 50 {
				fmt.Fprintf(&b, "  %q...\n", diff.Text[:47])
			} else {
				fmt.Fprintf(&b, "  %q\n", diff.Text)
			}
		}
	}

	t.Fatalf("rendered output mismatch:\n%s", b.String())
}
