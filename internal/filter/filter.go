// Package filter applies the duration acceptance bounds and the
// expected-count assertion to the catalog. Filtering never reorders: the
// kept sequence is a subsequence of the input, which downstream numbering
// depends on.
package filter

import (
	"fmt"

	"github.com/backmassage/renamer/internal/catalog"
)

// Keep returns the entries with Duration >= min, in input order.
func Keep(entries []catalog.Entry, min float64) []catalog.Entry {
	kept := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Duration >= min {
			kept = append(kept, e)
		}
	}
	return kept
}

// KeepBelow returns the entries with Duration <= max, in input order.
// Applied only when long-outlier exclusion is enabled.
func KeepBelow(entries []catalog.Entry, max float64) []catalog.Entry {
	kept := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Duration <= max {
			kept = append(kept, e)
		}
	}
	return kept
}

// CountMismatchError reports a failed --expect assertion. It is fatal: the
// run must stop before any plan is synthesized.
type CountMismatchError struct {
	Expected int
	Actual   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("expected %d episodes but found %d", e.Expected, e.Actual)
}

// CheckCount verifies the kept count against expect. expect < 0 means no
// assertion was requested.
func CheckCount(kept []catalog.Entry, expect int) error {
	if expect < 0 {
		return nil
	}
	if len(kept) != expect {
		return &CountMismatchError{Expected: expect, Actual: len(kept)}
	}
	return nil
}
