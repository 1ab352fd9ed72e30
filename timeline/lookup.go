package timeline

import (
	"fmt"
	"sort"
)

// FindActive returns the first effect in the collection whose time
// window contains t, or nil when none does. Window boundaries are
// inclusive on both ends, so t == Start and t == Start+Duration both
// match. With overlapping windows the first match in slice order wins;
// [Validate] rejects overlaps, so that case only arises for collections
// that skipped validation.
func FindActive(t float64, effects []Effect) *Effect {
	for i := range effects {
		if effects[i].Contains(t) {
			return &effects[i]
		}
	}
	return nil
}

// Validate checks every effect's data invariants and rejects properly
// overlapping windows. Two effects may share a single boundary instant
// (one ends exactly where the next starts); at that instant the first
// one in slice order renders.
func Validate(effects []Effect) error {
	for i := range effects {
		if err := effects[i].Validate(); err != nil {
			return err
		}
	}

	order := make([]int, len(effects))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return effects[order[a]].Start < effects[order[b]].Start
	})
	for i := 0; i+1 < len(order); i++ {
		prev, next := &effects[order[i]], &effects[order[i+1]]
		if prev.End() > next.Start {
			return fmt.Errorf(
				"effects %q and %q overlap: [%g, %g] intersects [%g, %g]",
				prev.ID, next.ID, prev.Start, prev.End(), next.Start, next.End(),
			)
		}
	}
	return nil
}
