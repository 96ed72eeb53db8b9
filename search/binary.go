package search

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// Binary records a bounded binary search of sorted seq for target.
//
// Each probe step carries Left, Right, Mid and Matched. A hit makes the probe
// itself terminal (Found). A miss ends, once Left > Right, with a step whose
// Mid is -1.
//
// seq must be non-decreasing; validate.Constraints.RequireSorted guarantees it.
func Binary(seq []float64, target float64) *trace.Trace {
	if !slices.IsSorted(seq) {
		panic(errors.AssertionFailedf("search: binary search over unsorted input %v", seq))
	}

	rec := trace.NewRecorder("binary-search", trace.KindSearch, seq)
	left, right := 0, len(seq)-1
	for left <= right {
		mid := (left + right) / 2 // floor: lower middle on even ranges
		info := &trace.SearchInfo{
			Target:  target,
			Probe:   -1,
			Left:    left,
			Right:   right,
			Mid:     mid,
			Matched: seq[mid] == target,
		}

		switch {
		case seq[mid] == target:
			info.Found, info.Done = true, true
			rec.Record(trace.Step{
				Action: trace.ActionFound,
				Array:  seq,
				Description: fmt.Sprintf("Searching between indices %d and %d. Middle index %d holds %g: found target.",
					left, right, mid, seq[mid]),
				Search: info,
			})

			return rec.Finish(seq)
		case seq[mid] < target:
			rec.Record(trace.Step{
				Action: trace.ActionProbe,
				Array:  seq,
				Description: fmt.Sprintf("Searching between indices %d and %d. %g is less than %g, searching right half.",
					left, right, seq[mid], target),
				Search: info,
			})
			left = mid + 1
		default:
			rec.Record(trace.Step{
				Action: trace.ActionProbe,
				Array:  seq,
				Description: fmt.Sprintf("Searching between indices %d and %d. %g is greater than %g, searching left half.",
					left, right, seq[mid], target),
				Search: info,
			})
			right = mid - 1
		}
	}

	rec.Record(trace.Step{
		Action:      trace.ActionNotFound,
		Array:       seq,
		Description: fmt.Sprintf("Target %g not found in the array.", target),
		Search: &trace.SearchInfo{
			Target: target, Probe: -1, Left: left, Right: right, Mid: -1, Done: true,
		},
	})

	return rec.Finish(seq)
}
