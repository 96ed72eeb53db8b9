package search

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// Linear records a left-to-right scan of seq for target.
// One step is emitted per probed index; a miss adds a final not-found step.
func Linear(seq []float64, target float64) *trace.Trace {
	rec := trace.NewRecorder("linear-search", trace.KindSearch, seq)
	for i, v := range seq {
		matched := v == target
		info := &trace.SearchInfo{
			Target:  target,
			Probe:   i,
			Left:    -1,
			Right:   -1,
			Mid:     -1,
			Matched: matched,
		}
		if matched {
			info.Found, info.Done = true, true
			rec.Record(trace.Step{
				Action:      trace.ActionFound,
				Array:       seq,
				Description: fmt.Sprintf("Found %g at index %d", target, i),
				Search:      info,
			})

			return rec.Finish(seq)
		}
		rec.Record(trace.Step{
			Action:      trace.ActionProbe,
			Array:       seq,
			Description: fmt.Sprintf("Checking index %d: %g is not %g", i, v, target),
			Search:      info,
		})
	}

	// exhausted every index
	rec.Record(trace.Step{
		Action:      trace.ActionNotFound,
		Array:       seq,
		Description: fmt.Sprintf("%g not found in the array", target),
		Search: &trace.SearchInfo{
			Target: target, Probe: -1, Left: -1, Right: -1, Mid: -1, Done: true,
		},
	})

	return rec.Finish(seq)
}
