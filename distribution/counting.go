package distribution

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// Counting records counting sort of seq. Every value must be an integer in
// [0, MaxCountingValue]; validation guarantees it.
func Counting(seq []float64) *trace.Trace {
	if len(seq) == 0 {
		panic(errors.AssertionFailedf("distribution: counting sort of empty input"))
	}
	for i, v := range seq {
		if v < 0 || v > MaxCountingValue || v != math.Trunc(v) {
			panic(errors.AssertionFailedf("distribution: element %d (%g) is not an integer in [0, %d]",
				i, v, MaxCountingValue))
		}
	}

	rec := trace.NewRecorder("counting-sort", trace.KindDistribution, seq)
	record := func(action trace.Action, arr []float64, counts []int, out []float64, desc string) {
		rec.Record(trace.Step{
			Action:       action,
			Array:        arr,
			Description:  desc,
			Distribution: &trace.DistributionInfo{Counts: counts, Output: out},
		})
	}

	// 1. Allocate the zero-filled table
	counts := make([]int, int(slices.Max(seq))+1)
	record(trace.ActionAllocate, seq, counts, nil, "Initialize count array with zeros")

	// 2. Tally occurrences
	for _, v := range seq {
		counts[int(v)]++
	}
	record(trace.ActionTally, seq, counts, nil, "Count occurrences of each number")

	// 3. Prefix sums
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}
	record(trace.ActionPrefixSum, seq, counts, nil, "Calculate cumulative counts")

	// 4. Place right to left on a scratch copy so the step keeps the
	// cumulative table it was built from
	cum := slices.Clone(counts)
	out := make([]float64, len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		v := int(seq[i])
		out[cum[v]-1] = seq[i]
		cum[v]--
	}
	record(trace.ActionBuildOutput, out, counts, out, "Build sorted array using cumulative counts")

	return rec.Finish(out)
}
