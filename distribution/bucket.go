package distribution

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// Bucket records bucket sort of seq, whose values must lie in [0, 1].
// It returns ErrOptionViolation for invalid options.
func Bucket(seq []float64, opts ...Option) (*trace.Trace, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for i, v := range seq {
		if v < 0 || v > 1 {
			panic(errors.AssertionFailedf("distribution: element %d (%g) outside [0, 1]", i, v))
		}
	}

	k := o.BucketCount
	rec := trace.NewRecorder("bucket-sort", trace.KindDistribution, seq)
	record := func(action trace.Action, arr []float64, buckets [][]float64, out []float64, desc string) {
		rec.Record(trace.Step{
			Action:       action,
			Array:        arr,
			Description:  desc,
			Distribution: &trace.DistributionInfo{Buckets: buckets, Output: out},
		})
	}

	// 1. Distribute
	buckets := make([][]float64, k)
	for _, v := range seq {
		b := BucketIndex(v, k)
		buckets[b] = append(buckets[b], v)
	}
	record(trace.ActionDistribute, seq, buckets,
		nil, fmt.Sprintf("Distribute elements into %d buckets based on their value ranges", k))

	// 2. Sort each bucket
	for _, b := range buckets {
		insertionSort(b)
	}
	record(trace.ActionSortBuckets, seq, buckets, nil, "Sort elements within each bucket")

	// 3. Concatenate
	out := make([]float64, 0, len(seq))
	for _, b := range buckets {
		out = append(out, b...)
	}
	record(trace.ActionConcatenate, out, buckets, out, "Concatenate all buckets to get the final sorted array")

	return rec.Finish(out), nil
}

// BucketIndex maps v in [0, 1] to one of k buckets; v == 1 lands in the last.
func BucketIndex(v float64, k int) int {
	return min(int(math.Floor(v*float64(k))), k-1)
}

// insertionSort sorts b in place, keeping equal values in arrival order.
func insertionSort(b []float64) {
	for i := 1; i < len(b); i++ {
		key := b[i]
		j := i - 1
		for j >= 0 && b[j] > key {
			b[j+1] = b[j]
			j--
		}
		b[j+1] = key
	}
}
