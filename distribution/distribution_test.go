package distribution_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/distribution"
	"github.com/katalvlaran/algotrace/trace"
)

func TestCounting_Phases(t *testing.T) {
	in := []float64{4, 2, 8, 3, 1, 9, 6, 5, 7, 2}
	tr := distribution.Counting(in)
	require.Equal(t, 4, tr.Len())

	steps := tr.Steps()
	assert.Equal(t, []trace.Action{
		trace.ActionAllocate, trace.ActionTally, trace.ActionPrefixSum, trace.ActionBuildOutput,
	}, []trace.Action{steps[0].Action, steps[1].Action, steps[2].Action, steps[3].Action})

	// allocate: zero table sized max+1
	assert.Len(t, steps[0].Distribution.Counts, 10)
	for _, c := range steps[0].Distribution.Counts {
		assert.Zero(t, c)
	}

	// tally
	assert.Equal(t, 2, steps[1].Distribution.Counts[2])
	assert.Equal(t, 0, steps[1].Distribution.Counts[0])

	// prefix-sum at max equals n
	prefix := steps[2].Distribution.Counts
	assert.Equal(t, len(in), prefix[len(prefix)-1])
	assert.True(t, slices.IsSorted(prefix))

	// output
	out := steps[3].Distribution.Output
	want := slices.Clone(in)
	slices.Sort(want)
	assert.Equal(t, want, out)
	assert.Equal(t, want, steps[3].Array)
	assert.Equal(t, prefix, steps[3].Distribution.Counts, "build step keeps the cumulative table")
	assert.Nil(t, steps[2].Distribution.Output)
}

func TestCounting_SingleZero(t *testing.T) {
	tr := distribution.Counting([]float64{0})
	assert.Equal(t, []int{1}, tr.Steps()[2].Distribution.Counts)
	assert.Equal(t, []float64{0}, tr.Final())
}

func TestCounting_RejectsBadInput(t *testing.T) {
	assert.Panics(t, func() { distribution.Counting([]float64{1, -1}) })
	assert.Panics(t, func() { distribution.Counting([]float64{1.5}) })
	assert.Panics(t, func() { distribution.Counting(nil) })
	assert.Panics(t, func() { distribution.Counting([]float64{distribution.MaxCountingValue + 1}) })
	assert.NotPanics(t, func() { distribution.Counting([]float64{distribution.MaxCountingValue, 0}) })
}

func TestBucket_Phases(t *testing.T) {
	in := []float64{0.78, 0.17, 0.39, 0.26, 0.72, 0.94, 0.21, 0.12, 0.23, 0.68}
	tr, err := distribution.Bucket(in)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())

	steps := tr.Steps()
	dist := steps[0].Distribution.Buckets
	require.Len(t, dist, distribution.DefaultBucketCount)
	assert.Equal(t, []float64{0.17, 0.12}, dist[1], "arrival order before sorting")
	assert.Equal(t, []float64{0.26, 0.21, 0.23}, dist[2])
	assert.Empty(t, dist[0])

	sorted := steps[1].Distribution.Buckets
	assert.Equal(t, []float64{0.12, 0.17}, sorted[1])
	assert.Equal(t, []float64{0.21, 0.23, 0.26}, sorted[2])
	for _, b := range sorted {
		assert.True(t, slices.IsSorted(b))
	}

	want := slices.Clone(in)
	slices.Sort(want)
	assert.Equal(t, want, steps[2].Distribution.Output)
	assert.Equal(t, want, tr.Final())
	// the distribute snapshot is not disturbed by the later in-place sort
	assert.Equal(t, []float64{0.17, 0.12}, tr.First().Distribution.Buckets[1])
}

func TestBucket_UpperBoundClamped(t *testing.T) {
	assert.Equal(t, 9, distribution.BucketIndex(1, 10))
	assert.Equal(t, 0, distribution.BucketIndex(0, 10))
	assert.Equal(t, 4, distribution.BucketIndex(0.49, 10))

	tr, err := distribution.Bucket([]float64{1, 0, 0.5}, distribution.WithBucketCount(4))
	require.NoError(t, err)
	b := tr.First().Distribution.Buckets
	require.Len(t, b, 4)
	assert.Equal(t, []float64{1}, b[3])
	assert.Equal(t, []float64{0.5}, b[2])
	assert.Equal(t, []float64{0, 0.5, 1}, tr.Final())
}

func TestBucket_OptionViolation(t *testing.T) {
	_, err := distribution.Bucket([]float64{0.1}, distribution.WithBucketCount(0))
	assert.ErrorIs(t, err, distribution.ErrOptionViolation)
}

func TestBucket_OutOfDomainPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = distribution.Bucket([]float64{1.5}) })
}
