package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/config"
	"github.com/katalvlaran/algotrace/engine"
	"github.com/katalvlaran/algotrace/trace"
	"github.com/katalvlaran/algotrace/traverse"
	"github.com/katalvlaran/algotrace/validate"
)

func TestKinds_RoundTripNames(t *testing.T) {
	kinds := engine.Kinds()
	require.Len(t, kinds, 11)
	for _, k := range kinds {
		got, err := engine.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := engine.ParseKind("bogo-sort")
	assert.ErrorIs(t, err, engine.ErrUnknownKind)
	assert.Equal(t, "unknown", engine.AlgorithmKind(99).String())
}

func TestKinds_SequenceKindsHaveCatalogEntries(t *testing.T) {
	c := config.Default()
	for _, k := range engine.Kinds() {
		_, ok := c.Lookup(k.String())
		assert.Equal(t, k.IsSequence(), ok, k.String())
	}
}

func TestValidateInput(t *testing.T) {
	seq, err := engine.ValidateInput("5,3,1", engine.BubbleSort)
	require.NoError(t, err)
	assert.Equal(t, validate.Sequence{5, 3, 1}, seq)

	_, err = engine.ValidateInput("1,2,abc", engine.BubbleSort)
	assert.ErrorIs(t, err, validate.ErrParse)
	_, err = engine.ValidateInput("", engine.LinearSearch)
	assert.ErrorIs(t, err, validate.ErrEmptyInput)
	_, err = engine.ValidateInput("5,3,9", engine.BinarySearch)
	assert.ErrorIs(t, err, validate.ErrOrdering)
	_, err = engine.ValidateInput("1,2.5", engine.CountingSort)
	assert.ErrorIs(t, err, validate.ErrRange)

	_, err = engine.ValidateInput("3", engine.Factorial)
	assert.ErrorIs(t, err, engine.ErrNotApplicable)
	_, err = engine.ValidateInput("3", engine.AlgorithmKind(-1))
	assert.ErrorIs(t, err, engine.ErrUnknownKind)
}

func TestRun_AllKinds(t *testing.T) {
	g, err := traverse.Parse("A-B B-C")
	require.NoError(t, err)

	seq := validate.Sequence{3, 1, 2}
	inputs := map[engine.AlgorithmKind]engine.Input{
		engine.LinearSearch:  {Sequence: seq, Target: 2, HasTarget: true},
		engine.BinarySearch:  {Sequence: validate.Sequence{1, 2, 3}, Target: 2, HasTarget: true},
		engine.BubbleSort:    {Sequence: seq},
		engine.InsertionSort: {Sequence: seq},
		engine.QuickSort:     {Sequence: seq},
		engine.MergeSort:     {Sequence: seq},
		engine.CountingSort:  {Sequence: seq},
		engine.BucketSort:    {Sequence: validate.Sequence{0.3, 0.1, 0.2}},
		engine.Factorial:     {N: 3},
		engine.BreadthFirst:  {Graph: g, Start: "A"},
		engine.DepthFirst:    {Graph: g, Start: "A"},
	}
	require.Len(t, inputs, len(engine.Kinds()))

	for k, in := range inputs {
		t.Run(k.String(), func(t *testing.T) {
			tr, err := engine.Run(k, in)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, tr.Len(), 1)
			if k.IsSequence() && !k.IsSearch() {
				assert.Equal(t, trace.ActionSorted, sortedOrLast(tr))
				assert.True(t, isSorted(tr.Final()), "%v", tr.Final())
			}
		})
	}
}

// sortedOrLast maps the distribution terminal actions onto ActionSorted.
func sortedOrLast(tr *trace.Trace) trace.Action {
	switch a := tr.Last().Action; a {
	case trace.ActionBuildOutput, trace.ActionConcatenate, trace.ActionMerge:
		return trace.ActionSorted
	default:
		return a
	}
}

func isSorted(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return false
		}
	}

	return len(v) > 0
}

func TestRun_RevalidatesInput(t *testing.T) {
	// input that never went through ValidateInput
	_, err := engine.Run(engine.BinarySearch, engine.Input{Sequence: validate.Sequence{3, 1}, HasTarget: true})
	assert.ErrorIs(t, err, validate.ErrOrdering)

	_, err = engine.Run(engine.CountingSort, engine.Input{Sequence: validate.Sequence{-1}})
	assert.ErrorIs(t, err, validate.ErrRange)

	_, err = engine.Run(engine.LinearSearch, engine.Input{Sequence: validate.Sequence{1}})
	assert.ErrorIs(t, err, engine.ErrMissingTarget)

	_, err = engine.Run(engine.Factorial, engine.Input{N: 0})
	assert.ErrorIs(t, err, validate.ErrRange)

	_, err = engine.Run(engine.DepthFirst, engine.Input{})
	assert.ErrorIs(t, err, engine.ErrMissingGraph)

	_, err = engine.Run(engine.AlgorithmKind(42), engine.Input{})
	assert.ErrorIs(t, err, engine.ErrUnknownKind)
}

func TestRun_CatalogCannotWidenTracerPreconditions(t *testing.T) {
	c := config.Default()
	c.Algorithms[config.BinarySearch] = config.Entry{MinSize: 1, MaxSize: 20}
	e, err := engine.New(engine.WithCatalog(c))
	require.NoError(t, err)

	_, err = e.ValidateInput("3,1,2", engine.BinarySearch)
	assert.ErrorIs(t, err, validate.ErrOrdering)
}

func TestRun_CountingRangeSurvivesPermissiveCatalog(t *testing.T) {
	// an entry without min/max drops the default value range
	c, err := config.Parse([]byte("algorithms:\n  counting-sort: {min_size: 1, max_size: 15, integers: true}\n"))
	require.NoError(t, err)
	require.Nil(t, c.Algorithms[config.CountingSort].Max)
	e, err := engine.New(engine.WithCatalog(c))
	require.NoError(t, err)

	_, err = e.ValidateInput("1e15", engine.CountingSort)
	assert.ErrorIs(t, err, validate.ErrRange)
	_, err = e.ValidateInput("1000", engine.CountingSort)
	assert.ErrorIs(t, err, validate.ErrRange)

	assert.NotPanics(t, func() {
		_, err = e.Run(engine.CountingSort, engine.Input{Sequence: validate.Sequence{1e15}})
	})
	assert.ErrorIs(t, err, validate.ErrRange)

	tr, err := e.Run(engine.CountingSort, engine.Input{Sequence: validate.Sequence{999, 0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 999}, tr.Final())
}

func TestNew_RejectsInvalidCatalog(t *testing.T) {
	c := config.Default()
	c.BucketCount = 0
	_, err := engine.New(engine.WithCatalog(c))
	assert.ErrorIs(t, err, config.ErrInvalidEntry)
}

func TestParseInput(t *testing.T) {
	e, err := engine.New()
	require.NoError(t, err)

	in, err := e.ParseInput(engine.LinearSearch, "4 8 15", "15")
	require.NoError(t, err)
	assert.True(t, in.HasTarget)
	assert.Equal(t, 15.0, in.Target)

	_, err = e.ParseInput(engine.LinearSearch, "4 8 15", "")
	assert.ErrorIs(t, err, validate.ErrEmptyInput)

	in, err = e.ParseInput(engine.Factorial, "5", "")
	require.NoError(t, err)
	assert.Equal(t, 5, in.N)

	in, err = e.ParseInput(engine.BreadthFirst, "C-B B-A", "")
	require.NoError(t, err)
	assert.Equal(t, "A", in.Start, "defaults to the lexically first vertex")

	c := config.Default()
	c.Graph.MaxVertices = 2
	small, err := engine.New(engine.WithCatalog(c))
	require.NoError(t, err)
	_, err = small.ParseInput(engine.DepthFirst, "A-B B-C", "A")
	assert.ErrorIs(t, err, validate.ErrSize)
}

func TestRun_BucketCountFromCatalog(t *testing.T) {
	c := config.Default()
	c.BucketCount = 3
	e, err := engine.New(engine.WithCatalog(c))
	require.NoError(t, err)

	tr, err := e.Run(engine.BucketSort, engine.Input{Sequence: validate.Sequence{0.9, 0.1}})
	require.NoError(t, err)
	assert.Len(t, tr.First().Distribution.Buckets, 3)
}

func TestRun_MaxDepthFromCatalog(t *testing.T) {
	c := config.Default()
	c.Graph.MaxDepth = 1
	e, err := engine.New(engine.WithCatalog(c))
	require.NoError(t, err)

	in, err := e.ParseInput(engine.BreadthFirst, "A-B B-C", "A")
	require.NoError(t, err)
	tr, err := e.Run(engine.BreadthFirst, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, tr.Last().Traversal.Order)
}
