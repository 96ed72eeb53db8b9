package config

import (
	"math"
	"slices"

	"github.com/katalvlaran/algotrace/distribution"
	"github.com/katalvlaran/algotrace/validate"
)

// Algorithm names as they appear in the catalog and on the command line.
const (
	LinearSearch  = "linear-search"
	BinarySearch  = "binary-search"
	BubbleSort    = "bubble-sort"
	InsertionSort = "insertion-sort"
	QuickSort     = "quick-sort"
	MergeSort     = "merge-sort"
	CountingSort  = "counting-sort"
	BucketSort    = "bucket-sort"
)

// Entry is the YAML form of validate.Constraints for one algorithm.
type Entry struct {
	MinSize  int      `yaml:"min_size"`
	MaxSize  int      `yaml:"max_size"`
	Sorted   bool     `yaml:"sorted,omitempty"`
	Integers bool     `yaml:"integers,omitempty"`
	Min      *float64 `yaml:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty"`
}

// Constraints converts e for the validator. A single open bound becomes an
// infinite one.
func (e Entry) Constraints() validate.Constraints {
	c := validate.Constraints{
		MinSize:       e.MinSize,
		MaxSize:       e.MaxSize,
		RequireSorted: e.Sorted,
		IntegersOnly:  e.Integers,
	}
	if e.Min == nil && e.Max == nil {
		return c
	}
	c.HasRange = true
	c.Min, c.Max = math.Inf(-1), math.Inf(1)
	if e.Min != nil {
		c.Min = *e.Min
	}
	if e.Max != nil {
		c.Max = *e.Max
	}

	return c
}

// Bounds is an inclusive integer interval.
type Bounds struct {
	Min int `yaml:"min_n"`
	Max int `yaml:"max_n"`
}

// GraphLimits bounds traversal input.
type GraphLimits struct {
	// MaxVertices caps the vertex count of a parsed edge list.
	MaxVertices int `yaml:"max_vertices"`
	// MaxDepth is passed to traverse.WithMaxDepth; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`
}

// Catalog is the full set of input limits.
type Catalog struct {
	Algorithms  map[string]Entry `yaml:"algorithms"`
	Factorial   Bounds           `yaml:"factorial"`
	BucketCount int              `yaml:"bucket_count"`
	Graph       GraphLimits      `yaml:"graph"`
}

func bound(v float64) *float64 { return &v }

// Default returns the built-in catalog. Each call returns a fresh value.
func Default() Catalog {
	return Catalog{
		Algorithms: map[string]Entry{
			LinearSearch:  {MinSize: 1, MaxSize: 20},
			BinarySearch:  {MinSize: 1, MaxSize: 20, Sorted: true},
			BubbleSort:    {MinSize: 1, MaxSize: 20},
			InsertionSort: {MinSize: 1, MaxSize: 20},
			QuickSort:     {MinSize: 2, MaxSize: 16},
			MergeSort:     {MinSize: 2, MaxSize: 16},
			CountingSort:  {MinSize: 1, MaxSize: 15, Integers: true, Min: bound(0), Max: bound(distribution.MaxCountingValue)},
			BucketSort:    {MinSize: 1, MaxSize: 15, Min: bound(0), Max: bound(1)},
		},
		Factorial:   Bounds{Min: 1, Max: 7},
		BucketCount: 10,
		Graph:       GraphLimits{MaxVertices: 26},
	}
}

// Names returns the sequence algorithm names in lexical order.
func Names() []string {
	names := make([]string, 0, 8)
	for name := range Default().Algorithms {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Lookup returns the constraints for name.
func (c Catalog) Lookup(name string) (validate.Constraints, bool) {
	e, ok := c.Algorithms[name]
	if !ok {
		return validate.Constraints{}, false
	}

	return e.Constraints(), true
}
