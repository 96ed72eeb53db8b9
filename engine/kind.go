package engine

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/config"
)

// AlgorithmKind enumerates the traceable algorithms.
type AlgorithmKind int

const (
	LinearSearch AlgorithmKind = iota
	BinarySearch
	BubbleSort
	InsertionSort
	QuickSort
	MergeSort
	CountingSort
	BucketSort
	Factorial
	BreadthFirst
	DepthFirst

	numKinds
)

var kindNames = [numKinds]string{
	LinearSearch:  config.LinearSearch,
	BinarySearch:  config.BinarySearch,
	BubbleSort:    config.BubbleSort,
	InsertionSort: config.InsertionSort,
	QuickSort:     config.QuickSort,
	MergeSort:     config.MergeSort,
	CountingSort:  config.CountingSort,
	BucketSort:    config.BucketSort,
	Factorial:     "factorial",
	BreadthFirst:  "bfs",
	DepthFirst:    "dfs",
}

func (k AlgorithmKind) valid() bool { return k >= 0 && k < numKinds }

// String returns the command-line name of k.
func (k AlgorithmKind) String() string {
	if !k.valid() {
		return "unknown"
	}

	return kindNames[k]
}

// IsSequence reports whether k takes a numeric sequence as input.
func (k AlgorithmKind) IsSequence() bool { return k.valid() && k <= BucketSort }

// IsSearch reports whether k also needs a target value.
func (k AlgorithmKind) IsSearch() bool { return k == LinearSearch || k == BinarySearch }

// IsGraph reports whether k takes an edge list and a start vertex.
func (k AlgorithmKind) IsGraph() bool { return k == BreadthFirst || k == DepthFirst }

// Kinds returns every AlgorithmKind in declaration order.
func Kinds() []AlgorithmKind {
	out := make([]AlgorithmKind, numKinds)
	for i := range out {
		out[i] = AlgorithmKind(i)
	}

	return out
}

// ParseKind resolves a command-line name.
func ParseKind(name string) (AlgorithmKind, error) {
	for k, n := range kindNames {
		if n == name {
			return AlgorithmKind(k), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}
