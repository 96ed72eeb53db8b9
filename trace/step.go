package trace

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Step is one recorded action. Exactly one payload pointer is non-nil and
// it matches Kind.
type Step struct {
	// Index is the position of the step in its Trace.
	Index int
	// Kind is the algorithm family; it selects the payload.
	Kind Kind
	// Action is the family-specific tag of this step.
	Action Action
	// Phase groups steps for pagination; empty for single-phase traces.
	Phase Phase
	// Array is the full working sequence at this instant. Call-stack and
	// traversal steps have no sequence and leave it nil.
	Array []float64
	// Description narrates the step.
	Description string

	Search       *SearchInfo
	Exchange     *ExchangeInfo
	Partition    *PartitionInfo
	Merge        *MergeInfo
	Distribution *DistributionInfo
	CallStack    *CallStackInfo
	Traversal    *TraversalInfo
}

// Clone returns a deep copy of s sharing no memory with it.
func (s Step) Clone() Step {
	out := s
	out.Array = slices.Clone(s.Array)
	if s.Search != nil {
		v := *s.Search
		out.Search = &v
	}
	if s.Exchange != nil {
		v := *s.Exchange
		out.Exchange = &v
	}
	if s.Partition != nil {
		v := *s.Partition
		out.Partition = &v
	}
	if s.Merge != nil {
		v := *s.Merge
		v.Parent = slices.Clone(v.Parent)
		v.Left = slices.Clone(v.Left)
		v.Right = slices.Clone(v.Right)
		v.Merged = slices.Clone(v.Merged)
		out.Merge = &v
	}
	if s.Distribution != nil {
		v := *s.Distribution
		v.Counts = slices.Clone(v.Counts)
		v.Output = slices.Clone(v.Output)
		if v.Buckets != nil {
			v.Buckets = make([][]float64, len(s.Distribution.Buckets))
			for i, b := range s.Distribution.Buckets {
				v.Buckets[i] = slices.Clone(b)
			}
		}
		out.Distribution = &v
	}
	if s.CallStack != nil {
		v := *s.CallStack
		v.Frames = slices.Clone(v.Frames)
		out.CallStack = &v
	}
	if s.Traversal != nil {
		v := *s.Traversal
		v.Frontier = slices.Clone(v.Frontier)
		v.Visited = slices.Clone(v.Visited)
		v.Order = slices.Clone(v.Order)
		v.Depth = maps.Clone(v.Depth)
		v.Parent = maps.Clone(v.Parent)
		out.Traversal = &v
	}

	return out
}

// payloads returns the number of non-nil payloads and whether the one
// matching s.Kind is set.
func (s Step) payloads() (n int, match bool) {
	set := [...]bool{
		KindSearch:       s.Search != nil,
		KindExchange:     s.Exchange != nil,
		KindPartition:    s.Partition != nil,
		KindMerge:        s.Merge != nil,
		KindDistribution: s.Distribution != nil,
		KindCallStack:    s.CallStack != nil,
		KindTraversal:    s.Traversal != nil,
	}
	for _, ok := range set {
		if ok {
			n++
		}
	}
	if s.Kind >= 0 && int(s.Kind) < len(set) {
		match = set[s.Kind]
	}

	return n, match
}

// Fingerprint returns a 64-bit content hash of the step. Two steps with
// equal fingerprints render identically; playback tests use it to check
// bit-for-bit identity after navigation.
func (s Step) Fingerprint() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%d|%d|%s|%s|%s|", s.Index, s.Kind, s.Action, s.Phase, s.Description)
	writeFloats(d, s.Array)
	// %+v prints map keys in sorted order, so the encoding is deterministic.
	switch {
	case s.Search != nil:
		fmt.Fprintf(d, "S%+v", *s.Search)
	case s.Exchange != nil:
		fmt.Fprintf(d, "E%+v", *s.Exchange)
	case s.Partition != nil:
		fmt.Fprintf(d, "P%+v", *s.Partition)
	case s.Merge != nil:
		fmt.Fprintf(d, "M%s|%d|%d|%s|", s.Merge.Phase, s.Merge.Offset, s.Merge.Level, s.Merge.Position)
		writeFloats(d, s.Merge.Parent)
		writeFloats(d, s.Merge.Left)
		writeFloats(d, s.Merge.Right)
		writeFloats(d, s.Merge.Merged)
	case s.Distribution != nil:
		fmt.Fprintf(d, "D%v|", s.Distribution.Counts)
		for _, b := range s.Distribution.Buckets {
			writeFloats(d, b)
		}
		writeFloats(d, s.Distribution.Output)
	case s.CallStack != nil:
		fmt.Fprintf(d, "C%+v", *s.CallStack)
	case s.Traversal != nil:
		fmt.Fprintf(d, "T%+v", *s.Traversal)
	}

	return d.Sum64()
}

// writeFloats hashes the exact bit patterns of vs, length-prefixed.
func writeFloats(d *xxhash.Digest, vs []float64) {
	fmt.Fprintf(d, "[%d:", len(vs))
	for _, v := range vs {
		fmt.Fprintf(d, "%x,", math.Float64bits(v))
	}
	_, _ = d.WriteString("]")
}
