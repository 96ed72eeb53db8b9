package mergesort

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// Sort records merge sort over a copy of seq.
func Sort(seq []float64) *trace.Trace {
	rec := trace.NewRecorder("merge-sort", trace.KindMerge, seq)

	// 1. Divide phase over the untouched input
	rec.Phase(trace.PhaseDivide)
	divide(rec, seq, seq, 0, 0, trace.SideRoot)

	// 2. Merge phase over a working copy
	rec.Phase(trace.PhaseMerge)
	work := slices.Clone(seq)
	if len(work) <= 1 {
		rec.Record(trace.Step{
			Action:      trace.ActionSorted,
			Array:       work,
			Description: "A single element is already sorted",
			Merge:       &trace.MergeInfo{Phase: trace.PhaseMerge, Merged: work, Position: trace.SideRoot},
		})

		return rec.Finish(work)
	}
	m := &merger{rec: rec, work: work}
	m.sort(0, len(work), 0, trace.SideRoot)

	return rec.Finish(work)
}

// divide records the pre-order split of sub, which starts at offset in whole.
func divide(rec *trace.Recorder, whole, sub []float64, offset, level int, pos trace.Side) {
	if len(sub) <= 1 {
		return
	}
	mid := len(sub) / 2
	left, right := sub[:mid], sub[mid:]

	rec.Record(trace.Step{
		Action:      trace.ActionDivide,
		Array:       whole,
		Description: fmt.Sprintf("Divide %v into %v and %v", sub, left, right),
		Merge: &trace.MergeInfo{
			Phase:    trace.PhaseDivide,
			Parent:   sub,
			Left:     left,
			Right:    right,
			Offset:   offset,
			Level:    level,
			Position: pos,
		},
	})

	divide(rec, whole, left, offset, level+1, trace.SideLeft)
	divide(rec, whole, right, offset+mid, level+1, trace.SideRight)
}

// merger sorts work in place, recording every merge.
type merger struct {
	rec  *trace.Recorder
	work []float64
}

// sort sorts work[offset:offset+n] and returns a copy of the sorted run.
func (m *merger) sort(offset, n, level int, pos trace.Side) []float64 {
	if n <= 1 {
		return slices.Clone(m.work[offset : offset+n])
	}
	mid := n / 2
	left := m.sort(offset, mid, level+1, trace.SideLeft)
	right := m.sort(offset+mid, n-mid, level+1, trace.SideRight)

	merged := Merge(left, right)
	copy(m.work[offset:], merged)

	m.rec.Record(trace.Step{
		Action:      trace.ActionMerge,
		Array:       m.work,
		Description: fmt.Sprintf("Merge %v and %v into %v", left, right, merged),
		Merge: &trace.MergeInfo{
			Phase:    trace.PhaseMerge,
			Left:     left,
			Right:    right,
			Merged:   merged,
			Offset:   offset,
			Level:    level,
			Position: pos,
		},
	})

	return merged
}

// Merge returns the stable two-pointer merge of sorted runs left and right:
// on ties the left element is taken first, then any remainder is appended.
func Merge(left, right []float64) []float64 {
	merged := make([]float64, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)

	return merged
}
