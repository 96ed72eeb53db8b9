package partition

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// sorter holds the working array and recorder of one QuickSort call.
type sorter struct {
	arr []float64
	rec *trace.Recorder
}

// QuickSort records quicksort over a copy of seq.
func QuickSort(seq []float64) *trace.Trace {
	s := &sorter{
		arr: slices.Clone(seq),
		rec: trace.NewRecorder("quick-sort", trace.KindPartition, seq),
	}
	s.sort(0, len(s.arr)-1, 0)

	s.rec.Record(trace.Step{
		Action:      trace.ActionSorted,
		Array:       s.arr,
		Description: "Array is sorted",
		Partition: &trace.PartitionInfo{
			Low: 0, High: len(s.arr) - 1, I: -1, J: -1, Pivot: -1,
			Comparing: -1, Swapped: noSwap, Split: -1, RangeLo: -1, RangeHi: -1,
		},
	})

	return s.rec.Finish(s.arr)
}

var noSwap = [2]int{-1, -1}

// sort partitions [low, high] and recurses left then right.
func (s *sorter) sort(low, high, level int) {
	if low >= high {
		return
	}
	j := s.partition(low, high, level)

	if j-1 > low {
		s.announce(trace.SideLeft, low, j-1, j, level+1)
	}
	s.sort(low, j-1, level+1)

	if high > j+1 {
		s.announce(trace.SideRight, j+1, high, j, level+1)
	}
	s.sort(j+1, high, level+1)
}

// announce records a show-partition step for the sub-range [lo, hi].
func (s *sorter) announce(side trace.Side, lo, hi, pivot, level int) {
	s.rec.Record(trace.Step{
		Action:      trace.ActionShowPartition,
		Array:       s.arr,
		Description: fmt.Sprintf("Sort the %s partition [%d..%d]", side, lo, hi),
		Partition: &trace.PartitionInfo{
			Low: lo, High: hi, I: -1, J: -1, Pivot: pivot, PivotValue: s.arr[pivot],
			Comparing: -1, Swapped: noSwap, Split: pivot,
			Side: side, RangeLo: lo, RangeHi: hi, Level: level,
		},
	})
}

// partition runs the two-pointer scan over [low, high] with arr[low] as
// pivot and returns the pivot's final index.
func (s *sorter) partition(low, high, level int) int {
	arr := s.arr
	pivot := arr[low]
	i, j := low+1, high

	// info builds the payload shared by every step of this call.
	info := func(comparing int, swapped [2]int, pivotAt, split int) *trace.PartitionInfo {
		return &trace.PartitionInfo{
			Low: low, High: high, I: i, J: j, Pivot: pivotAt, PivotValue: pivot,
			Comparing: comparing, Swapped: swapped, Split: split,
			RangeLo: -1, RangeHi: -1, Level: level,
		}
	}

	// 1. Announce the partition
	s.rec.Record(trace.Step{
		Action:      trace.ActionPartitionStart,
		Array:       arr,
		Description: fmt.Sprintf("Partition [%d..%d] around pivot %g at index %d", low, high, pivot, low),
		Partition:   info(-1, noSwap, low, -1),
	})

	for i <= j {
		// 2. Advance i over elements <= pivot
		for i <= high && arr[i] <= pivot {
			s.rec.Record(trace.Step{
				Action:      trace.ActionComparingLeft,
				Array:       arr,
				Description: fmt.Sprintf("%g <= pivot %g, move i right", arr[i], pivot),
				Partition:   info(i, noSwap, low, -1),
			})
			i++
		}

		// 3. Retreat j over elements > pivot
		for j > low && arr[j] > pivot {
			s.rec.Record(trace.Step{
				Action:      trace.ActionComparingRight,
				Array:       arr,
				Description: fmt.Sprintf("%g > pivot %g, move j left", arr[j], pivot),
				Partition:   info(j, noSwap, low, -1),
			})
			j--
		}

		// 4. Exchange the out-of-place pair
		if i < j {
			arr[i], arr[j] = arr[j], arr[i]
			s.rec.Record(trace.Step{
				Action:      trace.ActionSwap,
				Array:       arr,
				Description: fmt.Sprintf("Swap %g and %g at indices %d and %d", arr[i], arr[j], i, j),
				Partition:   info(-1, [2]int{i, j}, low, -1),
			})
		}
	}

	// 5. Place the pivot at the split point
	arr[low], arr[j] = arr[j], arr[low]
	s.rec.Record(trace.Step{
		Action:      trace.ActionPivotPlacement,
		Array:       arr,
		Description: fmt.Sprintf("Place pivot %g at index %d", pivot, j),
		Partition:   info(-1, [2]int{low, j}, j, j),
	})

	return j
}
