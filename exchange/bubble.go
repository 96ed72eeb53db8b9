package exchange

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// Bubble records bubble sort over a copy of seq.
func Bubble(seq []float64) *trace.Trace {
	arr := slices.Clone(seq)
	n := len(arr)
	rec := trace.NewRecorder("bubble-sort", trace.KindExchange, seq)

	swaps := 0
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			// 1. Pre-mutation comparison
			rec.Record(trace.Step{
				Action:      trace.ActionComparing,
				Array:       arr,
				Description: fmt.Sprintf("Comparing elements at indices %d and %d", j, j+1),
				Exchange:    &trace.ExchangeInfo{Indices: [2]int{j, j + 1}, Pass: i, InsertAt: -1, Swaps: swaps},
			})

			// 2. Swap and record the post-mutation array
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
				swaps++
				rec.Record(trace.Step{
					Action:      trace.ActionSwapped,
					Array:       arr,
					Description: fmt.Sprintf("Swapping elements at indices %d and %d", j, j+1),
					Exchange:    &trace.ExchangeInfo{Indices: [2]int{j, j + 1}, Pass: i, InsertAt: -1, Swaps: swaps},
				})
			}
		}
		// 3. No swaps in a full pass: already sorted
		if !swapped {
			break
		}
	}

	rec.Record(sortedStep(arr, swaps))

	return rec.Finish(arr)
}

// sortedStep is the terminal step shared by both tracers.
func sortedStep(arr []float64, swaps int) trace.Step {
	return trace.Step{
		Action:      trace.ActionSorted,
		Array:       arr,
		Description: "Array is sorted",
		Exchange:    &trace.ExchangeInfo{Indices: [2]int{-1, -1}, Pass: -1, InsertAt: -1, Swaps: swaps},
	}
}
