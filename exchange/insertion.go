package exchange

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// Insertion records insertion sort over a copy of seq.
func Insertion(seq []float64) *trace.Trace {
	arr := slices.Clone(seq)
	rec := trace.NewRecorder("insertion-sort", trace.KindExchange, seq)

	shifts := 0
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1

		rec.Record(trace.Step{
			Action:      trace.ActionStartInsert,
			Array:       arr,
			Description: fmt.Sprintf("Start inserting element %g at index %d", key, i),
			Exchange:    &trace.ExchangeInfo{Indices: [2]int{i, j}, Pass: i, Key: key, InsertAt: -1, Swaps: shifts},
		})

		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			shifts++
			rec.Record(trace.Step{
				Action:      trace.ActionShifting,
				Array:       arr,
				Description: fmt.Sprintf("Shift %g to the right", arr[j+1]),
				Exchange:    &trace.ExchangeInfo{Indices: [2]int{j, j + 1}, Pass: i, Key: key, InsertAt: -1, Swaps: shifts},
			})
			j--
		}

		arr[j+1] = key
		rec.Record(trace.Step{
			Action:      trace.ActionInserting,
			Array:       arr,
			Description: fmt.Sprintf("Insert %g at index %d", key, j+1),
			Exchange:    &trace.ExchangeInfo{Indices: [2]int{i, j + 1}, Pass: i, Key: key, InsertAt: j + 1, Swaps: shifts},
		})
	}

	rec.Record(sortedStep(arr, shifts))

	return rec.Finish(arr)
}
