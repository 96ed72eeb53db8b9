package partition_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algotrace/partition"
)

// BenchmarkQuickSort measures quick sort on N random values.
func BenchmarkQuickSort(b *testing.B) {
	const N = 16
	rnd := rand.New(rand.NewSource(42))
	seq := make([]float64, N)
	for i := range seq {
		seq[i] = float64(rnd.Intn(50) + 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = partition.QuickSort(seq)
	}
}

// BenchmarkQuickSort_Sorted hits the last-element pivot worst case.
func BenchmarkQuickSort_Sorted(b *testing.B) {
	const N = 16
	seq := make([]float64, N)
	for i := range seq {
		seq[i] = float64(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = partition.QuickSort(seq)
	}
}
