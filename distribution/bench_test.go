package distribution_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algotrace/distribution"
)

// BenchmarkCounting measures counting sort on N integers spanning the full
// value range, the widest count array.
func BenchmarkCounting(b *testing.B) {
	const N = 15
	rnd := rand.New(rand.NewSource(42))
	seq := make([]float64, N)
	for i := range seq {
		seq[i] = float64(rnd.Intn(distribution.MaxCountingValue + 1))
	}
	seq[0] = distribution.MaxCountingValue

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = distribution.Counting(seq)
	}
}

// BenchmarkBucket measures bucket sort on N fractions.
func BenchmarkBucket(b *testing.B) {
	const N = 15
	rnd := rand.New(rand.NewSource(42))
	seq := make([]float64, N)
	for i := range seq {
		seq[i] = rnd.Float64()
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := distribution.Bucket(seq); err != nil {
			b.Fatalf("Bucket failed: %v", err)
		}
	}
}
