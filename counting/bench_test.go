package counting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/katas/counting"
)

// benchmarkDivisibleSumPairs runs DivisibleSumPairs on n values in [0,100).
func benchmarkDivisibleSumPairs(b *testing.B, n, k int) {
	ar := randomInts(rand.New(rand.NewSource(1)), n, 0, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := counting.DivisibleSumPairs(k, ar); err != nil {
			b.Fatalf("DivisibleSumPairs failed: %v", err)
		}
	}
}

func BenchmarkDivisibleSumPairs_1K(b *testing.B)   { benchmarkDivisibleSumPairs(b, 1_000, 7) }
func BenchmarkDivisibleSumPairs_100K(b *testing.B) { benchmarkDivisibleSumPairs(b, 100_000, 7) }

func BenchmarkCountingSort_100K(b *testing.B) {
	arr := randomInts(rand.New(rand.NewSource(1)), 100_000, 0, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := counting.CountingSort(arr); err != nil {
			b.Fatalf("CountingSort failed: %v", err)
		}
	}
}
