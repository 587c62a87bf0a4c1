// Package matrix_test provides benchmarks for the factorization kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/prodnet/matrix"
)

// benchSizes are the system sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkLU *matrix.LU
	sinkV  []float64
)

func BenchmarkFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomDominant(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.Factorize(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkLU = f
			}
		})
	}
}

func BenchmarkLUSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f, err := matrix.Factorize(randomDominant(b, n, 4242))
			if err != nil {
				b.Fatal(err)
			}
			rhs := randomVec(n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := f.Solve(rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}
