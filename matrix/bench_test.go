// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/kfusion/matrix"
)

// benchSizes are the sample counts to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

func BenchmarkGram(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := RandomDense(b, n, 50, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Gram(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkEigenSym(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			K, err := matrix.Gram(RandomDense(b, n, 20, 4242))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vals, _, err := matrix.EigenSym(K)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = vals
			}
		})
	}
}
