// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/matrix"
	"github.com/stretchr/testify/require"
)

// randomDense returns an r×c matrix with deterministic U(-1,1) entries.
func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

func randomBlock(t testing.TB, name string, n, p int, seed int64) *kernel.Block {
	t.Helper()
	b, err := kernel.NewBlock(name, randomDense(t, n, p, seed), nil, nil)
	require.NoError(t, err)

	return b
}

func at(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func requireExactlySymmetric(t testing.TB, K matrix.Matrix) {
	t.Helper()
	require.Equal(t, K.Rows(), K.Cols())
	for i := 0; i < K.Rows(); i++ {
		for j := i + 1; j < K.Cols(); j++ {
			require.Equal(t, at(t, K, i, j), at(t, K, j, i), "(%d,%d)", i, j)
		}
	}
}

func requireClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := at(t, a, i, j), at(t, b, i, j)
			require.LessOrEqual(t, math.Abs(av-bv), tol, "(%d,%d): %g vs %g", i, j, av, bv)
		}
	}
}

// hide masks the concrete type so that fallback paths run.
type hide struct{ matrix.Matrix }
