// SPDX-License-Identifier: MIT

package combine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/matrix"
	"github.com/stretchr/testify/require"
)

const simplexTol = 1e-8

// blockFrom wraps rows into a kernel.Block.
func blockFrom(t testing.TB, name string, rows [][]float64) *kernel.Block {
	t.Helper()
	X, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)
	b, err := kernel.NewBlock(name, X, nil, nil)
	require.NoError(t, err)

	return b
}

// centeredLinear returns the centered linear kernel of b.
func centeredLinear(t testing.TB, b *kernel.Block) *matrix.Dense {
	t.Helper()
	K, err := kernel.ComputeCentered(b, kernel.Linear{})
	require.NoError(t, err)

	return K
}

// fixture returns three centered linear kernels over n=30 samples:
// a two-cluster block, a near copy of it, and pure noise.
func fixture(t testing.TB, seed int64) []*matrix.Dense {
	t.Helper()
	const n, p = 30, 4
	rng := rand.New(rand.NewSource(seed))
	x1 := make([][]float64, n)
	x2 := make([][]float64, n)
	x3 := make([][]float64, n)
	for i := 0; i < n; i++ {
		c := 2.0
		if i >= n/2 {
			c = -2
		}
		x1[i] = []float64{c, c, 0, 0}
		x2[i] = make([]float64, p)
		x3[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			x1[i][j] += 0.3 * rng.NormFloat64()
		}
		for j := 0; j < p; j++ {
			x2[i][j] = x1[i][j] + 0.01*rng.NormFloat64()
		}
		for j := 0; j < p; j++ {
			x3[i][j] = rng.NormFloat64()
		}
	}

	return []*matrix.Dense{
		centeredLinear(t, blockFrom(t, "clusters", x1)),
		centeredLinear(t, blockFrom(t, "copy", x2)),
		centeredLinear(t, blockFrom(t, "noise", x3)),
	}
}

func requireOnSimplex(t testing.TB, beta []float64) {
	t.Helper()
	var s float64
	for i, b := range beta {
		require.GreaterOrEqual(t, b, 0.0, "beta[%d]", i)
		s += b
	}
	require.InDelta(t, 1.0, s, simplexTol)
}

func requireClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			bv, err := b.At(i, j)
			require.NoError(t, err)
			require.LessOrEqual(t, math.Abs(av-bv), tol, "(%d,%d)", i, j)
		}
	}
}
