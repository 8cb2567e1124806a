// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// centerReference evaluates (I − 1ₙ)·K·(I − 1ₙ) with explicit products.
func centerReference(t *testing.T, K *matrix.Dense) *matrix.Dense {
	t.Helper()
	n := K.Rows()
	H, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -1.0 / float64(n)
			if i == j {
				v += 1
			}
			require.NoError(t, H.Set(i, j, v))
		}
	}
	HK, err := matrix.Mul(H, K)
	require.NoError(t, err)
	out, err := matrix.Mul(HK, H)
	require.NoError(t, err)

	return out
}

func TestCenter_MatchesFormula(t *testing.T) {
	K, err := kernel.Compute(randomBlock(t, "x", 9, 4, 21), kernel.RBF{Sigma: 1})
	require.NoError(t, err)

	Kc, err := kernel.Center(K)
	require.NoError(t, err)
	requireExactlySymmetric(t, Kc)
	requireClose(t, Kc, centerReference(t, K), 1e-12)

	// Fallback path through the interface.
	Ks, err := kernel.Center(hide{K})
	require.NoError(t, err)
	requireClose(t, Ks, Kc, 0)
}

func TestCenter_RowAndColumnSumsVanish(t *testing.T) {
	K, err := kernel.Compute(randomBlock(t, "x", 15, 6, 3), kernel.Linear{})
	require.NoError(t, err)
	Kc, err := kernel.Center(K)
	require.NoError(t, err)

	n := Kc.Rows()
	for i := 0; i < n; i++ {
		var rs, cs float64
		for j := 0; j < n; j++ {
			rs += at(t, Kc, i, j)
			cs += at(t, Kc, j, i)
		}
		assert.InDelta(t, 0, rs, 1e-10)
		assert.InDelta(t, 0, cs, 1e-10)
	}
	assert.True(t, kernel.IsCentered(Kc, 1e-12))
	assert.False(t, kernel.IsCentered(K, 1e-12))
}

func TestCenter_Idempotent(t *testing.T) {
	K, err := kernel.Compute(randomBlock(t, "x", 20, 5, 99), kernel.Polynomial{Degree: 2, Gamma: 1, Offset: 1})
	require.NoError(t, err)
	once, err := kernel.Center(K)
	require.NoError(t, err)
	twice, err := kernel.Center(once)
	require.NoError(t, err)

	var scale float64
	for _, v := range once.RawData() {
		scale = math.Max(scale, math.Abs(v))
	}
	requireClose(t, twice, once, 1e-12*math.Max(1, scale))
}

func TestCenter_Errors(t *testing.T) {
	_, err := kernel.Center(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = kernel.Center(rect)
	require.ErrorIs(t, err, kernel.ErrDimensionMismatch)

	asym, err := matrix.NewDenseRows([][]float64{{1, 2}, {3, 1}})
	require.NoError(t, err)
	_, err = kernel.Center(asym)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestIsCentered_Degenerate(t *testing.T) {
	assert.False(t, kernel.IsCentered(nil, 1))
	rect, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	assert.False(t, kernel.IsCentered(rect, 1))
}
