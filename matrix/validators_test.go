// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kfusion/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSymmetric(t *testing.T) {
	sym := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-12, 1})
	require.NoError(t, matrix.ValidateSymmetric(sym, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, 0), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite(MustDense(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

func TestValidateShapes(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSameShape(MustDense(t, 1, 2), MustDense(t, 2, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 1, 2), MustDense(t, 1, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 1, 2)), matrix.ErrNilMatrix)
}
