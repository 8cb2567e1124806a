// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kfusion/matrix"
)

// SymmetryTol is the relative tolerance used by Center to accept a kernel as
// symmetric: |K[i,j] − K[j,i]| ≤ SymmetryTol·max(1, max|K|).
const SymmetryTol = 1e-8

// Center returns K' = K − 1ₙK − K1ₙ + 1ₙK1ₙ where 1ₙ has every entry 1/n.
//
// Implementation:
//   - Stage 1: validate square, finite and symmetric (relative SymmetryTol).
//   - Stage 2: m = row means of K (equal to the column means by symmetry),
//     g = mean(m).
//   - Stage 3: K'[i,j] = K[i,j] − m[i] − m[j] + g on the upper triangle,
//     mirrored, so K' is exactly symmetric.
//
// Centering is idempotent: the row means of K' are zero up to rounding, so a
// second pass changes nothing beyond floating noise.
//
// Errors: ErrNilMatrix, ErrNonSquare / ErrDimensionMismatch, ErrNaNInf, ErrAsymmetry.
// Complexity: O(n²) time and space.
func Center(K matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateFinite(K); err != nil {
		return nil, kernelErrorf("Center", err)
	}
	if err := matrix.ValidateSquare(K); err != nil {
		return nil, kernelErrorf("Center", err)
	}
	raw, err := rawOf(K)
	if err != nil {
		return nil, kernelErrorf("Center", err)
	}
	var scale float64
	for _, v := range raw {
		scale = math.Max(scale, math.Abs(v))
	}
	if err = matrix.ValidateSymmetric(K, SymmetryTol*math.Max(1, scale)); err != nil {
		return nil, kernelErrorf("Center", err)
	}

	n := K.Rows()
	m, err := matrix.RowMeans(K)
	if err != nil {
		return nil, kernelErrorf("Center", err)
	}
	var g float64
	for _, v := range m {
		g += v
	}
	g /= float64(n)

	out := make([]float64, n*n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = raw[i*n+j] - m[i] - m[j] + g
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}
	res, err := matrix.NewDenseFrom(n, n, out)
	if err != nil {
		return nil, kernelErrorf("Center", err)
	}

	return res, nil
}

// rawOf returns a row-major copy of any Matrix.
func rawOf(K matrix.Matrix) ([]float64, error) {
	if d, ok := K.(*matrix.Dense); ok {
		return d.RawData(), nil
	}
	r, c := K.Rows(), K.Cols()
	out := make([]float64, r*c)
	var i, j int
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if out[i*c+j], err = K.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// IsCentered reports whether every row mean of the square matrix K is within
// tol·max(1, max|K|) of zero. Non-square or nil inputs report false.
func IsCentered(K matrix.Matrix, tol float64) bool {
	if matrix.ValidateSquare(K) != nil {
		return false
	}
	raw, err := rawOf(K)
	if err != nil {
		return false
	}
	var scale float64
	for _, v := range raw {
		scale = math.Max(scale, math.Abs(v))
	}
	limit := math.Abs(tol) * math.Max(1, scale)
	n := K.Rows()
	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		s = 0
		for j = 0; j < n; j++ {
			s += raw[i*n+j]
		}
		if math.Abs(s/float64(n)) > limit {
			return false
		}
	}

	return true
}
