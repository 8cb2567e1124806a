// SPDX-License-Identifier: MIT

// Package matrix - bridges to gonum.org/v1/gonum/mat.
//
// Dense and gonum's *mat.Dense share the same row-major layout, so the
// conversions are single copies. Kernels that need BLAS/LAPACK (Gram,
// EigenSym) go through these helpers and never hand a live buffer to callers.
package matrix

import "gonum.org/v1/gonum/mat"

// FromGonum copies any gonum matrix into a Dense.
// Errors: ErrInvalidDimensions for empty inputs, ErrNaNInf for non-finite values.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return out, nil
}

// toSym builds a gonum SymDense from the upper triangle of a square Dense.
// Callers validate symmetry beforehand; the lower triangle is ignored.
func toSym(d *Dense) *mat.SymDense {
	return mat.NewSymDense(d.r, d.RawData())
}

// fromSym expands a gonum symmetric matrix into a full, exactly symmetric Dense.
func fromSym(s *mat.SymDense) (*Dense, error) {
	n := s.SymmetricDim()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = s.At(i, j)
			out.data[i*n+j] = v
			out.data[j*n+i] = v
		}
	}

	return out, nil
}
