// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction, scaled accumulation, matrix product, Gram
// products, traces and Frobenius measures.
// All functions perform strict fail-fast validation and allocate a fresh result.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and an
//     interface fallback via At/Set with identical loop order.
//   - Errors are wrapped via matrixErrorf(op, err) with the op* constants.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSub       = "Sub"
	opAddScaled = "AddScaled"
	opMul       = "Mul"
	opGram      = "Gram"
	opFrobenius = "FrobeniusInner"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as *Dense, copying through At when m is another implementation.
// Kernels call it once so the hot loops only ever see a flat buffer.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// addScaled computes out = a + alpha*b for same-shape a, b.
// Shared by Sub (alpha=-1) and AddScaled.
// Complexity: O(r*c) time, O(r*c) space for the result.
func addScaled(a, b Matrix, alpha float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var idx int
	for idx = range res.data { // single flat walk, fixed order
		res.data[idx] = da.data[idx] + alpha*db.data[idx]
	}

	return res, nil
}

// Sub returns a − b (element-wise).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addScaled(a, b, -1, opSub) }

// AddScaled returns a + alpha·b (axpy on matrices).
// Used to build weighted kernel sums without intermediate scaled copies.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf for non-finite alpha.
// Complexity: O(r*c).
func AddScaled(a Matrix, alpha float64, b Matrix) (*Dense, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opAddScaled, ErrNaNInf)
	}

	return addScaled(a, b, alpha, opAddScaled)
}

// Mul computes the matrix product a × b using an i-k-j loop order
// (row-major friendly: the inner loop walks contiguous rows of b and res).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Gram returns the n×n Gram matrix X·Xᵀ of an n×p matrix X.
//
// Implementation:
//   - Stage 1: view X's buffer as a gonum *mat.Dense (no copy; read-only use).
//   - Stage 2: SymOuterK(1, X) fills the upper triangle via BLAS dsyrk.
//   - Stage 3: mirror into a full Dense, so the result is exactly symmetric.
//
// Errors: ErrNilMatrix. Complexity: O(n²p) time, O(n²) space.
func Gram(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	dx, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var sym mat.SymDense
	sym.SymOuterK(1, mat.NewDense(dx.r, dx.c, dx.data))

	res, err := fromSym(&sym)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	return res, nil
}

// FrobeniusInner returns ⟨a, b⟩_F = Σ_ij a[i,j]·b[i,j].
// For symmetric a, b this equals trace(a·b) without forming the product.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func FrobeniusInner(a, b Matrix) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	acc := ZeroSum
	for idx, v := range da.data {
		acc += v * db.data[idx]
	}

	return acc, nil
}

// FrobeniusNorm returns ‖m‖_F = √⟨m, m⟩_F.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	ip, err := FrobeniusInner(m, m)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(ip), nil
}

// Trace returns Σ_i m[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var i int
	var v float64
	var err error
	acc := ZeroSum
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		acc += v
	}

	return acc, nil
}
