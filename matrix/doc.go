// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra substrate of kfusion.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and a
//     flat backing slice that kernels operate on directly.
//   - Canonical kernels: Sub, AddScaled, Mul, Gram, Trace and the Frobenius
//     inner product / norm used by kernel alignment measures.
//   - EigenSym, a symmetric eigendecomposition sorted by descending eigenvalue
//     with deterministic tie order and sign. Two solvers are available: the
//     gonum LAPACK driver (default) and cyclic-pivot Jacobi rotations, whose
//     sweep budget is configurable and surfaces ErrNoConvergence.
//   - Statistics: CenterColumns and Standardize (column z-scores).
//
// Every kernel validates its input through validators.go and returns sentinel
// errors from errors.go; nothing panics on user input. Inputs are never
// mutated: each kernel allocates a fresh result.
//
//	K, _ := matrix.Gram(X)                 // X·Xᵀ
//	vals, vecs, _ := matrix.EigenSym(K)    // λ₁ ≥ λ₂ ≥ … ; vectors in columns
package matrix
