// SPDX-License-Identifier: MIT

package kpca

import "github.com/katalvlaran/kfusion/matrix"

// EigenResult is the full spectrum of the centered kernel: Values sorted
// descending (stable on ties), Vectors with one orthonormal column per value.
type EigenResult struct {
	Values  []float64
	Vectors *matrix.Dense
}

// Result of Decompose. Immutable once returned.
//
// Two n×k matrices describe the retained components:
//
//   - Coefficients holds the scaled eigenvectors α_c/√λ_c. These are the
//     "scores" of the usual kernel PCA description (eigenvector divided by
//     the square root of its eigenvalue) and the weights that project a
//     centered kernel row onto component c.
//   - Scores holds K'·Coefficients = √λ_c·α_c, the principal coordinates of
//     the samples; plot these. Their pairwise distances reproduce the
//     kernel distances as k approaches the rank.
type Result struct {
	Scores        *matrix.Dense // n×k principal coordinates, √λ_c·α_c (not α_c/√λ_c, see Coefficients)
	Coefficients  *matrix.Dense // n×k scaled eigenvectors, α_c/√λ_c
	Eigen         EigenResult   // all n eigenpairs of the centered kernel
	Centered      *matrix.Dense // the centered kernel that was decomposed
	Rank          int           // eigenvalues above the rank threshold
	TotalVariance float64       // trace of the centered kernel
}

// Components returns k, the number of retained components.
func (r *Result) Components() int { return r.Scores.Cols() }

// Vector returns a copy of eigenvector c (0-based) of the centered kernel.
func (r *Result) Vector(c int) ([]float64, error) { return r.Eigen.Vectors.Col(c) }
