// SPDX-License-Identifier: MIT

package kpca

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/matrix"
)

// Decompose centers K and returns its top-k kernel principal components.
//
// Implementation:
//   - Stage 1: k ≥ 1; K' = kernel.Center(K).
//   - Stage 2: matrix.EigenSym(K') → λ descending, α orthonormal, signs canonical.
//   - Stage 3: rank = #{λ_c > tol·max(1, λ₁)}; k ≤ rank required.
//   - Stage 4: Coefficients = α_c/√λ_c, Scores = K'·Coefficients = √λ_c·α_c.
//   - Stage 5: TotalVariance = trace(K').
//
// Errors:
//   - ErrInvalidParameter (k < 1), ErrInsufficientRank (k > rank).
//   - ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf, ErrNilMatrix from centering.
//   - ErrConvergence from the eigensolver.
//
// Complexity: O(n³) for the eigendecomposition, O(n²·k) for the scores.
func Decompose(K matrix.Matrix, k int, opts ...Option) (*Result, error) {
	if k < 1 {
		return nil, kpcaErrorf("Decompose", fmt.Errorf("%w: k=%d", ErrInvalidParameter, k))
	}
	o := gatherOptions(opts...)

	Kc, err := kernel.Center(K)
	if err != nil {
		return nil, kpcaErrorf("Decompose", err)
	}
	vals, vecs, err := matrix.EigenSym(Kc, o.eigen...)
	if err != nil {
		return nil, kpcaErrorf("Decompose", err)
	}

	rank := Rank(vals, o.rankTol)
	if k > rank {
		return nil, kpcaErrorf("Decompose", fmt.Errorf("%w: requested %d components, rank is %d (n=%d)",
			ErrInsufficientRank, k, rank, Kc.Rows()))
	}

	n := Kc.Rows()
	coef, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, kpcaErrorf("Decompose", err)
	}
	var i, c int
	var a, root float64
	for c = 0; c < k; c++ {
		root = math.Sqrt(vals[c])
		for i = 0; i < n; i++ {
			a, _ = vecs.At(i, c)
			_ = coef.Set(i, c, a/root)
		}
	}
	// K'·(α/√λ) = √λ·α: the coordinates of the samples on each component.
	scores, err := matrix.Mul(Kc, coef)
	if err != nil {
		return nil, kpcaErrorf("Decompose", err)
	}
	total, err := matrix.Trace(Kc)
	if err != nil {
		return nil, kpcaErrorf("Decompose", err)
	}

	return &Result{
		Scores:        scores,
		Coefficients:  coef,
		Eigen:         EigenResult{Values: vals, Vectors: vecs},
		Centered:      Kc,
		Rank:          rank,
		TotalVariance: total,
	}, nil
}

// Rank counts the eigenvalues strictly above tol·max(1, max λ).
func Rank(values []float64, tol float64) int {
	if len(values) == 0 {
		return 0
	}
	hi := values[0]
	for _, v := range values {
		hi = math.Max(hi, v)
	}
	limit := tol * math.Max(1, hi)
	var r int
	for _, v := range values {
		if v > limit {
			r++
		}
	}

	return r
}
