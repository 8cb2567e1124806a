// SPDX-License-Identifier: MIT

// Package matrix - symmetric eigendecomposition.
//
// Purpose:
//   - Provide one entry point (EigenSym) that returns eigenpairs ordered by
//     descending eigenvalue with a reproducible tie order and sign convention.
//   - Offer two solvers behind Options: gonum's LAPACK driver (default) and
//     classical Jacobi rotations with an explicit rotation budget.
//
// Determinism:
//   - Ties are broken by the solver's output index (stable sort).
//   - Each eigenvector is flipped so its largest-magnitude component is
//     positive (first such component on ties).
package matrix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const opEigen = "EigenSym"

// EigenSym decomposes a real symmetric matrix m = V·diag(λ)·Vᵀ.
//
// Implementation:
//   - Stage 1: validate square, finite and symmetric within eps.
//   - Stage 2: run the configured solver (LAPACK or Jacobi).
//   - Stage 3: sort pairs by descending λ (stable), canonicalize signs.
//
// Inputs:
//   - m: symmetric n×n matrix (not mutated).
//   - opts: WithSolver, WithMaxIter (Jacobi rotations), WithEpsilon.
//
// Returns:
//   - values: λ₁ ≥ λ₂ ≥ … ≥ λₙ.
//   - vectors: n×n Dense; column k is the unit eigenvector for values[k].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry.
//   - ErrNoConvergence when the solver fails or the Jacobi budget is exhausted.
//
// Complexity:
//   - LAPACK: O(n³). Jacobi: O(n²) per rotation, bounded by maxIter rotations.
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var vals []float64
	var vecs *Dense
	switch o.solver {
	case SolverJacobi:
		vals, vecs, err = eigenJacobi(d, o.eps, o.maxIter)
	default:
		vals, vecs, err = eigenLAPACK(d)
	}
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	vals, vecs = sortEigenDesc(vals, vecs)
	canonicalizeSigns(vecs)

	return vals, vecs, nil
}

// eigenLAPACK delegates to gonum's mat.EigenSym (dsyev).
func eigenLAPACK(d *Dense) ([]float64, *Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(toSym(d), true); !ok {
		return nil, nil, ErrNoConvergence
	}
	var ev mat.Dense
	es.VectorsTo(&ev)
	vecs, err := FromGonum(&ev)
	if err != nil {
		return nil, nil, err
	}

	return es.Values(nil), vecs, nil
}

// eigenJacobi runs classical Jacobi rotations: each step annihilates the
// largest off-diagonal pair A[p,q] and accumulates the rotation into Q.
// Convergence: max|A[p,q]| < eps·max(1, ‖A‖_F). More than maxIter rotations
// yields ErrNoConvergence.
func eigenJacobi(src *Dense, eps float64, maxIter int) ([]float64, *Dense, error) {
	n := src.r
	a := src.Copy() // working copy; src stays untouched
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	// Scale-aware threshold so that large kernels converge on relative error.
	var fro float64
	for _, v := range a.data {
		fro += v * v
	}
	tol := eps * math.Max(1, math.Sqrt(fro))

	var (
		iter               int
		p, r               int     // current pivot (p,r), p<r
		maxOff, off        float64 // largest |A[p,r]| and scan temporary
		app, arr, apr      float64 // pivot block entries
		aip, air, qip, qir float64 // row/column temporaries
		theta, t, c, s     float64 // rotation parameters
	)
	for iter = 0; ; iter++ {
		// J.1: find pivot maximizing |A[p,r]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		// J.2: converged?
		if maxOff < tol {
			break
		}
		if iter >= maxIter {
			return nil, nil, ErrNoConvergence
		}

		// J.3: rotation parameters; θ = (arr−app)/(2apr), t = sign(θ)/(|θ|+√(θ²+1)).
		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: apply the rotation to rows/columns p and r of A (kept symmetric).
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, q, nil
}

// sortEigenDesc reorders eigenpairs by descending eigenvalue; ties keep the
// solver's order so identical inputs always produce identical outputs.
func sortEigenDesc(vals []float64, vecs *Dense) ([]float64, *Dense) {
	n := len(vals)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] > vals[idx[b]] })

	outVals := make([]float64, n)
	outVecs := &Dense{r: vecs.r, c: n, data: make([]float64, len(vecs.data))}
	var i, k int
	for k = 0; k < n; k++ {
		outVals[k] = vals[idx[k]]
		for i = 0; i < vecs.r; i++ {
			outVecs.data[i*n+k] = vecs.data[i*n+idx[k]]
		}
	}

	return outVals, outVecs
}

// canonicalizeSigns flips each column so that its largest-magnitude entry is positive.
func canonicalizeSigns(vecs *Dense) {
	n, cols := vecs.r, vecs.c
	var i, k, best int
	var bestAbs, v float64
	for k = 0; k < cols; k++ {
		best, bestAbs = 0, -1
		for i = 0; i < n; i++ {
			if v = math.Abs(vecs.data[i*cols+k]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		if vecs.data[best*cols+k] < 0 {
			for i = 0; i < n; i++ {
				vecs.data[i*cols+k] = -vecs.data[i*cols+k]
			}
		}
	}
}
