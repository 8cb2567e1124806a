// SPDX-License-Identifier: MIT

// Package kernel - built-in kernel functions.
//
// Each Gram implementation fills the upper triangle (i ≤ j) and mirrors it,
// so K[i,j] and K[j,i] are bit-identical.
package kernel

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/kfusion/matrix"
	"gonum.org/v1/gonum/floats"
)

// Default polynomial parameters used by ParseFunc when a field is zero.
const (
	DefaultDegree = 2
	DefaultGamma  = 1.0
	DefaultOffset = 1.0
)

func checkPair(x, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return ErrDimensionMismatch
	}

	return nil
}

// Kind implements Func.
func (Linear) Kind() string { return KindLinear }

// Validate implements Func; a linear kernel has no parameters to reject.
func (Linear) Validate() error { return nil }

// Eval returns ⟨x, y⟩. Scale is a column statistic and does not apply here.
func (Linear) Eval(x, y []float64) (float64, error) {
	if err := checkPair(x, y); err != nil {
		return 0, kernelErrorf("Linear.Eval", err)
	}

	return floats.Dot(x, y), nil
}

// Gram returns X·Xᵀ (or Z·Zᵀ with Z the standardized X when Scale is set).
// Complexity: O(n²p).
func (l Linear) Gram(X *matrix.Dense) (*matrix.Dense, error) {
	src := X
	if l.Scale {
		z, _, _, err := matrix.Standardize(X)
		if err != nil {
			return nil, kernelErrorf("Linear.Gram", err)
		}
		src = z
	}
	K, err := matrix.Gram(src)
	if err != nil {
		return nil, kernelErrorf("Linear.Gram", err)
	}

	return K, nil
}

// Kind implements Func.
func (RBF) Kind() string { return KindRBF }

// Validate rejects σ ≤ 0 and non-finite σ.
func (r RBF) Validate() error {
	if !(r.Sigma > 0) || math.IsInf(r.Sigma, 0) {
		return invalidf("rbf sigma must be positive and finite, got %g", r.Sigma)
	}

	return nil
}

// Eval returns exp(−‖x − y‖² / (2σ²)).
func (r RBF) Eval(x, y []float64) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, kernelErrorf("RBF.Eval", err)
	}
	if err := checkPair(x, y); err != nil {
		return 0, kernelErrorf("RBF.Eval", err)
	}
	d := floats.Distance(x, y, 2)

	return math.Exp(-d * d / (2 * r.Sigma * r.Sigma)), nil
}

// Gram returns the RBF kernel over the rows of X.
//
// Implementation:
//   - Stage 1: Xc = X − column means. Distances are translation invariant,
//     and a large common offset would otherwise cancel in Stage 3.
//   - Stage 2: G = Xc·Xcᵀ (BLAS), squared norms ‖xᵢ‖² = G[i,i].
//   - Stage 3: d² = ‖xᵢ‖² + ‖xⱼ‖² − 2G[i,j], clamped at 0.
//   - Stage 4: K[i,j] = exp(−d²/(2σ²)); the diagonal is set to exactly 1.
//
// Complexity: O(n²p) time, O(n² + np) space.
func (r RBF) Gram(X *matrix.Dense) (*matrix.Dense, error) {
	if err := r.Validate(); err != nil {
		return nil, kernelErrorf("RBF.Gram", err)
	}
	Xc, _, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, kernelErrorf("RBF.Gram", err)
	}
	G, err := matrix.Gram(Xc)
	if err != nil {
		return nil, kernelErrorf("RBF.Gram", err)
	}
	n := G.Rows()
	g := G.RawData()
	norms := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		norms[i] = g[i*n+i]
	}

	out := make([]float64, n*n)
	denom := 2 * r.Sigma * r.Sigma
	var d2, v float64
	for i = 0; i < n; i++ {
		out[i*n+i] = 1
		for j = i + 1; j < n; j++ {
			d2 = norms[i] + norms[j] - 2*g[i*n+j]
			if d2 < 0 {
				d2 = 0
			}
			v = math.Exp(-d2 / denom)
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}
	K, err := matrix.NewDenseFrom(n, n, out)
	if err != nil {
		return nil, kernelErrorf("RBF.Gram", err)
	}

	return K, nil
}

// Kind implements Func.
func (Polynomial) Kind() string { return KindPolynomial }

// Validate requires Degree ≥ 1, Gamma > 0 and Offset ≥ 0 (all finite).
func (p Polynomial) Validate() error {
	switch {
	case p.Degree < 1:
		return invalidf("polynomial degree must be >= 1, got %d", p.Degree)
	case !(p.Gamma > 0) || math.IsInf(p.Gamma, 0):
		return invalidf("polynomial gamma must be positive and finite, got %g", p.Gamma)
	case !(p.Offset >= 0) || math.IsInf(p.Offset, 0):
		return invalidf("polynomial offset must be non-negative and finite, got %g", p.Offset)
	}

	return nil
}

// Eval returns (γ⟨x, y⟩ + c)^d.
func (p Polynomial) Eval(x, y []float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, kernelErrorf("Polynomial.Eval", err)
	}
	if err := checkPair(x, y); err != nil {
		return 0, kernelErrorf("Polynomial.Eval", err)
	}

	return math.Pow(p.Gamma*floats.Dot(x, y)+p.Offset, float64(p.Degree)), nil
}

// Gram applies the polynomial map element-wise to X·Xᵀ.
// Complexity: O(n²p + n²).
func (p Polynomial) Gram(X *matrix.Dense) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, kernelErrorf("Polynomial.Gram", err)
	}
	K, err := matrix.Gram(X)
	if err != nil {
		return nil, kernelErrorf("Polynomial.Gram", err)
	}
	deg := float64(p.Degree)
	if err = K.Apply(func(_, _ int, v float64) float64 {
		return math.Pow(p.Gamma*v+p.Offset, deg)
	}); err != nil {
		return nil, kernelErrorf("Polynomial.Gram", err)
	}

	return K, nil
}

// ParseFunc builds a Func from its serialisable description.
// Kind is case-insensitive; "gaussian" is accepted for rbf and "poly" for
// polynomial. Zero polynomial fields take DefaultDegree, DefaultGamma and
// DefaultOffset; RBF has no default bandwidth.
//
// Errors: ErrUnknownKind, ErrInvalidParameter.
func ParseFunc(p Params) (Func, error) {
	var f Func
	switch strings.ToLower(strings.TrimSpace(p.Kind)) {
	case KindLinear, "":
		f = Linear{Scale: p.Scale}
	case KindRBF, "gaussian":
		f = RBF{Sigma: p.Sigma}
	case KindPolynomial, "poly":
		poly := Polynomial{Degree: p.Degree, Gamma: p.Gamma, Offset: p.Offset}
		if poly.Degree == 0 {
			poly.Degree = DefaultDegree
		}
		if poly.Gamma == 0 {
			poly.Gamma = DefaultGamma
		}
		if poly.Offset == 0 {
			poly.Offset = DefaultOffset
		}
		f = poly
	default:
		return nil, kernelErrorf("ParseFunc", fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind))
	}
	if err := f.Validate(); err != nil {
		return nil, kernelErrorf("ParseFunc", err)
	}

	return f, nil
}
