// SPDX-License-Identifier: MIT

// Package combine - built-in strategies.
package combine

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/kfusion/matrix"
	"gonum.org/v1/gonum/floats"
)

// ctxPollEvery is how many optimizer steps run between context checks.
const ctxPollEvery = 64

// statisGapTol is the relative gap λ₁ − λ₂ ≥ statisGapTol·λ₁ below which the
// leading eigenvector of the RV matrix is considered ill-defined.
const statisGapTol = 1e-10

type equalStrategy struct{}

func (equalStrategy) Method() Method { return Equal }

// Weights returns βₘ = 1/M. It never fails.
func (equalStrategy) Weights(_ context.Context, kernels []*matrix.Dense, _ Options) ([]float64, int, error) {
	beta := make([]float64, len(kernels))
	w := 1 / float64(len(kernels))
	for i := range beta {
		beta[i] = w
	}

	return beta, 0, nil
}

type statisStrategy struct{}

func (statisStrategy) Method() Method { return STATIS }

// Weights takes the leading eigenvector of the RV matrix.
//
// Implementation:
//   - Stage 1: C = RVMatrix(kernels); zero kernels are degenerate.
//   - Stage 2: v = leading eigenvector of C (simple eigenvalue required).
//   - Stage 3: flip v if Σv < 0, clamp negatives to 0, renormalize to Σ = 1.
func (statisStrategy) Weights(_ context.Context, kernels []*matrix.Dense, _ Options) ([]float64, int, error) {
	C, err := RVMatrix(kernels)
	if err != nil {
		return nil, 0, err
	}
	M := len(kernels)
	if M == 1 {
		return []float64{1}, 0, nil
	}
	vals, vecs, err := matrix.EigenSym(C)
	if err != nil {
		return nil, 0, err
	}
	if !(vals[0] > 0) || vals[0]-vals[1] < statisGapTol*vals[0] {
		return nil, 0, fmt.Errorf("%w: RV matrix has no simple leading eigenvalue (λ₁=%g, λ₂=%g)", ErrDegenerateInput, vals[0], vals[1])
	}
	v, err := vecs.Col(0)
	if err != nil {
		return nil, 0, err
	}
	if floats.Sum(v) < 0 {
		floats.Scale(-1, v)
	}
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
	}
	s := floats.Sum(v)
	if !(s > 0) {
		return nil, 0, fmt.Errorf("%w: leading eigenvector has no positive mass", ErrDegenerateInput)
	}
	floats.Scale(1/s, v)

	return v, 0, nil
}

// umklProblem holds the data of f(β) = c·β + (λ/2)βᵀCβ + (μ/2)‖β‖².
type umklProblem struct {
	c      []float64 // topology distortions
	C      []float64 // row-major M×M RV matrix
	M      int
	lambda float64
	ridge  float64
	lip    float64 // Lipschitz bound of ∇f: λ·(max absolute row sum of C) + μ
}

func newUMKLProblem(kernels []*matrix.Dense, o Options) (*umklProblem, error) {
	c, err := TopologyDistortion(kernels, o.neighbors)
	if err != nil {
		return nil, err
	}
	C, err := RVMatrix(kernels)
	if err != nil {
		return nil, err
	}
	M := len(kernels)
	p := &umklProblem{c: c, C: C.RawData(), M: M, lambda: o.lambda, ridge: o.ridge}
	var row, gersh float64
	for i := 0; i < M; i++ {
		row = 0
		for j := 0; j < M; j++ {
			row += math.Abs(p.C[i*M+j])
		}
		gersh = math.Max(gersh, row)
	}
	p.lip = p.lambda*gersh + p.ridge

	return p, nil
}

// gradient writes ∇f(β) = c + λCβ + μβ into g.
func (p *umklProblem) gradient(beta, g []float64) {
	var i int
	for i = 0; i < p.M; i++ {
		g[i] = p.c[i] + p.lambda*floats.Dot(p.C[i*p.M:(i+1)*p.M], beta) + p.ridge*beta[i]
	}
}

// iterate runs step until ‖β⁽ᵗ⁺¹⁾ − β⁽ᵗ⁾‖∞ < tol and reports the steps taken.
func iterate(ctx context.Context, beta []float64, o Options, step func(beta, next []float64)) ([]float64, int, error) {
	next := make([]float64, len(beta))
	for it := 0; it < o.maxIter; it++ {
		if it%ctxPollEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, it, fmt.Errorf("%w: %w", ErrConvergence, err)
			}
		}
		step(beta, next)
		delta := floats.Distance(beta, next, math.Inf(1))
		beta, next = next, beta
		if delta < o.tol {
			return beta, it + 1, nil
		}
	}

	return nil, o.maxIter, fmt.Errorf("%w: no convergence after %d steps (tol %g)", ErrConvergence, o.maxIter, o.tol)
}

func uniform(M int) []float64 {
	beta := make([]float64, M)
	for i := range beta {
		beta[i] = 1 / float64(M)
	}

	return beta
}

type sparseUMKLStrategy struct{}

func (sparseUMKLStrategy) Method() Method { return SparseUMKL }

// Weights minimizes f over the simplex by projected gradient:
// β ← Π_Δ(β − η∇f(β)) with η = 1/L, L the Lipschitz bound of ∇f (η = 1
// when L = 0). The projection
// zeroes every coordinate whose gradient is too large, which is what lets a
// kernel drop out of the composite entirely.
func (sparseUMKLStrategy) Weights(ctx context.Context, kernels []*matrix.Dense, o Options) ([]float64, int, error) {
	p, err := newUMKLProblem(kernels, o)
	if err != nil {
		return nil, 0, err
	}
	eta := 1.0
	if p.lip > 0 {
		eta = 1 / p.lip
	}
	g := make([]float64, p.M)
	trial := make([]float64, p.M)

	return iterate(ctx, uniform(p.M), o, func(beta, next []float64) {
		p.gradient(beta, g)
		floats.AddScaledTo(trial, beta, -eta, g)
		copy(next, ProjectSimplex(trial))
	})
}

type fullUMKLStrategy struct{}

func (fullUMKLStrategy) Method() Method { return FullUMKL }

// Weights minimizes f(β) + γΣβ log β by entropic mirror descent:
//
//	θ ← log β − η(∇f(β) + γ(log β + 1)),  β = softmax(θ),  η = 1/(L + γ).
//
// The softmax parametrization keeps every βₘ strictly positive; underflowed
// coordinates are lifted to the smallest positive float.
func (fullUMKLStrategy) Weights(ctx context.Context, kernels []*matrix.Dense, o Options) ([]float64, int, error) {
	p, err := newUMKLProblem(kernels, o)
	if err != nil {
		return nil, 0, err
	}
	gamma := o.entropy
	eta := 1 / (p.lip + gamma)
	g := make([]float64, p.M)
	theta := make([]float64, p.M)

	return iterate(ctx, uniform(p.M), o, func(beta, next []float64) {
		p.gradient(beta, g)
		for i := range theta {
			theta[i] = math.Log(beta[i]) - eta*(g[i]+gamma*(math.Log(beta[i])+1))
		}
		softmax(theta, next)
	})
}

// softmax writes exp(θᵢ − max θ)/Σ into out, flooring at the smallest
// positive float so no coordinate is exactly zero.
func softmax(theta, out []float64) {
	hi := floats.Max(theta)
	var s float64
	for i, t := range theta {
		out[i] = math.Exp(t - hi)
		s += out[i]
	}
	floats.Scale(1/s, out)
	for i := range out {
		if out[i] <= 0 {
			out[i] = math.SmallestNonzeroFloat64
		}
	}
}
