// SPDX-License-Identifier: MIT

package combine

import (
	"fmt"
	"math"
)

// Default knobs of the UMKL solvers.
const (
	DefaultNeighbors = 5
	DefaultLambda    = 0.25
	DefaultEntropy   = 0.05
	DefaultRidge     = 0.1
	DefaultMaxIter   = 10000
	DefaultTolerance = 1e-10
)

// Options configures Combine. Build it with Option values; the zero value is
// not meaningful, use NewOptions.
type Options struct {
	neighbors int     // k of the per-kernel k-NN graphs
	lambda    float64 // weight of the redundancy term (λ ≥ 0)
	entropy   float64 // γ > 0, full-UMKL only
	ridge     float64 // μ ≥ 0, makes the quadratic strictly convex
	maxIter   int     // optimizer step budget
	tol       float64 // stop when ‖β⁽ᵗ⁺¹⁾ − β⁽ᵗ⁾‖∞ < tol
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithNeighbors sets k for the k-NN topology graphs (clamped to n−1 at run time).
// Panics if k < 1.
func WithNeighbors(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("combine: WithNeighbors(%d): k must be >= 1", k))
	}

	return func(o *Options) { o.neighbors = k }
}

// WithLambda sets λ ≥ 0, the redundancy penalty. Panics on negative or non-finite λ.
func WithLambda(lambda float64) Option {
	if !(lambda >= 0) || math.IsInf(lambda, 0) {
		panic(fmt.Sprintf("combine: WithLambda(%g): lambda must be finite and >= 0", lambda))
	}

	return func(o *Options) { o.lambda = lambda }
}

// WithEntropy sets γ > 0 for full-UMKL. Panics on non-positive or non-finite γ.
func WithEntropy(gamma float64) Option {
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		panic(fmt.Sprintf("combine: WithEntropy(%g): gamma must be finite and > 0", gamma))
	}

	return func(o *Options) { o.entropy = gamma }
}

// WithRidge sets μ ≥ 0, the weight of (μ/2)‖β‖². With μ > 0 the UMKL
// objective has a unique minimizer even when kernels are redundant.
// Panics on negative or non-finite μ.
func WithRidge(mu float64) Option {
	if !(mu >= 0) || math.IsInf(mu, 0) {
		panic(fmt.Sprintf("combine: WithRidge(%g): mu must be finite and >= 0", mu))
	}

	return func(o *Options) { o.ridge = mu }
}

// WithMaxIter sets the optimizer budget. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("combine: WithMaxIter(%d): must be >= 1", n))
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTolerance sets the ‖Δβ‖∞ stopping threshold. Panics on non-positive or NaN.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("combine: WithTolerance(%g): must be finite and > 0", tol))
	}

	return func(o *Options) { o.tol = tol }
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		neighbors: DefaultNeighbors,
		lambda:    DefaultLambda,
		entropy:   DefaultEntropy,
		ridge:     DefaultRidge,
		maxIter:   DefaultMaxIter,
		tol:       DefaultTolerance,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Neighbors returns k.
func (o Options) Neighbors() int { return o.neighbors }

// Lambda returns λ.
func (o Options) Lambda() float64 { return o.lambda }

// Entropy returns γ.
func (o Options) Entropy() float64 { return o.entropy }

// Ridge returns μ.
func (o Options) Ridge() float64 { return o.ridge }

// MaxIter returns the step budget.
func (o Options) MaxIter() int { return o.maxIter }

// Tolerance returns the stopping threshold.
func (o Options) Tolerance() float64 { return o.tol }
