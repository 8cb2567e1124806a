// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by symmetry validation and by the
	// Jacobi convergence test on the largest off-diagonal magnitude.
	DefaultEpsilon = 1e-9

	// DefaultMaxIter caps Jacobi rotations. One rotation annihilates one
	// off-diagonal pair, so the budget scales with n²; this default covers
	// kernels of a few hundred samples with room to spare.
	DefaultMaxIter = 1 << 20

	// DefaultSolver selects the LAPACK-backed gonum driver.
	DefaultSolver = SolverLAPACK
)

// Solver selects the symmetric eigensolver used by EigenSym.
type Solver int

const (
	// SolverLAPACK delegates to gonum's mat.EigenSym (dsyev).
	SolverLAPACK Solver = iota

	// SolverJacobi runs classical Jacobi rotations with a rotation budget.
	SolverJacobi
)

// String returns a stable name for logs.
func (s Solver) String() string {
	switch s {
	case SolverLAPACK:
		return "lapack"
	case SolverJacobi:
		return "jacobi"
	default:
		return "unknown"
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid = "matrix: WithMaxIter: maxIter must be > 0"
	panicSolverInvalid  = "matrix: WithSolver: unknown solver"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	maxIter int     // > 0; DefaultMaxIter
	solver  Solver  // DefaultSolver
}

// WithEpsilon sets the numeric tolerance used by structural checks
// (symmetry) and the Jacobi convergence threshold.
//
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIter bounds the number of Jacobi rotations.
// Exceeding the budget makes EigenSym return ErrNoConvergence.
//
// Panics when maxIter <= 0.
func WithMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = maxIter }
}

// WithSolver selects the eigensolver.
//
// Panics on values outside {SolverLAPACK, SolverJacobi}.
func WithSolver(s Solver) Option {
	if s != SolverLAPACK && s != SolverJacobi {
		panic(panicSolverInvalid)
	}

	return func(o *Options) { o.solver = s }
}

// NewOptions resolves opts over the defaults. Exposed so that higher-level
// packages can inspect what EigenSym will run with.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxIter returns the effective Jacobi rotation budget.
func (o Options) MaxIter() int { return o.maxIter }

// Solver returns the effective eigensolver.
func (o Options) Solver() Solver { return o.solver }

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIter,
		solver:  DefaultSolver,
	}
}

// gatherOptions applies user options over defaults in order; nil options are skipped.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
