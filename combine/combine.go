// SPDX-License-Identifier: MIT

package combine

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/kfusion/matrix"
)

// Combine is CombineContext with context.Background().
func Combine(kernels []*matrix.Dense, method Method, opts ...Option) (*Result, error) {
	return CombineContext(context.Background(), kernels, method, opts...)
}

// CombineContext computes simplex weights for kernels under method and
// returns them with the composite kernel Σ βₘKₘ.
//
// Implementation:
//   - Stage 1: resolve the strategy; validate that every kernel is non-nil,
//     finite and n×n with the same n.
//   - Stage 2: Strategy.Weights (ctx is polled by the iterative solvers;
//     cancellation surfaces as ErrConvergence).
//   - Stage 3: Composite(kernels, β).
//
// Inputs are not mutated. The kernels are expected to be centered and share
// sample order; neither property is checked here.
//
// Errors: ErrUnknownMethod, ErrInvalidParameter, ErrDimensionMismatch,
// ErrDegenerateInput, ErrConvergence.
func CombineContext(ctx context.Context, kernels []*matrix.Dense, method Method, opts ...Option) (*Result, error) {
	s, err := StrategyFor(method)
	if err != nil {
		return nil, combineErrorf("Combine", err)
	}
	if err = validateKernels(kernels); err != nil {
		return nil, combineErrorf("Combine", err)
	}
	o := NewOptions(opts...)

	beta, iters, err := s.Weights(ctx, kernels, o)
	if err != nil {
		return nil, combineErrorf(string(method), err)
	}
	K, err := Composite(kernels, beta)
	if err != nil {
		return nil, combineErrorf("Combine", err)
	}

	return &Result{Method: method, Weights: beta, Composite: K, Iterations: iters}, nil
}

// validateKernels checks the shared preconditions of every strategy.
func validateKernels(kernels []*matrix.Dense) error {
	if len(kernels) == 0 {
		return fmt.Errorf("%w: no kernels", ErrInvalidParameter)
	}
	var n int
	for m, K := range kernels {
		if err := matrix.ValidateSquare(K); err != nil {
			return fmt.Errorf("kernel %d: %w", m, err)
		}
		if err := matrix.ValidateFinite(K); err != nil {
			return fmt.Errorf("kernel %d: %w", m, err)
		}
		if m == 0 {
			n = K.Rows()
			continue
		}
		if K.Rows() != n {
			return fmt.Errorf("kernel %d is %d×%d, kernel 0 is %d×%d: %w", m, K.Rows(), K.Rows(), n, n, ErrDimensionMismatch)
		}
	}

	return nil
}

// Composite returns Σ βₘKₘ, accumulated in kernel order.
//
// Errors: ErrInvalidParameter (empty input, non-finite weight),
// ErrDimensionMismatch (len(beta) != len(kernels), unequal kernel sizes).
// Complexity: O(M·n²).
func Composite(kernels []*matrix.Dense, beta []float64) (*matrix.Dense, error) {
	if err := validateKernels(kernels); err != nil {
		return nil, combineErrorf("Composite", err)
	}
	if len(beta) != len(kernels) {
		return nil, combineErrorf("Composite", fmt.Errorf("%w: %d weights for %d kernels", ErrDimensionMismatch, len(beta), len(kernels)))
	}
	for m, b := range beta {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, combineErrorf("Composite", fmt.Errorf("%w: weight %d is %g", ErrInvalidParameter, m, b))
		}
	}

	n := kernels[0].Rows()
	acc, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, combineErrorf("Composite", err)
	}
	for m, K := range kernels {
		if beta[m] == 0 {
			continue
		}
		if acc, err = matrix.AddScaled(acc, beta[m], K); err != nil {
			return nil, combineErrorf("Composite", err)
		}
	}

	return acc, nil
}
