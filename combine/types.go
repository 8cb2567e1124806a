// SPDX-License-Identifier: MIT

package combine

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/kfusion/matrix"
)

// Method names a combination strategy.
type Method string

// The closed set of supported methods.
const (
	Equal      Method = "equal"
	STATIS     Method = "STATIS-UMKL"
	FullUMKL   Method = "full-UMKL"
	SparseUMKL Method = "sparse-UMKL"
)

// Methods lists every supported method in a stable order.
func Methods() []Method { return []Method{Equal, STATIS, FullUMKL, SparseUMKL} }

// ParseMethod resolves a method name case-insensitively
// ("statis", "full-umkl", "SPARSE-UMKL" …).
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Methods() {
		if strings.ToLower(string(m)) == key {
			return m, nil
		}
	}
	if key == "statis" {
		return STATIS, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Result is the outcome of one combination. It is never mutated after Combine
// returns.
type Result struct {
	Method     Method
	Weights    []float64     // β, one entry per kernel, on the simplex
	Composite  *matrix.Dense // Σ βₘKₘ
	Iterations int           // optimizer steps; 0 for closed-form methods
}

// Strategy computes simplex weights for a validated, non-empty set of
// equally sized kernels. Implementations must return a fresh slice of length
// len(kernels) and the number of iterations spent.
type Strategy interface {
	Method() Method
	Weights(ctx context.Context, kernels []*matrix.Dense, o Options) ([]float64, int, error)
}

// StrategyFor returns the built-in strategy for m.
// Errors: ErrUnknownMethod.
func StrategyFor(m Method) (Strategy, error) {
	switch m {
	case Equal:
		return equalStrategy{}, nil
	case STATIS:
		return statisStrategy{}, nil
	case FullUMKL:
		return fullUMKLStrategy{}, nil
	case SparseUMKL:
		return sparseUMKLStrategy{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
}
