// SPDX-License-Identifier: MIT

package combine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kfusion/matrix"
)

var (
	// ErrDimensionMismatch reports kernels of different sizes, or a weight
	// vector whose length differs from the number of kernels.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrDegenerateInput reports a mathematically ill-posed combination,
	// e.g. an all-zero kernel or an RV matrix without a simple leading eigenvalue.
	ErrDegenerateInput = errors.New("combine: degenerate input")

	// ErrConvergence reports an optimizer that exhausted its iteration budget
	// or was cancelled. It is matrix.ErrNoConvergence.
	ErrConvergence = matrix.ErrNoConvergence

	// ErrUnknownMethod reports an unrecognised method name.
	ErrUnknownMethod = errors.New("combine: unknown method")

	// ErrInvalidParameter reports an empty kernel list or a malformed weight vector.
	ErrInvalidParameter = errors.New("combine: invalid parameter")
)

// combineErrorf wraps err with an operation tag. Use only when err != nil.
func combineErrorf(tag string, err error) error {
	return fmt.Errorf("combine: %s: %w", tag, err)
}
