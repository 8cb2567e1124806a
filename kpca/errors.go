// SPDX-License-Identifier: MIT

package kpca

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kfusion/matrix"
)

var (
	// ErrInsufficientRank reports a request for more components than the
	// centered kernel has strictly positive eigenvalues.
	ErrInsufficientRank = errors.New("kpca: insufficient rank")

	// ErrInvalidParameter reports k < 1.
	ErrInvalidParameter = errors.New("kpca: invalid parameter")

	// ErrConvergence is matrix.ErrNoConvergence (eigensolver budget exhausted).
	ErrConvergence = matrix.ErrNoConvergence

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch (non-square kernel).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

func kpcaErrorf(tag string, err error) error {
	return fmt.Errorf("kpca: %s: %w", tag, err)
}
