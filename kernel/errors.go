// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kfusion/matrix"
)

var (
	// ErrInvalidParameter indicates malformed kernel parameters (σ ≤ 0,
	// degree < 1, …) or a data block with zero rows or columns.
	ErrInvalidParameter = errors.New("kernel: invalid parameter")

	// ErrUnknownFeature indicates a feature name absent from the block.
	ErrUnknownFeature = errors.New("kernel: unknown feature")

	// ErrUnknownKind indicates an unrecognised kernel kind in ParseFunc.
	ErrUnknownKind = errors.New("kernel: unknown kernel kind")

	// ErrDuplicateName indicates repeated feature or sample names within a block.
	ErrDuplicateName = errors.New("kernel: duplicate name")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported so that
	// callers of this package can match it without importing matrix.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// kernelErrorf wraps err with an operation tag. Use only when err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("kernel: %s: %w", tag, err)
}

// invalidf builds an ErrInvalidParameter carrying a formatted detail.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
