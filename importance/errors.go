// SPDX-License-Identifier: MIT

package importance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/matrix"
)

var (
	// ErrUnknownFeature is kernel.ErrUnknownFeature: a requested feature name
	// is absent from its block.
	ErrUnknownFeature = kernel.ErrUnknownFeature

	// ErrUnknownBlock reports a WithFeatures block name matching no input block.
	ErrUnknownBlock = errors.New("importance: unknown block")

	// ErrInvalidParameter reports malformed Input (missing blocks or kernel
	// functions, weights off the simplex, components < 1).
	ErrInvalidParameter = errors.New("importance: invalid parameter")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

func importanceErrorf(tag string, err error) error {
	return fmt.Errorf("importance: %s: %w", tag, err)
}
