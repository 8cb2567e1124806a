// SPDX-License-Identifier: MIT

package importance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kfusion/kernel"
	"gonum.org/v1/gonum/floats"
)

// validate checks the shape of Input; kernels and reference are checked
// by Compute once they are known.
func validate(in Input) error {
	if len(in.Blocks) == 0 {
		return fmt.Errorf("%w: no blocks", ErrInvalidParameter)
	}
	if in.Components < 1 {
		return fmt.Errorf("%w: components=%d", ErrInvalidParameter, in.Components)
	}
	if len(in.Funcs) != len(in.Blocks) {
		return fmt.Errorf("%w: %d kernel functions for %d blocks", ErrDimensionMismatch, len(in.Funcs), len(in.Blocks))
	}
	if len(in.Weights) != len(in.Blocks) {
		return fmt.Errorf("%w: %d weights for %d blocks", ErrDimensionMismatch, len(in.Weights), len(in.Blocks))
	}
	if err := validateWeights(in.Weights); err != nil {
		return err
	}
	for m, f := range in.Funcs {
		if f == nil {
			return fmt.Errorf("%w: kernel function %d is nil", ErrInvalidParameter, m)
		}
	}

	return kernel.SameSamples(in.Blocks...)
}

// weightTol bounds |Σβ − 1|.
const weightTol = 1e-8

// validateWeights requires β on the probability simplex: finite, β ≥ 0 and
// Σβ = 1 within weightTol.
func validateWeights(w []float64) error {
	for m, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: weight %d is %g, want a finite value >= 0", ErrInvalidParameter, m, v)
		}
	}
	if sum := floats.Sum(w); math.Abs(sum-1) > weightTol {
		return fmt.Errorf("%w: weights sum to %g, want 1", ErrInvalidParameter, sum)
	}

	return nil
}

// resolveTargets lists the (block, feature) tasks in block-major,
// feature-minor order. A nil selection means every feature of every block.
func resolveTargets(blocks []*kernel.Block, sel map[string][]string) ([]target, error) {
	var out []target
	if sel == nil {
		for m, b := range blocks {
			for j := 0; j < b.P(); j++ {
				out = append(out, target{block: m, feature: j})
			}
		}

		return out, nil
	}

	byName := make(map[string]int, len(blocks))
	for m, b := range blocks {
		byName[b.Name()] = m
	}
	picked := make([]map[int]bool, len(blocks))
	for name, features := range sel {
		m, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBlock, name)
		}
		if picked[m] == nil {
			picked[m] = make(map[int]bool)
		}
		for _, f := range features {
			j, err := blocks[m].FeatureIndex(f)
			if err != nil {
				return nil, err
			}
			picked[m][j] = true
		}
	}
	for m, b := range blocks {
		for j := 0; j < b.P(); j++ {
			if picked[m][j] {
				out = append(out, target{block: m, feature: j})
			}
		}
	}

	return out, nil
}
