// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/kfusion/matrix"

// Compute builds the n×n kernel of block b under f.
//
// Implementation:
//   - Stage 1: reject nil inputs, validate f's parameters.
//   - Stage 2: delegate to f.Gram on the block's matrix (never mutated).
//
// Errors: ErrInvalidParameter, plus whatever f.Gram reports.
// Complexity: O(n²p) for the built-in functions.
func Compute(b *Block, f Func) (*matrix.Dense, error) {
	if b == nil {
		return nil, kernelErrorf("Compute", invalidf("nil block"))
	}
	if f == nil {
		return nil, kernelErrorf("Compute", invalidf("nil kernel function for block %q", b.name))
	}
	if err := f.Validate(); err != nil {
		return nil, kernelErrorf("Compute", err)
	}
	K, err := f.Gram(b.x)
	if err != nil {
		return nil, kernelErrorf("Compute", err)
	}

	return K, nil
}

// ComputeCentered is Center(Compute(b, f)).
func ComputeCentered(b *Block, f Func) (*matrix.Dense, error) {
	K, err := Compute(b, f)
	if err != nil {
		return nil, err
	}

	return Center(K)
}
