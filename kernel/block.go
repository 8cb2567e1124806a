// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/kfusion/matrix"
)

// Block is one data modality: an n×p matrix whose rows are samples and whose
// columns are named features. A Block is immutable after NewBlock; accessors
// return copies.
type Block struct {
	name     string
	x        *matrix.Dense
	features []string
	samples  []string
	index    map[string]int // feature name → column
}

// NewBlock validates and snapshots X together with its labels.
//
// Empty features/samples slices are filled with "f0…f(p-1)" and "s0…s(n-1)".
// X is copied; later mutation of X does not affect the block.
//
// Errors:
//   - ErrInvalidParameter: nil or empty X, non-finite values.
//   - ErrDimensionMismatch: len(features) != p or len(samples) != n.
//   - ErrDuplicateName: repeated feature or sample names.
func NewBlock(name string, X *matrix.Dense, features, samples []string) (*Block, error) {
	if X == nil || X.Rows() == 0 || X.Cols() == 0 {
		return nil, kernelErrorf("NewBlock", invalidf("block %q has no data", name))
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, kernelErrorf("NewBlock", fmt.Errorf("%w: %w", ErrInvalidParameter, err))
	}
	n, p := X.Rows(), X.Cols()

	fs, err := labels(features, p, "f")
	if err != nil {
		return nil, kernelErrorf("NewBlock: features", err)
	}
	ss, err := labels(samples, n, "s")
	if err != nil {
		return nil, kernelErrorf("NewBlock: samples", err)
	}
	if _, err = indexNames(ss); err != nil {
		return nil, kernelErrorf("NewBlock: samples", err)
	}
	idx, err := indexNames(fs)
	if err != nil {
		return nil, kernelErrorf("NewBlock: features", err)
	}

	return &Block{name: name, x: X.Copy(), features: fs, samples: ss, index: idx}, nil
}

// labels returns a private copy of names, or generated names when empty.
func labels(names []string, want int, prefix string) ([]string, error) {
	if len(names) == 0 {
		out := make([]string, want)
		for i := range out {
			out[i] = prefix + strconv.Itoa(i)
		}

		return out, nil
	}
	if len(names) != want {
		return nil, fmt.Errorf("%w: %d names for %d entries", ErrDimensionMismatch, len(names), want)
	}

	return append([]string(nil), names...), nil
}

func indexNames(names []string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, s := range names {
		if _, dup := idx[s]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s)
		}
		idx[s] = i
	}

	return idx, nil
}

// Name returns the block identifier.
func (b *Block) Name() string { return b.name }

// N returns the number of samples (rows).
func (b *Block) N() int { return b.x.Rows() }

// P returns the number of features (columns).
func (b *Block) P() int { return b.x.Cols() }

// Data returns a copy of the n×p matrix.
func (b *Block) Data() *matrix.Dense { return b.x.Copy() }

// Features returns a copy of the ordered feature names.
func (b *Block) Features() []string { return append([]string(nil), b.features...) }

// Samples returns a copy of the ordered sample identifiers.
func (b *Block) Samples() []string { return append([]string(nil), b.samples...) }

// FeatureIndex returns the column of the named feature.
// Errors: ErrUnknownFeature.
func (b *Block) FeatureIndex(name string) (int, error) {
	j, ok := b.index[name]
	if !ok {
		return -1, fmt.Errorf("kernel: block %q: %w: %q", b.name, ErrUnknownFeature, name)
	}

	return j, nil
}

// Permuted returns a copy of b in which column j has been shuffled across
// samples (Fisher–Yates driven by rng). Every other column, and the
// receiver, are unchanged.
//
// Errors: ErrInvalidParameter for a nil rng, ErrUnknownFeature for j out of range.
// Complexity: O(n·p) for the copy, O(n) for the shuffle.
func (b *Block) Permuted(j int, rng *rand.Rand) (*Block, error) {
	if rng == nil {
		return nil, kernelErrorf("Permuted", invalidf("nil random source"))
	}
	if j < 0 || j >= b.P() {
		return nil, kernelErrorf("Permuted", fmt.Errorf("%w: column %d", ErrUnknownFeature, j))
	}
	col, err := b.x.Col(j)
	if err != nil {
		return nil, kernelErrorf("Permuted", err)
	}
	var i, k int
	for i = len(col) - 1; i > 0; i-- {
		k = rng.Intn(i + 1)
		col[i], col[k] = col[k], col[i]
	}

	x := b.x.Copy()
	for i = range col {
		if err = x.Set(i, j, col[i]); err != nil {
			return nil, kernelErrorf("Permuted", err)
		}
	}

	return &Block{name: b.name, x: x, features: b.features, samples: b.samples, index: b.index}, nil
}

// SameSamples reports ErrDimensionMismatch unless all blocks have the same
// number of samples in the same order.
func SameSamples(blocks ...*Block) error {
	if len(blocks) == 0 {
		return nil
	}
	ref := blocks[0]
	for m, b := range blocks {
		if b == nil {
			return kernelErrorf("SameSamples", invalidf("block %d is nil", m))
		}
		if b.N() != ref.N() {
			return kernelErrorf("SameSamples", fmt.Errorf("%w: block %q has %d samples, block %q has %d",
				ErrDimensionMismatch, b.name, b.N(), ref.name, ref.N()))
		}
		for i, s := range b.samples {
			if s != ref.samples[i] {
				return kernelErrorf("SameSamples", fmt.Errorf("%w: block %q sample %d is %q, want %q",
					ErrDimensionMismatch, b.name, i, s, ref.samples[i]))
			}
		}
	}

	return nil
}
