// SPDX-License-Identifier: MIT

package importance

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/kfusion/combine"
	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/kpca"
	"github.com/katalvlaran/kfusion/matrix"
	"golang.org/x/sync/errgroup"
)

// Compute scores every target feature against the leading in.Components
// components of the reference decomposition.
//
// Implementation:
//   - Stage 1: validate Input, resolve targets, fill in missing kernels,
//     composite and reference decomposition.
//   - Stage 2: run one task per target on an errgroup bounded by WithWorkers.
//     Each task permutes its column with its own seeded generator, rebuilds
//     the composite and decomposes it.
//   - Stage 3: write Crone–Crosby distances into preallocated slots, so the
//     result order is (block, feature, component) whatever the scheduling.
//
// A block with weight 0 does not contribute to the composite; its features
// are reported with distance 0 without decomposing.
//
// Errors: ErrInvalidParameter, ErrDimensionMismatch, ErrUnknownBlock,
// ErrUnknownFeature, any kernel/kpca error of a task, and ctx.Err() when
// cancelled. The first failing task cancels the rest.
func Compute(ctx context.Context, in Input, opts ...Option) ([]Record, error) {
	o := gatherOptions(opts...)
	if err := validate(in); err != nil {
		return nil, importanceErrorf("Compute", err)
	}
	targets, err := resolveTargets(in.Blocks, o.features)
	if err != nil {
		return nil, importanceErrorf("Compute", err)
	}

	kernels := in.Kernels
	if kernels == nil {
		kernels = make([]*matrix.Dense, len(in.Blocks))
		for m, b := range in.Blocks {
			if kernels[m], err = kernel.ComputeCentered(b, in.Funcs[m]); err != nil {
				return nil, importanceErrorf("Compute", err)
			}
		}
	} else if len(kernels) != len(in.Blocks) {
		return nil, importanceErrorf("Compute", fmt.Errorf("%w: %d kernels for %d blocks", ErrDimensionMismatch, len(kernels), len(in.Blocks)))
	}
	composite, err := combine.Composite(kernels, in.Weights)
	if err != nil {
		return nil, importanceErrorf("Compute", err)
	}
	if composite.Rows() != in.Blocks[0].N() {
		return nil, importanceErrorf("Compute", fmt.Errorf("%w: kernels are %d×%d, blocks have %d samples",
			ErrDimensionMismatch, composite.Rows(), composite.Rows(), in.Blocks[0].N()))
	}

	ref := in.Reference
	if ref == nil {
		if ref, err = kpca.Decompose(composite, in.Components, o.decomp...); err != nil {
			return nil, importanceErrorf("Compute", err)
		}
	} else if ref.Eigen.Vectors == nil || ref.Eigen.Vectors.Rows() != composite.Rows() || len(ref.Eigen.Values) < in.Components {
		return nil, importanceErrorf("Compute", fmt.Errorf("%w: reference decomposition does not match the kernels", ErrDimensionMismatch))
	}
	refVecs := make([][]float64, in.Components)
	for c := range refVecs {
		if refVecs[c], err = ref.Vector(c); err != nil {
			return nil, importanceErrorf("Compute", err)
		}
	}

	nc := in.Components
	records := make([]Record, len(targets)*nc)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for t, tg := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b := in.Blocks[tg.block]
			feature := b.Features()[tg.feature]
			slot := records[t*nc : (t+1)*nc]
			for c := range slot {
				slot[c] = Record{Block: b.Name(), Feature: feature, Component: c}
			}
			if in.Weights[tg.block] == 0 {
				return nil
			}

			perturbed, err := perturb(b, tg.feature, in.Funcs[tg.block], taskRNG(in.Seed, t),
				composite, kernels[tg.block], in.Weights[tg.block])
			if err != nil {
				return fmt.Errorf("block %q feature %q: %w", b.Name(), feature, err)
			}
			res, err := kpca.Decompose(perturbed, nc, o.decomp...)
			if err != nil {
				return fmt.Errorf("block %q feature %q: %w", b.Name(), feature, err)
			}
			for c := range slot {
				alt, err := res.Vector(c)
				if err != nil {
					return err
				}
				if slot[c].Distance, err = CroneCrosby(refVecs[c], alt); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, importanceErrorf("Compute", err)
	}

	return records, nil
}

// perturb returns composite + β·(K̃ − K) where K̃ is the centered kernel of b
// with column j permuted by rng.
func perturb(b *kernel.Block, j int, f kernel.Func, rng *rand.Rand,
	composite, K *matrix.Dense, beta float64) (*matrix.Dense, error) {
	pb, err := b.Permuted(j, rng)
	if err != nil {
		return nil, err
	}
	Kp, err := kernel.ComputeCentered(pb, f)
	if err != nil {
		return nil, err
	}
	diff, err := matrix.Sub(Kp, K)
	if err != nil {
		return nil, err
	}

	return matrix.AddScaled(composite, beta, diff)
}
