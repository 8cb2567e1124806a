// SPDX-License-Identifier: MIT

package fusion

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/kfusion/combine"
	"github.com/katalvlaran/kfusion/importance"
	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/kpca"
	"github.com/katalvlaran/kfusion/matrix"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs integrations and logs their progress.
type Pipeline struct {
	log logrus.FieldLogger
}

// New returns a Pipeline logging to log. A nil log discards output.
func New(log logrus.FieldLogger) *Pipeline {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Pipeline{log: log}
}

// Result holds the artifacts of one run. On failure the fields of the stages
// that completed are set and the rest are nil.
type Result struct {
	Blocks        []*kernel.Block
	Kernels       []*matrix.Dense // centered, aligned with Blocks
	Combination   *combine.Result
	Decomposition *kpca.Result
	Importance    []importance.Record // nil unless importance is enabled
}

// RunConfig loads the configured CSV blocks and runs the integration.
func (p *Pipeline) RunConfig(ctx context.Context, cfg *Config) (*Result, error) {
	blocks := make([]*kernel.Block, len(cfg.Blocks))
	var err error
	for m, bc := range cfg.Blocks {
		path := cfg.resolve(bc.Path)
		if blocks[m], err = LoadBlockCSV(bc.Name, path); err != nil {
			return nil, err
		}
		p.log.WithFields(logrus.Fields{
			"block":    bc.Name,
			"path":     path,
			"samples":  blocks[m].N(),
			"features": blocks[m].P(),
		}).Info("loaded block")
	}

	return p.Run(ctx, blocks, cfg)
}

// Run integrates already loaded blocks. cfg.Blocks must list the blocks in
// the same order, by name; their Path fields are not used.
//
// Implementation:
//   - Stage 1: validate cfg and check the blocks share their samples.
//   - Stage 2: compute one centered kernel per block concurrently.
//   - Stage 3: combine, decompose the composite, optionally score features.
//
// Errors: ErrInvalidConfig, ErrBlockMismatch, and any error of the numeric
// packages, wrapped with the stage that failed.
func (p *Pipeline) Run(ctx context.Context, blocks []*kernel.Block, cfg *Config) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := matchBlocks(blocks, cfg.Blocks); err != nil {
		return nil, err
	}
	if err := kernel.SameSamples(blocks...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBlockMismatch, err)
	}
	res := &Result{Blocks: blocks}

	funcs := make([]kernel.Func, len(blocks))
	var err error
	for m, bc := range cfg.Blocks {
		if funcs[m], err = kernel.ParseFunc(bc.Kernel); err != nil {
			return res, fmt.Errorf("fusion: kernels: %w", err)
		}
	}

	start := time.Now()
	kernels := make([]*matrix.Dense, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	for m := range blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			K, err := kernel.ComputeCentered(blocks[m], funcs[m])
			if err != nil {
				return fmt.Errorf("block %q: %w", blocks[m].Name(), err)
			}
			kernels[m] = K

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return res, fmt.Errorf("fusion: kernels: %w", err)
	}
	res.Kernels = kernels
	p.log.WithFields(logrus.Fields{
		"blocks":  len(kernels),
		"samples": blocks[0].N(),
		"took":    time.Since(start),
	}).Info("computed centered kernels")

	method, _ := combine.ParseMethod(cfg.Method) // checked by Validate
	start = time.Now()
	comb, err := combine.CombineContext(ctx, kernels, method, cfg.combineOptions()...)
	if err != nil {
		p.log.WithError(err).WithField("method", method).Error("combination failed")
		return res, fmt.Errorf("fusion: combine: %w", err)
	}
	res.Combination = comb
	fields := logrus.Fields{
		"method":     comb.Method,
		"iterations": comb.Iterations,
		"took":       time.Since(start),
	}
	for m, b := range blocks {
		fields["weight."+b.Name()] = comb.Weights[m]
	}
	p.log.WithFields(fields).Info("combined kernels")

	dec, err := kpca.Decompose(comb.Composite, cfg.Components)
	if err != nil {
		return res, fmt.Errorf("fusion: kpca: %w", err)
	}
	res.Decomposition = dec
	p.log.WithFields(logrus.Fields{
		"components": dec.Components(),
		"rank":       dec.Rank,
		"explained":  dec.ExplainedVariance(),
	}).Info("decomposed composite kernel")

	if !cfg.Importance.Enabled {
		return res, nil
	}
	start = time.Now()
	opts := importanceOptions(cfg.Importance)
	recs, err := importance.Compute(ctx, importance.Input{
		Blocks:     blocks,
		Funcs:      funcs,
		Kernels:    kernels,
		Weights:    comb.Weights,
		Reference:  dec,
		Components: cfg.Components,
		Seed:       cfg.Seed,
	}, opts...)
	if err != nil {
		return res, fmt.Errorf("fusion: importance: %w", err)
	}
	res.Importance = recs
	p.log.WithFields(logrus.Fields{
		"records": len(recs),
		"seed":    cfg.Seed,
		"took":    time.Since(start),
	}).Info("computed permutation importance")

	return res, nil
}

func importanceOptions(ic ImportanceConfig) []importance.Option {
	var opts []importance.Option
	if ic.Workers > 0 {
		opts = append(opts, importance.WithWorkers(ic.Workers))
	}
	for block, names := range ic.Features {
		opts = append(opts, importance.WithFeatures(block, names...))
	}

	return opts
}

// matchBlocks checks that blocks line up one to one with the configuration.
func matchBlocks(blocks []*kernel.Block, cfg []BlockConfig) error {
	if len(blocks) != len(cfg) {
		return fmt.Errorf("%w: %d blocks for %d configured", ErrBlockMismatch, len(blocks), len(cfg))
	}
	for m, b := range blocks {
		if b == nil {
			return fmt.Errorf("%w: block %d is nil", ErrBlockMismatch, m)
		}
		if b.Name() != cfg[m].Name {
			return fmt.Errorf("%w: block %d is %q, configured %q", ErrBlockMismatch, m, b.Name(), cfg[m].Name)
		}
	}

	return nil
}
