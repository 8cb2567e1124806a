// SPDX-License-Identifier: MIT

package kpca

import (
	"fmt"

	"github.com/katalvlaran/kfusion/matrix"
)

// DefaultRankTol is the relative threshold below which eigenvalues count as zero.
const DefaultRankTol = 1e-10

// Options configures Decompose.
type Options struct {
	rankTol float64
	eigen   []matrix.Option
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithRankTol sets the relative rank threshold. Panics unless 0 < tol < 1.
func WithRankTol(tol float64) Option {
	if !(tol > 0 && tol < 1) {
		panic(fmt.Sprintf("kpca: WithRankTol(%g): must be in (0,1)", tol))
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithEigenOptions forwards options (solver, Jacobi budget, symmetry
// epsilon) to matrix.EigenSym.
func WithEigenOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.eigen = append(o.eigen, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{rankTol: DefaultRankTol}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
