// SPDX-License-Identifier: MIT

package importance

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/kfusion/kpca"
)

// Options configures Compute.
type Options struct {
	workers  int
	features map[string][]string // block name → requested features; nil = all
	decomp   []kpca.Option
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithWorkers bounds the number of concurrent permutation tasks.
// Panics if n < 1. The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("importance: WithWorkers(%d): must be >= 1", n))
	}

	return func(o *Options) { o.workers = n }
}

// WithFeatures restricts scoring to the named features of the named block.
// Calls accumulate; blocks never mentioned are skipped once any
// WithFeatures is given. Names are resolved by Compute, which reports
// ErrUnknownBlock or ErrUnknownFeature.
func WithFeatures(block string, names ...string) Option {
	names = append([]string(nil), names...)

	return func(o *Options) {
		if o.features == nil {
			o.features = make(map[string][]string)
		}
		o.features[block] = append(o.features[block], names...)
	}
}

// WithDecomposeOptions forwards options to every kpca.Decompose call.
func WithDecomposeOptions(opts ...kpca.Option) Option {
	return func(o *Options) { o.decomp = append(o.decomp, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: runtime.GOMAXPROCS(0)}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
