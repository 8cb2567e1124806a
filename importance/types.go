// SPDX-License-Identifier: MIT

package importance

import (
	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/kpca"
	"github.com/katalvlaran/kfusion/matrix"
)

// Input gathers the artifacts of one integration run.
//
// Blocks, Funcs and Weights are aligned by index. Kernels (centered, same
// order) and Reference are optional: when nil they are recomputed from
// Blocks/Funcs and from the weighted composite respectively. Funcs are shared
// by all workers and must be safe for concurrent use; the built-in kernel
// functions are plain values and are.
type Input struct {
	Blocks     []*kernel.Block
	Funcs      []kernel.Func
	Kernels    []*matrix.Dense
	Weights    []float64
	Reference  *kpca.Result
	Components int   // number of leading components to score
	Seed       int64 // 0 selects the default seed
}

// Record is the influence of one feature on one component.
type Record struct {
	Block     string  `json:"block"`
	Feature   string  `json:"feature"`
	Component int     `json:"component"` // 0-based
	Distance  float64 `json:"distance"`  // Crone–Crosby distance in [0, 1]
}

// target is one (block, feature) permutation task.
type target struct {
	block   int
	feature int
}
