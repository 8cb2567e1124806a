// SPDX-License-Identifier: MIT

package combine_test

import (
	"fmt"

	"github.com/katalvlaran/kfusion/combine"
	"github.com/katalvlaran/kfusion/matrix"
)

// ExampleCombine averages two kernels with equal weights.
func ExampleCombine() {
	a, _ := matrix.NewDenseRows([][]float64{{1, -1}, {-1, 1}})
	b, _ := matrix.NewDenseRows([][]float64{{3, -3}, {-3, 3}})

	res, _ := combine.Combine([]*matrix.Dense{a, b}, combine.Equal)
	fmt.Println(res.Weights)
	fmt.Print(res.Composite)
	// Output:
	// [0.5 0.5]
	// [2, -2]
	// [-2, 2]
}

// ExampleProjectSimplex shows the projection zeroing a coordinate.
func ExampleProjectSimplex() {
	fmt.Println(combine.ProjectSimplex([]float64{1, 0.5, -3}))
	// Output:
	// [0.75 0.25 0]
}
