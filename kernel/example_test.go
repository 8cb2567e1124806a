// SPDX-License-Identifier: MIT

package kernel_test

import (
	"fmt"

	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/matrix"
)

// ExampleCompute builds a linear kernel of two samples and centers it.
func ExampleCompute() {
	X, _ := matrix.NewDenseRows([][]float64{
		{1, 0},
		{0, 1},
	})
	b, _ := kernel.NewBlock("toy", X, []string{"g1", "g2"}, []string{"a", "b"})

	K, _ := kernel.Compute(b, kernel.Linear{})
	fmt.Print(K)

	Kc, _ := kernel.Center(K)
	fmt.Print(Kc)
	// Output:
	// [1, 0]
	// [0, 1]
	// [0.5, -0.5]
	// [-0.5, 0.5]
}

// ExampleParseFunc resolves a kernel from its configuration record.
func ExampleParseFunc() {
	f, err := kernel.ParseFunc(kernel.Params{Kind: "gaussian", Sigma: 2})
	fmt.Println(f.Kind(), err)

	_, err = kernel.ParseFunc(kernel.Params{Kind: "rbf"})
	fmt.Println(err)
	// Output:
	// rbf <nil>
	// kernel: ParseFunc: kernel: invalid parameter: rbf sigma must be positive and finite, got 0
}
