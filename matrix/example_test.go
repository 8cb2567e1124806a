// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/kfusion/matrix"
)

// ExampleEigenSym decomposes a small symmetric matrix; eigenvalues come back
// in descending order.
func ExampleEigenSym() {
	a, _ := matrix.NewDenseRows([][]float64{
		{2, 1},
		{1, 2},
	})
	vals, vecs, _ := matrix.EigenSym(a)
	v00, _ := vecs.At(0, 0)
	fmt.Printf("λ = [%.3f %.3f]\n", vals[0], vals[1])
	fmt.Printf("v1[0] = %.3f\n", v00)
	// Output:
	// λ = [3.000 1.000]
	// v1[0] = 0.707
}

// ExampleGram builds the linear kernel X·Xᵀ of two samples.
func ExampleGram() {
	X, _ := matrix.NewDenseRows([][]float64{
		{1, 2},
		{3, 4},
	})
	K, _ := matrix.Gram(X)
	fmt.Print(K)
	// Output:
	// [5, 11]
	// [11, 25]
}
