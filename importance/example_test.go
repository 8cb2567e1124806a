// SPDX-License-Identifier: MIT

package importance_test

import (
	"fmt"

	"github.com/katalvlaran/kfusion/importance"
)

// ExampleCroneCrosby compares an eigenvector with a sign-flipped copy and with
// an orthogonal one.
func ExampleCroneCrosby() {
	a := []float64{0.6, 0.8}
	flipped, _ := importance.CroneCrosby(a, []float64{-0.6, -0.8})
	orth, _ := importance.CroneCrosby(a, []float64{0.8, -0.6})
	fmt.Printf("%.3f %.3f\n", flipped, orth)
	// Output:
	// 0.000 1.000
}

// ExampleTop ranks the features of one block on the first component.
func ExampleTop() {
	recs := []importance.Record{
		{Block: "mrna", Feature: "TP53", Component: 0, Distance: 0.12},
		{Block: "mrna", Feature: "BRCA1", Component: 0, Distance: 0.47},
		{Block: "mrna", Feature: "MYC", Component: 0, Distance: 0.31},
	}
	for _, r := range importance.Top(recs, "mrna", 0, 2) {
		fmt.Println(r.Feature, r.Distance)
	}
	// Output:
	// BRCA1 0.47
	// MYC 0.31
}
