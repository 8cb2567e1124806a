// SPDX-License-Identifier: MIT

package importance

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// CroneCrosby returns (1/√2)·min(‖a − b‖, ‖a + b‖): the distance between two
// unit eigenvectors after choosing the sign of b closest to a. For unit
// vectors the result lies in [0, 1].
//
// Errors: ErrDimensionMismatch when the lengths differ or are zero.
// Complexity: O(n).
func CroneCrosby(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("%w: vectors of length %d and %d", ErrDimensionMismatch, len(a), len(b))
	}
	minus := floats.Distance(a, b, 2)
	var plus float64
	for i := range a {
		s := a[i] + b[i]
		plus += s * s
	}

	return math.Min(minus, math.Sqrt(plus)) / math.Sqrt2, nil
}

// SortByDistance orders records by descending distance in place. Equal
// distances keep their relative order.
func SortByDistance(records []Record) {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Distance > records[j].Distance })
}

// Top returns the n records of the given block and component with the
// largest distances (fewer if not available). The input is not modified.
func Top(records []Record, block string, component, n int) []Record {
	var out []Record
	for _, r := range records {
		if r.Block == block && r.Component == component {
			out = append(out, r)
		}
	}
	SortByDistance(out)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}

	return out
}
