// SPDX-License-Identifier: MIT

package combine

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ProjectSimplex returns the Euclidean projection of v onto the probability
// simplex {w : w ≥ 0, Σw = 1}.
//
// Implementation (sort-based, Held–Wolfe–Crowder / Duchi et al.):
//   - Stage 1: u = v sorted descending.
//   - Stage 2: ρ = max{j : u_j − (Σ_{r≤j} u_r − 1)/j > 0}, τ = (Σ_{r≤ρ} u_r − 1)/ρ.
//   - Stage 3: w_i = max(v_i − τ, 0).
//
// Coordinates below τ become exactly zero. An empty v yields an empty result.
// Complexity: O(M log M).
func ProjectSimplex(v []float64) []float64 {
	if len(v) == 0 {
		return []float64{}
	}
	u := append([]float64(nil), v...)
	sort.Sort(sort.Reverse(sort.Float64Slice(u)))

	var cum, tau float64
	for j, uj := range u {
		cum += uj
		t := (cum - 1) / float64(j+1)
		if uj-t > 0 {
			tau = t
		}
	}

	w := make([]float64, len(v))
	for i, vi := range v {
		if d := vi - tau; d > 0 {
			w[i] = d
		}
	}
	// Remove the rounding residue so Σw = 1 to the last ulp or so.
	if s := floats.Sum(w); s > 0 {
		floats.Scale(1/s, w)
	}

	return w
}
