// SPDX-License-Identifier: MIT

package kpca

// ExplainedVariance returns, for each retained component, its eigenvalue as a
// fraction of TotalVariance, the trace of the centered kernel. A centered
// kernel with zero trace yields zeros.
func (r *Result) ExplainedVariance() []float64 {
	k := r.Components()
	out := make([]float64, k)
	if !(r.TotalVariance > 0) {
		return out
	}
	for c := 0; c < k; c++ {
		out[c] = r.Eigen.Values[c] / r.TotalVariance
	}

	return out
}

// CumulativeVariance returns the running sum of ExplainedVariance.
func (r *Result) CumulativeVariance() []float64 {
	out := r.ExplainedVariance()
	for c := 1; c < len(out); c++ {
		out[c] += out[c-1]
	}

	return out
}
