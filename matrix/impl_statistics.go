// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics used before kernel computation:
//     centering and z-score standardization of an n×p data matrix.
//   - Provide RowMeans, the O(r*c) reduction behind double centering of kernels.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)
//   - Standardize(X)   -> (Z, means, stds) // sample std (n-1); zero-variance → column zeroed
//   - RowMeans(X)      -> means
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops; column reductions via gonum/stat.

package matrix

import "gonum.org/v1/gonum/stat"

const (
	opCenterColumns = "CenterColumns"
	opStandardize   = "Standardize"
	opRowMeans      = "RowMeans"
)

// columns extracts every column of d as a contiguous slice (one pass).
func columns(d *Dense) [][]float64 {
	cols := make([][]float64, d.c)
	var i, j int
	for j = 0; j < d.c; j++ {
		cols[j] = make([]float64, d.r)
	}
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			cols[j][i] = d.data[i*d.c+j]
		}
	}

	return cols
}

// CenterColumns returns Xc = X − mean(X, by columns) and the column means.
// Errors: ErrNilMatrix. Complexity: O(r*c) time and space.
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means := make([]float64, d.c)
	for j, col := range columns(d) {
		means[j] = stat.Mean(col, nil)
	}
	out := d.Copy()
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			out.data[i*out.c+j] -= means[j]
		}
	}

	return out, means, nil
}

// Standardize returns the column z-scores Z[i,j] = (X[i,j] − μ_j)/σ_j with σ the
// sample standard deviation (n−1 denominator, gonum stat.MeanStdDev).
// Columns with σ == 0 (or a single row) are centered and left at zero.
//
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Standardize(X Matrix) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	means := make([]float64, d.c)
	stds := make([]float64, d.c)
	for j, col := range columns(d) {
		if d.r < 2 {
			means[j] = stat.Mean(col, nil)
			continue
		}
		means[j], stds[j] = stat.MeanStdDev(col, nil)
	}

	out := d.Copy()
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if stds[j] == 0 {
				out.data[i*out.c+j] = 0 // degenerate column
				continue
			}
			out.data[i*out.c+j] = (out.data[i*out.c+j] - means[j]) / stds[j]
		}
	}

	return out, means, stds, nil
}

// RowMeans returns r[i] = mean_j X[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func RowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	means := make([]float64, d.r)
	var i int
	for i = 0; i < d.r; i++ {
		means[i] = stat.Mean(d.data[i*d.c:(i+1)*d.c], nil)
	}

	return means, nil
}
