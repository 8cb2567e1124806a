// SPDX-License-Identifier: MIT

// Package combine - topology of kernels.
//
// Every kernel K induces squared distances d²(i,j) = K[i,i] + K[j,j] − 2K[i,j]
// between samples. The k-NN graph of K links i and j when either is among
// the other's k nearest samples (ties broken by the lower index). The
// consensus graph averages these adjacency matrices over all kernels.
package combine

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kfusion/matrix"
)

// kernelDistances returns the n×n squared kernel distances of K, clamped at 0.
func kernelDistances(K *matrix.Dense) []float64 {
	n := K.Rows()
	raw := K.RawData()
	d := make([]float64, n*n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = raw[i*n+i] + raw[j*n+j] - 2*raw[i*n+j]
			if v < 0 {
				v = 0
			}
			d[i*n+j] = v
			d[j*n+i] = v
		}
	}

	return d
}

// knnAdjacency builds the symmetrized 0/1 k-NN adjacency (row-major n×n)
// from squared distances. k is clamped to n−1.
func knnAdjacency(d []float64, n, k int) []float64 {
	if k > n-1 {
		k = n - 1
	}
	adj := make([]float64, n*n)
	cand := make([]int, 0, n)
	var i, j, r int
	for i = 0; i < n; i++ {
		cand = cand[:0]
		for j = 0; j < n; j++ {
			if j != i {
				cand = append(cand, j)
			}
		}
		row := d[i*n : (i+1)*n]
		sort.SliceStable(cand, func(a, b int) bool { return row[cand[a]] < row[cand[b]] })
		for r = 0; r < k; r++ {
			j = cand[r]
			adj[i*n+j] = 1
			adj[j*n+i] = 1
		}
	}

	return adj
}

// ConsensusGraph returns W = (1/M)·Σₘ Aₘ where Aₘ is the symmetrized k-NN
// adjacency of kernel m. W[i,j] ∈ [0,1] is the fraction of kernels in which
// i and j are neighbours; the diagonal is 0.
//
// Errors: ErrInvalidParameter (k < 1, empty input), ErrDimensionMismatch.
// Complexity: O(M·n² log n).
func ConsensusGraph(kernels []*matrix.Dense, k int) (*matrix.Dense, error) {
	if k < 1 {
		return nil, combineErrorf("ConsensusGraph", fmt.Errorf("%w: k=%d", ErrInvalidParameter, k))
	}
	if err := validateKernels(kernels); err != nil {
		return nil, combineErrorf("ConsensusGraph", err)
	}
	W, _, err := consensus(kernels, k)
	if err != nil {
		return nil, combineErrorf("ConsensusGraph", err)
	}

	return W, nil
}

// consensus returns W together with the per-kernel distance buffers so that
// callers computing distortions do not rebuild them.
func consensus(kernels []*matrix.Dense, k int) (*matrix.Dense, [][]float64, error) {
	n := kernels[0].Rows()
	M := float64(len(kernels))
	dist := make([][]float64, len(kernels))
	w := make([]float64, n*n)
	for m, K := range kernels {
		dist[m] = kernelDistances(K)
		for idx, a := range knnAdjacency(dist[m], n, k) {
			w[idx] += a / M
		}
	}
	W, err := matrix.NewDenseFrom(n, n, w)
	if err != nil {
		return nil, nil, err
	}

	return W, dist, nil
}

// TopologyDistortion returns cₘ for every kernel: the W-weighted mean of
// d²ₘ over consensus edges divided by the plain mean of d²ₘ over all pairs
// i<j. Values near 0 mean consensus neighbours stay close under kernel m;
// values near 1 mean kernel m ignores the consensus topology.
//
// Errors: ErrInvalidParameter (k < 1, empty input), ErrDimensionMismatch,
// ErrDegenerateInput (n < 2, or a kernel whose distances are all zero).
// Complexity: O(M·n² log n).
func TopologyDistortion(kernels []*matrix.Dense, k int) ([]float64, error) {
	if k < 1 {
		return nil, combineErrorf("TopologyDistortion", fmt.Errorf("%w: k=%d", ErrInvalidParameter, k))
	}
	if err := validateKernels(kernels); err != nil {
		return nil, combineErrorf("TopologyDistortion", err)
	}
	n := kernels[0].Rows()
	if n < 2 {
		return nil, combineErrorf("TopologyDistortion", fmt.Errorf("%w: need at least 2 samples, got %d", ErrDegenerateInput, n))
	}
	W, dist, err := consensus(kernels, k)
	if err != nil {
		return nil, combineErrorf("TopologyDistortion", err)
	}
	w := W.RawData()

	var wsum float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			wsum += w[i*n+j]
		}
	}
	pairs := float64(n*(n-1)) / 2

	c := make([]float64, len(kernels))
	var edge, all float64
	for m, d := range dist {
		edge, all = 0, 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				edge += w[i*n+j] * d[i*n+j]
				all += d[i*n+j]
			}
		}
		if all == 0 {
			return nil, combineErrorf("TopologyDistortion", fmt.Errorf("%w: kernel %d separates no samples", ErrDegenerateInput, m))
		}
		c[m] = (edge / wsum) / (all / pairs)
	}

	return c, nil
}
