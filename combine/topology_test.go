// SPDX-License-Identifier: MIT

package combine_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kfusion/combine"
	"github.com/katalvlaran/kfusion/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSimplex(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"already feasible", []float64{0.25, 0.75}, []float64{0.25, 0.75}},
		{"vertex", []float64{2, 0}, []float64{1, 0}},
		{"uniform shift", []float64{-1, -1}, []float64{0.5, 0.5}},
		{"sparse", []float64{0.1, 0.2, 5}, []float64{0, 0, 1}},
		{"partial", []float64{1, 0.5, -3}, []float64{0.75, 0.25, 0}},
		{"empty", []float64{}, []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := combine.ProjectSimplex(tc.in)
			assert.InDeltaSlice(t, tc.want, got, 1e-12)
			if len(got) > 0 {
				requireOnSimplex(t, got)
			}
		})
	}
	in := []float64{3, 1}
	_ = combine.ProjectSimplex(in)
	assert.Equal(t, []float64{3, 1}, in, "input untouched")
}

func TestRVMatrix(t *testing.T) {
	ks := fixture(t, 3)
	C, err := combine.RVMatrix(ks)
	require.NoError(t, err)
	require.Equal(t, 3, C.Rows())
	for l := 0; l < 3; l++ {
		v, _ := C.At(l, l)
		assert.Equal(t, 1.0, v)
		for s := 0; s < 3; s++ {
			a, _ := C.At(l, s)
			b, _ := C.At(s, l)
			assert.Equal(t, a, b)
			assert.GreaterOrEqual(t, a, 0.0)
			assert.LessOrEqual(t, a, 1.0+1e-12)
		}
	}
	near, _ := C.At(0, 1)
	far, _ := C.At(0, 2)
	assert.Greater(t, near, 0.99, "near copy")
	assert.Less(t, far, near)

	// Scale invariance.
	scaled, err := matrix.AddScaled(ks[0], 999, ks[0])
	require.NoError(t, err)
	C2, err := combine.RVMatrix([]*matrix.Dense{scaled, ks[1], ks[2]})
	require.NoError(t, err)
	requireClose(t, C2, C, 1e-12)
}

func TestConsensusGraph(t *testing.T) {
	ks := fixture(t, 2)
	W, err := combine.ConsensusGraph(ks, 3)
	require.NoError(t, err)
	n := W.Rows()
	for i := 0; i < n; i++ {
		d, _ := W.At(i, i)
		assert.Zero(t, d)
		var deg float64
		for j := 0; j < n; j++ {
			w, _ := W.At(i, j)
			v, _ := W.At(j, i)
			assert.Equal(t, w, v)
			// Only 0, 1/3, 2/3 and 1 are possible with three kernels.
			k := w * 3
			assert.InDelta(t, math.Round(k), k, 1e-12)
			deg += w
		}
		assert.GreaterOrEqual(t, deg, 3.0-1e-12, "every sample keeps its own k neighbours")
	}

	_, err = combine.ConsensusGraph(ks, 0)
	require.ErrorIs(t, err, combine.ErrInvalidParameter)
}

func TestTopologyDistortion(t *testing.T) {
	ks := fixture(t, 4)
	c, err := combine.TopologyDistortion(ks, combine.DefaultNeighbors)
	require.NoError(t, err)
	require.Len(t, c, 3)
	for _, v := range c {
		assert.Positive(t, v)
	}
	assert.InDelta(t, c[0], c[1], 0.05)
	assert.Greater(t, c[2]-c[0], 0.3, "noise kernel ignores the shared topology")

	zero, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	_, err = combine.TopologyDistortion([]*matrix.Dense{zero}, 2)
	require.ErrorIs(t, err, combine.ErrDegenerateInput)

	one, err := matrix.NewDenseRows([][]float64{{1}})
	require.NoError(t, err)
	_, err = combine.TopologyDistortion([]*matrix.Dense{one}, 2)
	require.ErrorIs(t, err, combine.ErrDegenerateInput)
}

func TestOptions(t *testing.T) {
	o := combine.NewOptions()
	assert.Equal(t, combine.DefaultNeighbors, o.Neighbors())
	assert.Equal(t, combine.DefaultLambda, o.Lambda())
	assert.Equal(t, combine.DefaultEntropy, o.Entropy())
	assert.Equal(t, combine.DefaultRidge, o.Ridge())
	assert.Equal(t, combine.DefaultMaxIter, o.MaxIter())
	assert.Equal(t, combine.DefaultTolerance, o.Tolerance())

	o = combine.NewOptions(combine.WithNeighbors(3), combine.WithLambda(0), combine.WithRidge(0), nil)
	assert.Equal(t, 3, o.Neighbors())
	assert.Zero(t, o.Lambda())
	assert.Zero(t, o.Ridge())

	assert.Panics(t, func() { combine.WithNeighbors(0) })
	assert.Panics(t, func() { combine.WithLambda(-1) })
	assert.Panics(t, func() { combine.WithEntropy(0) })
	assert.Panics(t, func() { combine.WithRidge(math.Inf(1)) })
	assert.Panics(t, func() { combine.WithMaxIter(0) })
	assert.Panics(t, func() { combine.WithTolerance(math.NaN()) })
}
