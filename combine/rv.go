// SPDX-License-Identifier: MIT

package combine

import (
	"fmt"

	"github.com/katalvlaran/kfusion/matrix"
)

// RVMatrix returns the M×M matrix of kernel RV coefficients
//
//	C[l,s] = ⟨K_l, K_s⟩_F / (‖K_l‖_F · ‖K_s‖_F),
//
// the cosine similarity of kernels viewed as vectors. For symmetric kernels
// ⟨K_l, K_s⟩_F = trace(K_l K_s). The diagonal is exactly 1 and the result is
// exactly symmetric; for PSD kernels every entry lies in [0, 1].
//
// Errors: ErrInvalidParameter, ErrDimensionMismatch, ErrDegenerateInput when
// some kernel has zero Frobenius norm.
// Complexity: O(M²·n²).
func RVMatrix(kernels []*matrix.Dense) (*matrix.Dense, error) {
	if err := validateKernels(kernels); err != nil {
		return nil, combineErrorf("RVMatrix", err)
	}
	M := len(kernels)
	norms := make([]float64, M)
	var err error
	for m, K := range kernels {
		if norms[m], err = matrix.FrobeniusNorm(K); err != nil {
			return nil, combineErrorf("RVMatrix", err)
		}
		if norms[m] == 0 {
			return nil, combineErrorf("RVMatrix", fmt.Errorf("%w: kernel %d is identically zero", ErrDegenerateInput, m))
		}
	}

	C, err := matrix.NewDense(M, M)
	if err != nil {
		return nil, combineErrorf("RVMatrix", err)
	}
	var l, s int
	var ip float64
	for l = 0; l < M; l++ {
		_ = C.Set(l, l, 1)
		for s = l + 1; s < M; s++ {
			if ip, err = matrix.FrobeniusInner(kernels[l], kernels[s]); err != nil {
				return nil, combineErrorf("RVMatrix", err)
			}
			ip /= norms[l] * norms[s]
			_ = C.Set(l, s, ip)
			_ = C.Set(s, l, ip)
		}
	}

	return C, nil
}
