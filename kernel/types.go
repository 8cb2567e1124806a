// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/kfusion/matrix"

// Kernel kind names accepted by ParseFunc.
const (
	KindLinear     = "linear"
	KindRBF        = "rbf"
	KindPolynomial = "polynomial"
)

// Func is a positive semi-definite kernel function.
//
// Contract:
//   - Validate reports ErrInvalidParameter for unusable parameters; Compute
//     calls it before Gram.
//   - Eval compares two row vectors of equal length.
//   - Gram returns the full n×n matrix over the rows of X. It must be
//     exactly symmetric and must not mutate X.
type Func interface {
	Kind() string
	Validate() error
	Eval(x, y []float64) (float64, error)
	Gram(X *matrix.Dense) (*matrix.Dense, error)
}

// Params is the flat, serialisable description of a kernel function.
// Only the fields relevant to Kind are read.
type Params struct {
	Kind   string  `yaml:"kind" json:"kind"`
	Scale  bool    `yaml:"scale,omitempty" json:"scale,omitempty"`   // linear: z-score columns first
	Sigma  float64 `yaml:"sigma,omitempty" json:"sigma,omitempty"`   // rbf bandwidth
	Degree int     `yaml:"degree,omitempty" json:"degree,omitempty"` // polynomial
	Gamma  float64 `yaml:"gamma,omitempty" json:"gamma,omitempty"`   // polynomial
	Offset float64 `yaml:"offset,omitempty" json:"offset,omitempty"` // polynomial
}

// Linear is K = X·Xᵀ. With Scale set, columns are standardized
// (zero mean, unit sample variance) before the product.
type Linear struct {
	Scale bool
}

// RBF is the Gaussian kernel K[i,j] = exp(−‖xᵢ − xⱼ‖² / (2σ²)).
type RBF struct {
	Sigma float64
}

// Polynomial is K[i,j] = (Gamma·⟨xᵢ, xⱼ⟩ + Offset)^Degree.
// Offset ≥ 0 keeps the kernel positive semi-definite.
type Polynomial struct {
	Degree int
	Gamma  float64
	Offset float64
}
