// SPDX-License-Identifier: MIT

// Package combine merges several centered kernels into one composite kernel
// Σ βₘKₘ with weights β on the probability simplex (β ≥ 0, Σβ = 1).
//
// Methods (one Strategy each):
//
//   - Equal:      βₘ = 1/M.
//   - STATIS:     β ∝ leading eigenvector of the RV matrix
//     C[l,s] = ⟨K_l, K_s⟩_F / (‖K_l‖_F‖K_s‖_F), projected onto the simplex.
//   - FullUMKL:   minimizes f(β) + γΣβₘlog βₘ by entropic mirror descent;
//     every βₘ stays strictly positive.
//   - SparseUMKL: minimizes f(β) by Euclidean projected gradient on the
//     simplex; coordinates may reach exactly zero.
//
// The UMKL objective
//
//	f(β) = Σ βₘcₘ + (λ/2)·βᵀCβ + (μ/2)·‖β‖²
//
// trades topology preservation against redundancy. cₘ is the distortion of
// kernel m with respect to the consensus k-nearest-neighbour graph of all
// kernels: the mean kernel distance d²ₘ(i,j) = Kₘ[i,i] + Kₘ[j,j] − 2Kₘ[i,j]
// over consensus edges, divided by the mean over all pairs. A kernel that
// keeps consensus neighbours close scores low; a kernel that scatters them
// scores near 1. The quadratic term discourages piling weight on mutually
// redundant kernels. The small ridge μ makes f strictly convex, so the
// minimizer is unique even when two kernels coincide.
//
// Errors: ErrDimensionMismatch, ErrDegenerateInput, ErrConvergence,
// ErrUnknownMethod, ErrInvalidParameter. Nothing in this package logs or panics
// on user input; option constructors panic on nonsensical values.
package combine
