// SPDX-License-Identifier: MIT

// Package kpca extracts principal components from a kernel matrix.
//
// Discipline: Decompose always centers its input (kernel.Center is
// idempotent), so callers may pass raw or centered kernels alike.
//
// For the centered kernel K' = V·diag(λ)·Vᵀ (λ descending, V orthonormal):
//
//	Coefficients[:,c] = α_c / √λ_c   (dual coefficients, unit-norm axes in feature space)
//	Scores[:,c]       = K'·Coefficients[:,c] = √λ_c · α_c
//
// Scores are the coordinates of the samples on the feature-space principal
// axes, so ‖Scores[i,:] − Scores[j,:]‖² reproduces the kernel distance of i
// and j once every positive component is kept.
//
// Rank is the number of eigenvalues above RankTol·max(1, λ₁); asking for more
// components than that fails with ErrInsufficientRank. A centered kernel of
// size n has rank at most n−1.
package kpca
