// SPDX-License-Identifier: MIT

// Package kernel turns data blocks into kernel (similarity) matrices and
// centers them in implicit feature space.
//
// What:
//
//   - Block: an n×p numeric matrix with ordered feature names and a sample
//     index shared by every block of one integration.
//   - Func: a kernel function. Linear (optionally z-scored), RBF and
//     Polynomial are built in; any type satisfying Func plugs into Compute.
//   - Compute(block, f) → n×n symmetric kernel.
//   - Center(K) → K' = K − 1ₙK − K1ₙ + 1ₙK1ₙ, computed in O(n²) from row means.
//
// Determinism:
//
//   - Every routine is a pure function of its inputs; kernels are built from
//     the upper triangle and mirrored, so outputs are exactly symmetric.
//   - Block.Permuted takes an explicit *rand.Rand; nothing here touches the
//     global source.
//
// Errors:
//
//   - ErrInvalidParameter for malformed kernel parameters or empty data.
//   - ErrDimensionMismatch (the matrix sentinel) for inconsistent blocks.
//   - ErrUnknownFeature, ErrUnknownKind, ErrDuplicateName.
//
// Example:
//
//	b, _ := kernel.NewBlock("mrna", X, features, samples)
//	K, _ := kernel.Compute(b, kernel.RBF{Sigma: 1.5})
//	Kc, _ := kernel.Center(K)
package kernel
