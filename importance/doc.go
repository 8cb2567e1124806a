// SPDX-License-Identifier: MIT

// Package importance scores features by permutation.
//
// For every target feature j of block m the column is shuffled across
// samples, the block kernel is recomputed and recentered, and the composite
// is rebuilt with the original weights:
//
//	K̃ = Σ_{l≠m} β_l K_l + β_m K̃_{m,j}
//
// K̃ is decomposed again and each retained eigenvector α̃_c is compared with
// the reference α_c by the Crone–Crosby distance
//
//	D_cc = (1/√2)·min(‖α_c − α̃_c‖, ‖α_c + α̃_c‖),
//
// which removes the sign ambiguity of eigenvectors. D_cc ranges over [0, 1];
// larger means the feature shapes that component more.
//
// Reproducibility: task t (in block-major, feature-minor order) draws its
// permutation from a generator seeded by deriveSeed(Seed, t). Results are
// therefore identical for a given Seed regardless of the worker count or
// scheduling, and the output order is always (block, feature, component).
//
// Compute emits raw distances only; SortByDistance and Top are helpers for
// callers that want rankings.
package importance
