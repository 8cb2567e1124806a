// SPDX-License-Identifier: MIT

// Package kfusion integrates several data blocks measured on the same
// samples (transcriptome, miRNA, proteome …) into one consensus kernel and
// explores it with kernel PCA.
//
// Packages:
//
//	matrix/     dense row-major matrices, linear algebra, symmetric eigensolver
//	kernel/     data blocks, linear/RBF/polynomial kernels, double centering
//	combine/    equal, STATIS-UMKL, full-UMKL and sparse-UMKL kernel weights
//	kpca/       kernel PCA of a combined kernel
//	importance/ Crone–Crosby permutation importance of features
//	fusion/     YAML-configured end-to-end runs with logging and reports
//	cmd/kfusion command line front end
//
// A typical run:
//
//	K1, _ := kernel.ComputeCentered(mrna, kernel.Linear{})
//	K2, _ := kernel.ComputeCentered(protein, kernel.RBF{Sigma: 2})
//	res, _ := combine.Combine([]*matrix.Dense{K1, K2}, combine.SparseUMKL)
//	pca, _ := kpca.Decompose(res.Composite, 2)
//
// All numeric routines are deterministic: the same inputs (and seed, for
// permutation importance) give bit-identical outputs.
package kfusion
