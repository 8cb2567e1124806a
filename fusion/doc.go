// SPDX-License-Identifier: MIT

// Package fusion wires the numeric packages into the end-to-end integration
// run: data blocks → kernels → centered kernels → weights and composite →
// kernel PCA → permutation importance.
//
// It also owns the thin I/O edge used by the command line tool: a YAML run
// configuration (Config, LoadConfig) and a CSV reader for data blocks
// (LoadBlockCSV). Progress is logged through a logrus.FieldLogger; the
// numeric packages themselves never log.
//
// Failures abort the run at the failing stage, but the artifacts of the
// stages that completed are returned alongside the error (for example the
// per-block kernels when the combination step fails).
package fusion
