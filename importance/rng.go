// SPDX-License-Identifier: MIT

// Package importance - deterministic random streams.
//
// Every permutation task owns a private *rand.Rand derived from the run seed
// and the task index, so no generator is ever shared between goroutines and
// the permutation of task t does not depend on which worker runs it.
package importance

import "math/rand"

// defaultSeed replaces a zero run seed.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer (Vigna 2014 constants).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// taskRNG returns the generator of task t under run seed seed.
// Policy: seed == 0 ⇒ defaultSeed.
func taskRNG(seed int64, t int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(t))))
}
