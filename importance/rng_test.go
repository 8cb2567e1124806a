// SPDX-License-Identifier: MIT

package importance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeed_Streams(t *testing.T) {
	seen := make(map[int64]bool)
	for s := uint64(0); s < 1000; s++ {
		v := deriveSeed(42, s)
		assert.False(t, seen[v], "stream %d collides", s)
		seen[v] = true
	}
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(2, 0))
	assert.Equal(t, deriveSeed(7, 3), deriveSeed(7, 3))
}

func TestTaskRNG_ZeroSeedPolicy(t *testing.T) {
	assert.Equal(t, taskRNG(0, 5).Int63(), taskRNG(defaultSeed, 5).Int63())
	assert.NotEqual(t, taskRNG(9, 0).Int63(), taskRNG(9, 1).Int63())
}
