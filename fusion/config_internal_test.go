// SPDX-License-Identifier: MIT

package fusion

import (
	"strings"
	"testing"

	"github.com/katalvlaran/kfusion/combine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineOptions_ExplicitZeroOverridesDefault(t *testing.T) {
	cfg, err := ReadConfig(strings.NewReader(
		"blocks: [{name: a, path: a.csv}]\ncombine: {lambda: 0, ridge: 0, max_iter: 50}\n"))
	require.NoError(t, err)

	o := combine.NewOptions(cfg.combineOptions()...)
	assert.Zero(t, o.Lambda())
	assert.Zero(t, o.Ridge())
	assert.Equal(t, 50, o.MaxIter())
	assert.Equal(t, combine.DefaultEntropy, o.Entropy(), "unset knobs keep defaults")
	assert.Equal(t, combine.DefaultNeighbors, o.Neighbors())
}

func TestCombineOptions_Unset(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.combineOptions())
}
