// SPDX-License-Identifier: MIT

package fusion_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/kfusion/combine"
	"github.com/katalvlaran/kfusion/fusion"
	"github.com/katalvlaran/kfusion/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
method: sparse-UMKL
components: 3
seed: 7
blocks:
  - name: mrna
    path: mrna.csv
    kernel: {kind: linear}
  - name: protein
    path: data/protein.csv
    kernel: {kind: rbf, sigma: 1.5}
combine:
  neighbors: 4
  lambda: 0.5
importance:
  enabled: true
  workers: 2
  features:
    mrna: [g1, g2]
`

func TestReadConfig_Valid(t *testing.T) {
	cfg, err := fusion.ReadConfig(strings.NewReader(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "sparse-UMKL", cfg.Method)
	assert.Equal(t, 3, cfg.Components)
	assert.Equal(t, int64(7), cfg.Seed)
	require.Len(t, cfg.Blocks, 2)
	assert.Equal(t, kernel.Params{Kind: "rbf", Sigma: 1.5}, cfg.Blocks[1].Kernel)
	assert.Equal(t, 4, cfg.Combine.Neighbors)
	require.NotNil(t, cfg.Combine.Lambda)
	assert.Equal(t, 0.5, *cfg.Combine.Lambda)
	assert.Nil(t, cfg.Combine.Ridge, "unset knobs stay nil")
	assert.True(t, cfg.Importance.Enabled)
	assert.Equal(t, []string{"g1", "g2"}, cfg.Importance.Features["mrna"])
	assert.Equal(t, fusion.DefaultTop, cfg.Importance.Top, "defaults fill unset fields")
}

func TestReadConfig_Defaults(t *testing.T) {
	cfg, err := fusion.ReadConfig(strings.NewReader("blocks: [{name: a, path: a.csv}]\n"))
	require.NoError(t, err)
	assert.Equal(t, string(combine.Equal), cfg.Method)
	assert.Equal(t, fusion.DefaultComponents, cfg.Components)
}

func TestReadConfig_UnknownKey(t *testing.T) {
	_, err := fusion.ReadConfig(strings.NewReader("blocks: []\nmethd: equal\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fusion.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "methd")
}

func TestConfigValidate_CollectsEveryProblem(t *testing.T) {
	cfg := &fusion.Config{
		Method:     "pca",
		Components: -1,
		Blocks: []fusion.BlockConfig{
			{Name: "a", Kernel: kernel.Params{Kind: "rbf", Sigma: -1}},
			{Name: "a"},
			{},
		},
		Combine: fusion.CombineConfig{
			Lambda:    ptr(-1),
			Entropy:   ptr(math.Inf(1)),
			Ridge:     ptr(math.NaN()),
			Tolerance: ptr(0),
		},
		Importance: fusion.ImportanceConfig{Features: map[string][]string{"zzz": nil}},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, fusion.ErrInvalidConfig)
	assert.ErrorIs(t, err, combine.ErrUnknownMethod)
	assert.ErrorIs(t, err, kernel.ErrInvalidParameter)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	// rbf sigma, duplicate name, missing name, method, components,
	// lambda, entropy, ridge, tolerance, unknown feature block.
	assert.Len(t, merr.Errors, 10)
}

func TestReadConfig_NonFiniteKnobsRejected(t *testing.T) {
	for _, knob := range []string{"lambda", "entropy", "ridge", "tolerance"} {
		for _, v := range []string{".inf", "-.inf", ".nan"} {
			in := "blocks: [{name: a, path: a.csv}]\ncombine: {" + knob + ": " + v + "}\n"
			_, err := fusion.ReadConfig(strings.NewReader(in))
			require.Error(t, err, "%s: %s", knob, v)
			assert.ErrorIs(t, err, fusion.ErrInvalidConfig)
			assert.Contains(t, err.Error(), "combine."+knob)
		}
	}
}

func TestRun_InvalidKnobsReturnErrors(t *testing.T) {
	cfg := fixtureConfig(combine.SparseUMKL, false)
	cfg.Combine.Lambda = ptr(math.Inf(1))

	assert.NotPanics(t, func() {
		_, err := fusion.New(nil).Run(ctx(t), fixtureBlocks(t), cfg)
		assert.ErrorIs(t, err, fusion.ErrInvalidConfig)
	})
}

func TestReadConfig_ExplicitZeroKnobs(t *testing.T) {
	cfg, err := fusion.ReadConfig(strings.NewReader(
		"blocks: [{name: a, path: a.csv}]\ncombine: {lambda: 0, ridge: 0}\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Combine.Lambda)
	require.NotNil(t, cfg.Combine.Ridge)
	assert.Zero(t, *cfg.Combine.Lambda)
	assert.Zero(t, *cfg.Combine.Ridge)

	_, err = fusion.ReadConfig(strings.NewReader(
		"blocks: [{name: a, path: a.csv}]\ncombine: {entropy: 0}\n"))
	assert.ErrorIs(t, err, fusion.ErrInvalidConfig, "entropy must be positive")
}

func ptr(v float64) *float64 { return &v }

func TestLoadConfig_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "id,x,y\ns1,1,2\ns2,3,1\ns3,0,0\n")
	cfgPath := filepath.Join(dir, "run.yaml")
	writeFile(t, cfgPath, "blocks:\n  - name: a\n    path: a.csv\n")

	cfg, err := fusion.LoadConfig(cfgPath)
	require.NoError(t, err)

	res, err := fusion.New(nil).RunConfig(ctx(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "s3"}, res.Blocks[0].Samples())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := fusion.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeFile(t testing.TB, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}
