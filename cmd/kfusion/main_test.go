// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeRun(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	var a, b strings.Builder
	a.WriteString("id,x,y\n")
	b.WriteString("id,u,v,w\n")
	for i := 0; i < 8; i++ {
		x := float64(i%4) - 1.5
		y := float64(i*i%5) - 2
		a.WriteString(strings.Join([]string{"s" + string(rune('a'+i)), ftoa(x), ftoa(y)}, ",") + "\n")
		b.WriteString(strings.Join([]string{"s" + string(rune('a'+i)), ftoa(x * 2), ftoa(-y), ftoa(float64(i%3))}, ",") + "\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte(a.String()), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte(b.String()), 0o644))
	cfg := `
method: equal
components: 2
seed: 3
blocks:
  - {name: a, path: a.csv, kernel: {kind: linear}}
  - {name: b, path: b.csv, kernel: {kind: rbf, sigma: 2}}
`
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	return path
}

func ftoa(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kfusion version "+version+"\n", out)

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+version+`"}`, out)
}

func TestMethods(t *testing.T) {
	out, err := execute(t, "methods")
	require.NoError(t, err)
	assert.Equal(t, "equal\nSTATIS-UMKL\nfull-UMKL\nsparse-UMKL\n", out)
}

func TestRun_Text(t *testing.T) {
	out, err := execute(t, "run", "-c", writeRun(t))
	require.NoError(t, err)
	assert.Contains(t, out, "method")
	assert.Contains(t, out, "equal")
	assert.Contains(t, out, "PC1")
}

func TestRun_JSONWithOverrides(t *testing.T) {
	out, err := execute(t, "run", "-c", writeRun(t), "--json", "--method", "sparse-umkl", "--importance", "--top", "1")
	require.NoError(t, err)

	var rep struct {
		Method     string             `json:"method"`
		Weights    map[string]float64 `json:"weights"`
		Importance []struct {
			Block string `json:"block"`
		} `json:"importance"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "sparse-UMKL", rep.Method)
	assert.InDelta(t, 1.0, rep.Weights["a"]+rep.Weights["b"], 1e-8)
	assert.Len(t, rep.Importance, 2*2, "one record per block and component")
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "run", "-c", writeRun(t), "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "run", "-c", writeRun(t), "--method", "pca")
	assert.Error(t, err)
}
