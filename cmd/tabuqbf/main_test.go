// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabuqbf/instance"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestGenerateThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qbf012")
	_, err := execute(t, "generate", "--n", "12", "--seed", "5", "--out", path)
	require.NoError(t, err)

	m, err := instance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, m.Rows())

	for _, strategy := range []string{"default", "prob", "diversification"} {
		out, err := execute(t, "solve", "-i", path, "--iterations", "50", "--tenure", "3",
			"--strategy", strategy, "--local-search", "first-improving", "--trace", "--debug")
		require.NoError(t, err, strategy)
		assert.True(t, strings.HasPrefix(out, "Best solution: Solution: cost=["), out)
		assert.Contains(t, out, "\nValue: ")
		assert.Contains(t, out, "seg\n")
	}
}

func TestSolve_ConfigurationErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qbf005")
	require.NoError(t, os.WriteFile(path, []byte("3\n1 0 0\n1 0\n1\n"), 0o644))

	_, err := execute(t, "solve", "-i", path, "--strategy", "annealing")
	assert.Error(t, err)
	_, err = execute(t, "solve", "-i", path, "--strategy", "prob", "--probability", "0")
	assert.Error(t, err)
	_, err = execute(t, "solve", "-i", path, "--local-search", "steepest")
	assert.Error(t, err)
	_, err = execute(t, "solve", "-i", path, "--constraint", "strict")
	assert.Error(t, err)
	_, err = execute(t, "solve", "-i", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	_, err = execute(t, "solve")
	assert.Error(t, err)

	out, err := execute(t, "solve", "-i", path, "--iterations", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Value: 2\n")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "instances")
	require.NoError(t, os.Mkdir(inDir, 0o755))
	_, err := execute(t, "generate", "-n", "8", "-o", filepath.Join(inDir, "qbf008"))
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
instances: [qbf008]
instanceDir: `+inDir+`
outputDir: `+filepath.Join(dir, "results")+`
iterations: 20
tenures: [2]
experiments:
  - key: DEFAULT_BEST
    localSearch: best-improving
    strategy: default
`), 0o644))

	metrics := filepath.Join(dir, "metrics.prom")
	out, err := execute(t, "batch", "--config", cfgPath, "--metrics-file", metrics)
	require.NoError(t, err)
	assert.Contains(t, out, "qbf008\tTENURE=2_DEFAULT_BEST\t")
	assert.FileExists(t, filepath.Join(dir, "results", "qbf008.txt"))
	assert.FileExists(t, metrics)
}
