package main

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "splitworld version "+version+"\n", out)
}

func TestTopology(t *testing.T) {
	out, err := execute(t, "topology", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "era 3: 18 tiles, 26 edges", lines[0])
	assert.Contains(t, lines, "11: 12 22")
	assert.Contains(t, out, "\n32: ")
}

func TestTopologyFrozen(t *testing.T) {
	out, err := execute(t, "topology")
	require.NoError(t, err)
	assert.Contains(t, out, "era 9: 54 tiles")
	assert.Contains(t, out, "\n11: (frozen)")
}

func TestTopologyBadEra(t *testing.T) {
	_, err := execute(t, "topology", "12")
	assert.Error(t, err)
	_, err = execute(t, "topology", "x")
	assert.Error(t, err)
}

func TestRunSingleEra(t *testing.T) {
	out, err := execute(t, "run", "--seed", "42", "--max-era", "1", "--population-increase", "5", "--log-level", "error")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "END OF ERA  0"))
	assert.Contains(t, out, "ERA  1 ===")
	assert.Equal(t, 1, strings.Count(out, "race appeared on"))
	assert.True(t, strings.HasSuffix(out, "ERA  2 ================================================================\n"))
}

func TestRunQuietWithChronicle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chronicle.db")

	out, err := execute(t, "run", "--quiet", "--seed", "5", "--max-era", "2",
		"--population-increase", "5", "--chronicle", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, out)

	listing, err := execute(t, "runs", path)
	require.NoError(t, err)
	assert.Contains(t, listing, "seed=5")
	assert.Contains(t, listing, "era limit reached")

	id := regexp.MustCompile(`^[0-9a-f-]{36}`).FindString(listing)
	require.NotEmpty(t, id)

	replay, err := execute(t, "runs", path, "--show", id)
	require.NoError(t, err)
	assert.Contains(t, replay, "ERA  3 ===")
	assert.Equal(t, 2, strings.Count(replay, "race appeared on"))
}

func TestRunInvalidConfig(t *testing.T) {
	_, err := execute(t, "run", "--max-era", "12", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_era")
}

func TestRunRunaway(t *testing.T) {
	_, err := execute(t, "run", "--quiet", "--seed", "1", "--max-century", "2",
		"--era-cooldown", "9", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many centuries")
}

func TestRunsEmptyChronicle(t *testing.T) {
	out, err := execute(t, "runs", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded.\n", out)
}
