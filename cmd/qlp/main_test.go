package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEdges(t *testing.T) {
	g, err := readEdges(strings.NewReader("# triangle plus a loner\n0 1\n1 2\n\n2 0\n7\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	for _, bad := range []string{"", "0 1 2\n", "a b\n", "1 1\n"} {
		_, err := readEdges(strings.NewReader(bad))
		assert.Error(t, err, "%q", bad)
	}
}

func TestReadMatrix(t *testing.T) {
	m, err := readMatrix(strings.NewReader("1 1\n0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())

	_, err = readMatrix(strings.NewReader("1 1\n0\n"))
	assert.Error(t, err)
}

func TestReadEmbedding(t *testing.T) {
	emb, err := readEmbedding(strings.NewReader(`{"0":[0,4],"1":[5]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, emb[0])

	_, err = readEmbedding(strings.NewReader(`{"0":[1],"1":[1]}`))
	assert.Error(t, err, "overlapping chains")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIsingCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 1\n1 0\n"), 0o600))

	out, err := execute(t, "ising", "--qubo", path)
	require.NoError(t, err)
	assert.Equal(t, "J 0 1 0.5\nh 0 1\nh 1 0.5\ng 1\n", out)
}

func TestRunCommand_Complete(t *testing.T) {
	t.Setenv("QLP_NUM_READS", "10")
	t.Setenv("QLP_LOG_LEVEL", "error")
	dir := t.TempDir()
	graph := filepath.Join(dir, "p3.txt")
	require.NoError(t, os.WriteFile(graph, []byte("0 1\n1 2\n"), 0o600))

	out, err := execute(t, "run", "--graph", graph, "--tag", "P(3)")
	require.NoError(t, err)
	assert.Contains(t, out, "experiment")
	assert.Contains(t, out, "reads       10")
}

func TestRunCommand_UnknownTopology(t *testing.T) {
	graph := filepath.Join(t.TempDir(), "p3.txt")
	require.NoError(t, os.WriteFile(graph, []byte("0 1\n1 2\n"), 0o600))

	_, err := execute(t, "run", "--graph", graph, "--topology", "pegasus")
	assert.ErrorContains(t, err, "unknown topology")
}

func TestParseRandom(t *testing.T) {
	n, p, err := parseRandom("12, 0.25")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, 0.25, p)

	for _, bad := range []string{"", "12", "x,0.1", "12,y"} {
		_, _, err := parseRandom(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestRunCommand_RandomGraph(t *testing.T) {
	t.Setenv("QLP_NUM_READS", "4")
	t.Setenv("QLP_LOG_LEVEL", "error")

	out, err := execute(t, "run", "--random", "6,0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "reads       4")

	_, err = execute(t, "run", "--random", "6,1.5")
	assert.Error(t, err, "probability outside [0,1]")
	_, err = execute(t, "run")
	assert.Error(t, err, "a graph source is required")

	graph := filepath.Join(t.TempDir(), "p3.txt")
	require.NoError(t, os.WriteFile(graph, []byte("0 1\n1 2\n"), 0o600))
	_, err = execute(t, "run", "--graph", graph, "--random", "6,0.5")
	assert.Error(t, err, "sources are exclusive")
}

func TestRunCommand_ChimeraWithDeadQubits(t *testing.T) {
	t.Setenv("QLP_NUM_READS", "4")
	t.Setenv("QLP_LOG_LEVEL", "error")
	graph := filepath.Join(t.TempDir(), "p3.txt")
	require.NoError(t, os.WriteFile(graph, []byte("0 1\n1 2\n"), 0o600))

	out, err := execute(t, "run", "--graph", graph, "--topology", "chimera",
		"--chimera-cells", "4", "--dead-qubits", "0,1,2,3")
	require.NoError(t, err)
	assert.Contains(t, out, "reads       4")

	_, err = execute(t, "run", "--graph", graph, "--dead-qubits", "5000")
	assert.Error(t, err, "dead qubit outside the topology")
	_, err = execute(t, "run", "--graph", graph, "--finder", "minor")
	assert.ErrorContains(t, err, "unknown finder")
}

func TestRunCommand_TraceAndMetrics(t *testing.T) {
	t.Setenv("QLP_NUM_READS", "2")
	t.Setenv("QLP_LOG_LEVEL", "error")
	graph := filepath.Join(t.TempDir(), "k3.txt")
	require.NoError(t, os.WriteFile(graph, []byte("0 1\n1 2\n0 2\n"), 0o600))

	out, err := execute(t, "run", "--graph", graph, "--trace", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "embedding.Select")
	assert.Contains(t, out, `qlp_embedding_attempts_total{outcome="success"}`)
	assert.Contains(t, out, "qlp_embedding_offset_range_width_bucket")
}
