package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakobetzel/geokrige/solver"
	"github.com/jakobetzel/geokrige/spatial"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSamples(t *testing.T) {
	path := writeCSV(t, "x,y,zinc,lead\n0,0,1.0,\n10,0,2.5,nan\n0,10,3.0,0.4\n")

	table, err := readSamples(path, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Points().Len())
	assert.Equal(t, 2, table.Dims())
	assert.Equal(t, []string{"lead", "zinc"}, table.Variables())

	// Empty and "nan" cells are missing; only one lead observation survives.
	X, z, err := table.Valid("lead")
	require.NoError(t, err)
	_, n := X.Dims()
	assert.Equal(t, 1, n)
	assert.Equal(t, []float64{0.4}, z)

	_, z, err = table.Valid("zinc")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.5, 3.0}, z)
}

func TestReadSamplesErrors(t *testing.T) {
	_, err := readSamples(filepath.Join(t.TempDir(), "missing.csv"), 2)
	assert.Error(t, err)

	path := writeCSV(t, "x,y,zinc\n")
	_, err = readSamples(path, 2)
	assert.Error(t, err, "header only")

	path = writeCSV(t, "x,y\n0,0\n")
	_, err = readSamples(path, 2)
	assert.Error(t, err, "no variable columns")

	path = writeCSV(t, "x,y,zinc\nnot-a-number,0,1.0\n")
	_, err = readSamples(path, 2)
	assert.Error(t, err, "unparsable coordinate")
}

func TestWriteResultSkipsFailedVariables(t *testing.T) {
	grid, err := spatial.NewRegularGrid([]int{2, 1}, []float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	result := solver.Result{
		"zinc": {Means: []float64{1.5, 2.5}, Variances: []float64{0.1, 0.2}},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, writeResult(path, grid, []string{"zinc", "lead"}, result))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "x0,x1,zinc_mean,zinc_variance", lines[0])
	assert.Equal(t, "0,0,1.5,0.1", lines[1])
	assert.Equal(t, "1,0,2.5,0.2", lines[2])
	assert.NotContains(t, lines[0], "lead")
}
