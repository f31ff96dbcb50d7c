package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geokrige.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
input: samples.csv
dims: 2
variables: [zinc, lead]
grid:
  size: [40, 30]
  origin: [0.0, 0.0]
  spacing: [25.0, 25.0]
params:
  zinc:
    variogram:
      model: spherical
      sill: 0.6
      range: 900
      nugget: 0.05
    degree: 1
  lead:
    mean: 120.5
output: surface.csv
heatmap: surface.png
parallel: true
logLevel: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "samples.csv", cfg.Input)
	assert.Equal(t, 2, cfg.Dims)
	assert.Equal(t, []string{"zinc", "lead"}, cfg.Variables)
	assert.Equal(t, []int{40, 30}, cfg.Grid.Size)
	assert.Equal(t, []float64{25.0, 25.0}, cfg.Grid.Spacing)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, "debug", cfg.LogLevel)

	zinc := cfg.Params["zinc"]
	require.NotNil(t, zinc.Variogram)
	assert.Equal(t, "spherical", zinc.Variogram.Model)
	require.NotNil(t, zinc.Degree)
	assert.Equal(t, 1, *zinc.Degree)
	assert.Nil(t, zinc.Mean)

	lead := cfg.Params["lead"]
	require.NotNil(t, lead.Mean)
	assert.Equal(t, 120.5, *lead.Mean)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
input: samples.csv
grid:
  size: [10, 10]
  origin: [0, 0]
  spacing: [1, 1]
output: out.csv
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Dims)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Parallel)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "dims: 2\noutput: out.csv\n")
	_, err = Load(path)
	var valErr *errors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "input", valErr.ParamName)

	path = writeConfig(t, "input: samples.csv\ndims: 0\n")
	_, err = Load(path)
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "dims", valErr.ParamName)

	path = writeConfig(t, "input: [not, a, string]\n")
	_, err = Load(path)
	assert.Error(t, err, "malformed YAML type")
}

func TestVariogramConfigBuild(t *testing.T) {
	tests := []struct {
		model string
		want  variogram.Model
	}{
		{"", &variogram.Gaussian{}},
		{"gaussian", &variogram.Gaussian{}},
		{"exponential", &variogram.Exponential{}},
		{"spherical", &variogram.Spherical{}},
		{"matern32", &variogram.Matern32{}},
	}
	for _, tt := range tests {
		vc := VariogramConfig{Model: tt.model, Sill: 1, Range: 10}
		m, err := vc.Build()
		require.NoError(t, err, tt.model)
		assert.IsType(t, tt.want, m)
	}

	vc := VariogramConfig{Model: "cubic", Sill: 1, Range: 10}
	_, err := vc.Build()
	var valErr *errors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "model", valErr.ParamName)
}

func TestSolverConfig(t *testing.T) {
	mean := 5.0
	degree := 2
	cfg := Config{
		Params: map[string]VariableConfig{
			"zinc": {
				Variogram: &VariogramConfig{Model: "exponential", Sill: 1, Range: 100},
				Degree:    &degree,
			},
			"lead": {Mean: &mean},
		},
	}

	sc, err := cfg.SolverConfig()
	require.NoError(t, err)
	assert.IsType(t, &variogram.Exponential{}, sc["zinc"].Variogram)
	assert.Equal(t, 2, *sc["zinc"].Degree)
	assert.Equal(t, 5.0, *sc["lead"].Mean)
	assert.Nil(t, sc["lead"].Variogram)
}

func TestSolverConfigBadVariogram(t *testing.T) {
	cfg := Config{
		Params: map[string]VariableConfig{
			"zinc": {Variogram: &VariogramConfig{Model: "gaussian", Sill: 1, Range: -5}},
		},
	}
	_, err := cfg.SolverConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"zinc"`)
}
