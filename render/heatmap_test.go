package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/spatial"
)

func TestHeatmapWritesPNG(t *testing.T) {
	grid, err := spatial.NewRegularGrid([]int{4, 3}, []float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	values := make([]float64, grid.Len())
	for i := range values {
		values[i] = float64(i)
	}

	path := filepath.Join(t.TempDir(), "surface.png")
	require.NoError(t, Heatmap(grid, values, "zinc mean", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHeatmapRejectsNon2DGrid(t *testing.T) {
	grid, err := spatial.NewRegularGrid([]int{4}, []float64{0}, []float64{1})
	require.NoError(t, err)

	err = Heatmap(grid, make([]float64, 4), "surface", "out.png")
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 2, dimErr.Expected)
}

func TestHeatmapRejectsMisalignedValues(t *testing.T) {
	grid, err := spatial.NewRegularGrid([]int{2, 2}, []float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	err = Heatmap(grid, []float64{1, 2, 3}, "surface", "out.png")
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 4, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Got)
}
