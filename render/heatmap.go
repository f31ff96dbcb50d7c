// Package render writes estimated surfaces to images. It renders the mean or
// variance surface of a 2D regular grid as a PNG heatmap, mainly for quick
// visual inspection of a solve.
package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/spatial"
)

// gridData adapts a RegularGrid surface to the plotter.GridXYZ interface.
// Grid location order is row-major with the first axis fastest, so value
// index is c + r*nx.
type gridData struct {
	grid   *spatial.RegularGrid
	values []float64
	nx, ny int
}

func (g *gridData) Dims() (int, int) { return g.nx, g.ny }

func (g *gridData) Z(c, r int) float64 { return g.values[c+r*g.nx] }

func (g *gridData) X(c int) float64 {
	return g.grid.Coordinates(c)[0]
}

func (g *gridData) Y(r int) float64 {
	return g.grid.Coordinates(r * g.nx)[1]
}

// Heatmap renders a surface over a 2D regular grid to a PNG file. The values
// slice must be index-aligned with the grid's location order, as produced by
// solver.Solve.
func Heatmap(grid *spatial.RegularGrid, values []float64, title, path string) error {
	if grid.Dims() != 2 {
		return errors.NewDimensionError("render.Heatmap", 2, grid.Dims(), 1)
	}
	if len(values) != grid.Len() {
		return errors.NewDimensionError("render.Heatmap", grid.Len(), len(values), 0)
	}

	size := grid.Size()
	data := &gridData{grid: grid, values: values, nx: size[0], ny: size[1]}

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(data, pal)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(hm)

	if err := p.Save(16*vg.Centimeter, 12*vg.Centimeter, path); err != nil {
		return errors.Wrap(err, "saving heatmap")
	}
	return nil
}
