// Package geokrige provides kriging estimation of spatial variables for Go,
// designed for geostatistical interpolation over point sets and regular
// grids.
//
// The library implements the classic kriging family behind one estimator
// interface: simple kriging (known mean), ordinary kriging (unknown constant
// mean), universal kriging (polynomial trend) and external-drift kriging
// (covariate trend). Each estimator factorizes its linear system once at fit
// time and reuses the factorization for every query location.
//
// # Features
//
// - One-fit-many-solve amortization: O(n³) once per variable, O(n²) per location
// - Per-variable configuration with explicit variant precedence
// - Pluggable traversal paths and optional CPU-parallel estimation loops
// - Structured error taxonomy: configuration, data and numerical failures
//
// # Quick Start
//
// Ordinary kriging of one variable over a grid:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/jakobetzel/geokrige/solver"
//	    "github.com/jakobetzel/geokrige/spatial"
//	    "github.com/jakobetzel/geokrige/variogram"
//	)
//
//	func main() {
//	    points, _ := spatial.NewPointSet([][]float64{{0, 0}, {10, 0}, {0, 10}})
//	    table, _ := spatial.NewTable(points, map[string][]float64{
//	        "zinc": {1.0, 2.0, 3.0},
//	    })
//	    grid, _ := spatial.NewRegularGrid([]int{50, 50}, []float64{0, 0}, []float64{0.2, 0.2})
//
//	    problem, _ := solver.NewProblem(table, grid)
//	    vg, _ := variogram.NewGaussian(1, 10, 0)
//	    result, err := solver.Solve(problem, solver.Config{
//	        "zinc": {Variogram: vg},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result["zinc"].Means[0], result["zinc"].Variances[0])
//	}
//
// For direct control, construct an estimator from the kriging package and
// call Fit and Estimate yourself.
package geokrige
