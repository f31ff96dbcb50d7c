package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jakobetzel/geokrige/pkg/config"
	"github.com/jakobetzel/geokrige/pkg/log"
	"github.com/jakobetzel/geokrige/render"
	"github.com/jakobetzel/geokrige/solver"
	"github.com/jakobetzel/geokrige/spatial"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Estimate variables over the configured grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		log.SetupLogger(cfg.LogLevel)

		table, err := readSamples(cfg.Input, cfg.Dims)
		if err != nil {
			return err
		}
		grid, err := spatial.NewRegularGrid(cfg.Grid.Size, cfg.Grid.Origin, cfg.Grid.Spacing)
		if err != nil {
			return err
		}
		problem, err := solver.NewProblem(table, grid, cfg.Variables...)
		if err != nil {
			return err
		}
		solverCfg, err := cfg.SolverConfig()
		if err != nil {
			return err
		}

		result, solveErr := solver.Solve(problem, solverCfg,
			solver.WithParallel(cfg.Parallel))
		if solveErr != nil {
			// Surviving variables are still written below.
			slog.Error("solve finished with failures", log.ErrAttr(solveErr))
		}
		if len(result) == 0 {
			return solveErr
		}

		if cfg.Output != "" {
			if err := writeResult(cfg.Output, grid, problem.Variables(), result); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d locations, %d variables)\n", cfg.Output, grid.Len(), len(result))
		}

		if cfg.Heatmap != "" {
			for name, est := range result {
				path := cfg.Heatmap
				if len(result) > 1 {
					path = fmt.Sprintf("%s.%s.png", path, name)
				}
				if err := render.Heatmap(grid, est.Means, name, path); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", path)
			}
		}
		return solveErr
	},
}
