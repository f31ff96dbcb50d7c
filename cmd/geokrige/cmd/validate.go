package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakobetzel/geokrige/pkg/config"
	"github.com/jakobetzel/geokrige/pkg/log"
	"github.com/jakobetzel/geokrige/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Leave-one-out cross-validation of the configured estimators",
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
		solverCfg, err := cfg.SolverConfig()
		if err != nil {
			return err
		}

		vars := cfg.Variables
		if len(vars) == 0 {
			vars = table.Variables()
		}
		for _, name := range vars {
			scores, err := validation.LeaveOneOut(table, name, solverCfg[name])
			if err != nil {
				return err
			}
			fmt.Printf("%s: mse=%.6g mae=%.6g r2=%.4f\n", name, scores.MSE, scores.MAE, scores.R2)
		}
		return nil
	},
}
