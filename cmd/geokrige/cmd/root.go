// Package cmd provides the CLI commands for geokrige.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "geokrige",
	Short: "Kriging estimation of spatial variables",
	Long: `geokrige estimates spatial variables at unobserved locations from
scattered samples using kriging.

A run is described by a YAML configuration naming the sample CSV, the target
grid and per-variable kriging parameters (variogram, known mean for simple
kriging, or trend degree for universal kriging).

Examples:
  geokrige run -c run.yaml
  geokrige validate -c run.yaml`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "geokrige.yaml", "run configuration file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
