// Package config provides YAML run-configuration loading for the geokrige
// CLI: input data locations, the target grid, and per-variable kriging
// parameters. The library-level solver takes its configuration through
// solver.Config; this package is the file-format bridge used by cmd/geokrige.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/solver"
	"github.com/jakobetzel/geokrige/variogram"
)

// VariogramConfig selects a variogram model by name with its parameters.
type VariogramConfig struct {
	// Model is one of "gaussian", "exponential", "spherical", "matern32".
	Model  string  `yaml:"model"`
	Sill   float64 `yaml:"sill"`
	Range  float64 `yaml:"range"`
	Nugget float64 `yaml:"nugget"`
}

// Build constructs the configured variogram model.
func (v *VariogramConfig) Build() (variogram.Model, error) {
	switch v.Model {
	case "", "gaussian":
		return variogram.NewGaussian(v.Sill, v.Range, v.Nugget)
	case "exponential":
		return variogram.NewExponential(v.Sill, v.Range, v.Nugget)
	case "spherical":
		return variogram.NewSpherical(v.Sill, v.Range, v.Nugget)
	case "matern32":
		return variogram.NewMatern32(v.Sill, v.Range, v.Nugget)
	default:
		return nil, errors.NewValidationError("model", "unknown variogram model", v.Model)
	}
}

// VariableConfig holds the optional kriging parameters of one variable.
// Drift functions cannot be expressed in YAML; external-drift kriging is
// reachable only through the library API.
type VariableConfig struct {
	Variogram *VariogramConfig `yaml:"variogram,omitempty"`
	Mean      *float64         `yaml:"mean,omitempty"`
	Degree    *int             `yaml:"degree,omitempty"`
}

// GridConfig describes the regular target grid of a run.
type GridConfig struct {
	Size    []int     `yaml:"size"`
	Origin  []float64 `yaml:"origin"`
	Spacing []float64 `yaml:"spacing"`
}

// Config is the full CLI run configuration.
type Config struct {
	// Input is the path of the sample CSV: one coordinate column per
	// dimension followed by one column per variable.
	Input string `yaml:"input"`

	// Dims is the number of leading coordinate columns in the input.
	Dims int `yaml:"dims"`

	// Variables restricts the solve to these variables; empty means all.
	Variables []string `yaml:"variables,omitempty"`

	// Grid is the estimation target.
	Grid GridConfig `yaml:"grid"`

	// Params holds per-variable kriging parameters.
	Params map[string]VariableConfig `yaml:"params,omitempty"`

	// Output is the path of the result CSV.
	Output string `yaml:"output"`

	// Heatmap, if set, is the PNG path for a rendered mean surface
	// (2D grids only).
	Heatmap string `yaml:"heatmap,omitempty"`

	// Parallel partitions the estimation loop across CPU cores.
	Parallel bool `yaml:"parallel"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Dims:     2,
		LogLevel: "info",
	}
}

// Load reads and parses a YAML run configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}
	if cfg.Input == "" {
		return nil, errors.NewValidationError("input", "sample CSV path is required", cfg.Input)
	}
	if cfg.Dims <= 0 {
		return nil, errors.NewValidationError("dims", "must be > 0", cfg.Dims)
	}
	return cfg, nil
}

// SolverConfig converts the per-variable file parameters into the solver's
// configuration type.
func (c *Config) SolverConfig() (solver.Config, error) {
	out := make(solver.Config, len(c.Params))
	for name, vc := range c.Params {
		p := solver.Params{Mean: vc.Mean, Degree: vc.Degree}
		if vc.Variogram != nil {
			vg, err := vc.Variogram.Build()
			if err != nil {
				return nil, errors.Wrapf(err, "variable %q", name)
			}
			p.Variogram = vg
		}
		out[name] = p
	}
	return out, nil
}
