// Package solver orchestrates kriging estimation: it resolves per-variable
// parameter records into concrete estimator variants, fits each one to the
// valid samples of its variable, and drives the estimation loop over every
// location of a target domain in path order.
package solver

import (
	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/spatial"
)

// Problem is an estimation problem: sampled data, a target domain and the
// set of variables to estimate over it.
type Problem struct {
	data   *spatial.Table
	domain spatial.Domain
	vars   []string
}

// NewProblem creates an estimation problem. An empty variable list targets
// every variable of the table. The table's sample locations and the target
// domain must share the same coordinate dimensionality.
func NewProblem(data *spatial.Table, domain spatial.Domain, vars ...string) (*Problem, error) {
	if data == nil {
		return nil, errors.NewDataError("", "sample data is required")
	}
	if domain == nil {
		return nil, errors.NewDataError("", "target domain is required")
	}
	if data.Dims() != domain.Dims() {
		return nil, errors.NewDimensionError("NewProblem", data.Dims(), domain.Dims(), 1)
	}
	if len(vars) == 0 {
		vars = data.Variables()
	} else {
		for _, name := range vars {
			if !data.Has(name) {
				return nil, errors.NewConfigurationError(name, "target variable not present in sample data")
			}
		}
		vars = append([]string(nil), vars...)
	}
	return &Problem{data: data, domain: domain, vars: vars}, nil
}

// Data returns the sample table.
func (p *Problem) Data() *spatial.Table { return p.data }

// Domain returns the target domain.
func (p *Problem) Domain() spatial.Domain { return p.domain }

// Variables returns the target variable names in estimation order.
func (p *Problem) Variables() []string {
	return append([]string(nil), p.vars...)
}
