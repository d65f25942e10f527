package mip

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
)

type cpSATSolver struct {
	parameters *sppb.SatParameters
}

// NewCPSATSolver returns a Solver backed by the or-tools CP-SAT engine with
// its default parameters.
func NewCPSATSolver() Solver {
	return &cpSATSolver{}
}

// NewCPSATSolverWithParameters returns a CP-SAT backed Solver with explicit
// solver parameters (e.g. a worker count).
func NewCPSATSolverWithParameters(parameters *sppb.SatParameters) Solver {
	return &cpSATSolver{parameters: parameters}
}

func (solver *cpSATSolver) Solve(model *cmpb.CpModelProto) (*cmpb.CpSolverResponse, error) {
	response, err := cpmodel.SolveCpModelWithParameters(model, solver.parameters)
	if err != nil {
		return nil, fmt.Errorf("an error occurred during cp-sat execution: %w", err)
	}
	if response.GetStatus() != cmpb.CpSolverStatus_OPTIMAL {
		return nil, fmt.Errorf("%w: status %v", ErrNoOptimum, response.GetStatus())
	}
	return response, nil
}
