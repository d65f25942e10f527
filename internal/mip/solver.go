// Package mip is the boundary to the external mixed-integer solver. The
// scheduling strategies build a CP-SAT model proto and hand it over through
// the Solver interface; they never talk to a solver backend directly.
package mip

import (
	"errors"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
)

// ErrNoOptimum reports that the solver finished without proving an optimal
// solution. Every model built by this engine admits the trivial feasible
// point of selecting nothing, so a non-optimal status is a defect of the
// solver run, never a property of the input.
var ErrNoOptimum = errors.New("solver did not reach an optimal solution")

// Solver solves a mixed-integer model to proven optimality.
type Solver interface {
	Solve(model *cmpb.CpModelProto) (*cmpb.CpSolverResponse, error)
}
