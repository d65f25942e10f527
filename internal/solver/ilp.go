package solver

import (
	"fmt"
	"math"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/course"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/mip"
)

// CP-SAT objectives take integer coefficients, so fractional terms (credit
// weights against penalty-weighted gap hours) are expressed in milli-units.
// The selection read back from the indicators is insensitive to the scaling;
// credits and gap are recomputed from it with the shared utilities.
const objectiveScale = 1000

// ilpScheduler formulates the selection problem as an integer linear program
// and hands it to an external mixed-integer solver. Unlike the fixed-order
// heuristics it models every pairwise gap contribution explicitly, which
// makes it exact for the combined objective.
type ilpScheduler struct {
	objective Objective
	solver    mip.Solver
}

// NewILP returns the integer-linear-program solver specialized for the given
// objective, delegating the actual search to the given mip.Solver.
func NewILP(objective Objective, solver mip.Solver) Scheduler {
	return &ilpScheduler{objective: objective, solver: solver}
}

func (s *ilpScheduler) Schedule(catalog []course.Course, params Params) (Result, error) {
	eligible := course.Eligible(catalog, params.Completed)
	if len(eligible) == 0 {
		return newResult([]course.Course{}), nil
	}

	builder := cpmodel.NewCpModelBuilder()

	// One binary indicator per eligible course, in catalog order.
	indicators := make([]cpmodel.BoolVar, len(eligible))
	for i, c := range eligible {
		indicators[i] = builder.NewBoolVar().WithName(fmt.Sprintf("x_%v", c.ID))
	}

	// Conflicting pairs are mutually exclusive.
	for i := range eligible {
		for j := i + 1; j < len(eligible); j++ {
			if eligible[i].ConflictsWith(eligible[j]) {
				builder.AddLessOrEqual(
					cpmodel.NewLinearExpr().AddSum(indicators[i], indicators[j]),
					cpmodel.NewConstant(1),
				)
			}
		}
	}

	switch s.objective {
	case MaxCredits:
		objective := cpmodel.NewLinearExpr()
		for i, c := range eligible {
			objective.AddTerm(indicators[i], int64(c.Credits))
		}
		builder.Maximize(objective)

	case MinGaps:
		// Lexicographic in one objective: any extra milli-hour of gap
		// outweighs every possible credit total, so the solver first
		// minimizes gap and then maximizes credits, matching the
		// branch-and-bound tie-break. Adjacent pairs keep the gap term
		// equal to the selection's real idle time.
		creditWeight := int64(course.TotalCredits(eligible)) + 1
		objective := cpmodel.NewLinearExpr()
		for _, pair := range adjacentPairs(builder, eligible, indicators) {
			objective.AddTerm(pair.both, gapUnits(pair.gap)*creditWeight)
		}
		for i, c := range eligible {
			objective.AddTerm(indicators[i], -int64(c.Credits))
		}
		// The empty selection would always win; this objective is defined
		// over non-empty selections only.
		atLeastOne := cpmodel.NewLinearExpr()
		for _, indicator := range indicators {
			atLeastOne.Add(indicator)
		}
		builder.AddGreaterOrEqual(atLeastOne, cpmodel.NewConstant(1))
		builder.Minimize(objective)

	default:
		objective := cpmodel.NewLinearExpr()
		for i, c := range eligible {
			objective.AddTerm(indicators[i], int64(c.Credits)*objectiveScale)
		}
		for _, pair := range sequentialPairs(builder, eligible, indicators) {
			objective.AddTerm(pair.both, -gapUnits(params.GapPenalty*pair.gap))
		}
		builder.Maximize(objective)
	}

	model, err := builder.Model()
	if err != nil {
		return Result{}, fmt.Errorf("cannot build scheduling model: %w", err)
	}

	response, err := s.solver.Solve(model)
	if err != nil {
		return Result{}, fmt.Errorf("cannot solve scheduling model: %w", err)
	}

	selected := []course.Course{}
	for i, c := range eligible {
		if cpmodel.SolutionBooleanValue(response, indicators[i]) {
			selected = append(selected, c)
		}
	}
	return newResult(selected), nil
}

// sequentialPair links an auxiliary indicator to an ordered, non-overlapping
// course pair: both is 1 exactly when both courses are selected, carrying the
// pair's idle hours into the objective.
type sequentialPair struct {
	both cpmodel.BoolVar
	gap  float64
}

// sequentialPairs creates one auxiliary variable per pair (i, j), i before j
// in catalog order, where course i ends at or before course j starts, and
// adds the three inequalities tying it to the logical AND of the pair's
// indicators.
func sequentialPairs(builder *cpmodel.Builder, eligible []course.Course, indicators []cpmodel.BoolVar) []sequentialPair {
	pairs := []sequentialPair{}
	for i := range eligible {
		for j := i + 1; j < len(eligible); j++ {
			if eligible[i].EndTime > eligible[j].StartTime {
				continue
			}
			both := builder.NewBoolVar().WithName(fmt.Sprintf("y_%v_%v", i, j))
			builder.AddLessOrEqual(both, indicators[i])
			builder.AddLessOrEqual(both, indicators[j])
			builder.AddGreaterOrEqual(
				cpmodel.NewLinearExpr().Add(both),
				cpmodel.NewLinearExpr().AddSum(indicators[i], indicators[j]).AddConstant(-1),
			)
			pairs = append(pairs, sequentialPair{both: both, gap: eligible[i].GapTo(eligible[j])})
		}
	}
	return pairs
}

// adjacentPairs is the gap-exact variant of sequentialPairs. The lower bound
// forcing a pair's auxiliary on is relaxed by every course scheduled between
// the two, so a pair only pays its gap when the courses are selected
// back-to-back in the timetable and the penalized gaps sum to exactly the
// selection's idle time.
func adjacentPairs(builder *cpmodel.Builder, eligible []course.Course, indicators []cpmodel.BoolVar) []sequentialPair {
	pairs := []sequentialPair{}
	for i := range eligible {
		for j := i + 1; j < len(eligible); j++ {
			if eligible[i].EndTime > eligible[j].StartTime {
				continue
			}
			both := builder.NewBoolVar().WithName(fmt.Sprintf("y_%v_%v", i, j))
			builder.AddLessOrEqual(both, indicators[i])
			builder.AddLessOrEqual(both, indicators[j])
			floor := cpmodel.NewLinearExpr().AddSum(indicators[i], indicators[j]).AddConstant(-1)
			for k := range eligible {
				if k == i || k == j {
					continue
				}
				if eligible[k].StartTime >= eligible[i].EndTime && eligible[k].EndTime <= eligible[j].StartTime {
					floor.AddTerm(indicators[k], -1)
				}
			}
			builder.AddGreaterOrEqual(cpmodel.NewLinearExpr().Add(both), floor)
			pairs = append(pairs, sequentialPair{both: both, gap: eligible[i].GapTo(eligible[j])})
		}
	}
	return pairs
}

func gapUnits(hours float64) int64 {
	return int64(math.Round(hours * objectiveScale))
}
