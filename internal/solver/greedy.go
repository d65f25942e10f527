package solver

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/course"
)

// greedyScheduler is a single-pass heuristic: it orders the eligible courses
// by an objective-specific key and accepts each course that conflicts with
// none accepted before it. Fast, deterministic, not optimal in general.
type greedyScheduler struct {
	objective Objective
}

// NewGreedy returns the greedy heuristic specialized for the given objective.
func NewGreedy(objective Objective) Scheduler {
	return &greedyScheduler{objective: objective}
}

func (g *greedyScheduler) Schedule(catalog []course.Course, params Params) (Result, error) {
	order := course.Eligible(catalog, params.Completed)

	switch g.objective {
	case MaxCredits:
		// High-weight courses first, earlier finishers breaking ties.
		slices.SortStableFunc(order, func(a, b course.Course) int {
			if a.Credits != b.Credits {
				return b.Credits - a.Credits
			}
			return cmp.Compare(a.EndTime, b.EndTime)
		})
	case MinGaps:
		// Earliest-finish-time ordering, repurposed for gap minimization.
		slices.SortStableFunc(order, func(a, b course.Course) int {
			return cmp.Compare(a.EndTime, b.EndTime)
		})
	case Combined:
		// The end/credits ratio favors early finishers with many credits.
		// Note the gap penalty plays no part in this ordering.
		slices.SortStableFunc(order, func(a, b course.Course) int {
			return cmp.Compare(a.EndTime/float64(a.Credits), b.EndTime/float64(b.Credits))
		})
	}

	selected := []course.Course{}
	for _, candidate := range order {
		if !lo.SomeBy(selected, candidate.ConflictsWith) {
			selected = append(selected, candidate)
		}
	}

	return newResult(selected), nil
}
