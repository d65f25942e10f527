package solver

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/course"
)

// branchBoundScheduler explores the binary include/exclude decision tree over
// the eligible courses with an explicit depth-first stack, pruning subtrees
// whose bound cannot beat the incumbent. Exact for every objective; worst
// case exponential, acceptable for one student's term catalog.
type branchBoundScheduler struct {
	objective Objective
}

// NewBranchAndBound returns the exact branch-and-bound solver specialized
// for the given objective.
func NewBranchAndBound(objective Objective) Scheduler {
	return &branchBoundScheduler{objective: objective}
}

func (b *branchBoundScheduler) Schedule(catalog []course.Course, params Params) (Result, error) {
	eligible := course.Eligible(catalog, params.Completed)
	if len(eligible) == 0 {
		return newResult([]course.Course{}), nil
	}

	s := &bbSearch{order: eligible, gapPenalty: params.GapPenalty}
	switch b.objective {
	case MaxCredits:
		return s.solveMaxCredits(), nil
	case MinGaps:
		return s.solveMinGaps(), nil
	default:
		return s.solveCombined(), nil
	}
}

// bbNode is one state of the decision tree: the first depth courses of the
// search order are decided and selected holds the accepted ones. Every node
// owns its selection snapshot; nodes never alias another node's slice, so a
// popped subtree is independent of its siblings.
type bbNode struct {
	depth    int
	selected []course.Course
	credits  int
	gap      float64
	bound    float64
}

// bbSearch holds the state of a single invocation: the presorted course
// order, the worklist and the incumbent. Nothing here outlives the call.
type bbSearch struct {
	order      []course.Course
	gapPenalty float64

	// suffixCredits[i] is the credit sum of order[i:], the optimistic
	// "every undecided course fits" part of the credit bounds.
	suffixCredits []int

	stack []bbNode
}

func (s *bbSearch) push(n bbNode) {
	s.stack = append(s.stack, n)
}

func (s *bbSearch) pop() bbNode {
	n := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return n
}

func (s *bbSearch) computeSuffixCredits() {
	s.suffixCredits = make([]int, len(s.order)+1)
	for i := len(s.order) - 1; i >= 0; i-- {
		s.suffixCredits[i] = s.suffixCredits[i+1] + s.order[i].Credits
	}
}

func conflictsAny(selected []course.Course, candidate course.Course) bool {
	return lo.SomeBy(selected, candidate.ConflictsWith)
}

func include(selected []course.Course, candidate course.Course) []course.Course {
	return append(slices.Clone(selected), candidate)
}

// solveMaxCredits maximizes total credits. Bound: accumulated credits plus
// every undecided course's credits, ignoring future conflicts.
func (s *bbSearch) solveMaxCredits() Result {
	slices.SortStableFunc(s.order, func(a, b course.Course) int {
		return b.Credits - a.Credits
	})
	s.computeSuffixCredits()

	best := []course.Course{}
	bestCredits := 0

	s.push(bbNode{selected: []course.Course{}, bound: float64(s.suffixCredits[0])})
	for len(s.stack) > 0 {
		n := s.pop()

		// The incumbent may have improved since this node was pushed.
		if n.bound <= float64(bestCredits) {
			continue
		}

		if n.depth == len(s.order) {
			if n.credits > bestCredits {
				best = n.selected
				bestCredits = n.credits
			}
			continue
		}

		current := s.order[n.depth]

		// Exclude branch, pushed first so the include branch is explored
		// first and good incumbents tighten pruning early.
		if bound := float64(n.credits + s.suffixCredits[n.depth+1]); bound > float64(bestCredits) {
			s.push(bbNode{
				depth:    n.depth + 1,
				selected: slices.Clone(n.selected),
				credits:  n.credits,
				gap:      n.gap,
				bound:    bound,
			})
		}

		// Include branch, only generated when feasible.
		if !conflictsAny(n.selected, current) {
			selected := include(n.selected, current)
			credits := n.credits + current.Credits
			if bound := float64(credits + s.suffixCredits[n.depth+1]); bound > float64(bestCredits) {
				s.push(bbNode{
					depth:    n.depth + 1,
					selected: selected,
					credits:  credits,
					gap:      course.TotalGap(selected),
					bound:    bound,
				})
			}
		}
	}

	return newResult(best)
}

// solveMinGaps minimizes total idle time over non-empty selections. The
// accumulated gap is itself the bound: forcing more courses in can never
// shrink it, because GapTo floors at zero for overlapping successors.
func (s *bbSearch) solveMinGaps() Result {
	slices.SortStableFunc(s.order, func(a, b course.Course) int {
		return cmp.Compare(a.EndTime, b.EndTime)
	})

	best := []course.Course{}
	bestGap := math.Inf(1)
	bestCredits := 0
	found := false

	s.push(bbNode{selected: []course.Course{}})
	for len(s.stack) > 0 {
		n := s.pop()

		if found && n.gap >= bestGap {
			continue
		}

		if n.depth == len(s.order) {
			if len(n.selected) == 0 {
				continue
			}
			if !found || n.gap < bestGap || (n.gap == bestGap && n.credits > bestCredits) {
				best = n.selected
				bestGap = n.gap
				bestCredits = n.credits
				found = true
			}
			continue
		}

		current := s.order[n.depth]

		if !found || n.gap < bestGap {
			s.push(bbNode{
				depth:    n.depth + 1,
				selected: slices.Clone(n.selected),
				credits:  n.credits,
				gap:      n.gap,
				bound:    n.gap,
			})
		}

		if !conflictsAny(n.selected, current) {
			selected := include(n.selected, current)
			gap := course.TotalGap(selected)
			if !found || gap < bestGap {
				s.push(bbNode{
					depth:    n.depth + 1,
					selected: selected,
					credits:  n.credits + current.Credits,
					gap:      gap,
					bound:    gap,
				})
			}
		}
	}

	if !found {
		return newResult([]course.Course{})
	}
	return newResult(best)
}

// solveCombined maximizes credits minus the weighted gap. Bound: optimistic
// credit bound minus the penalty applied to the gap accumulated so far.
func (s *bbSearch) solveCombined() Result {
	slices.SortStableFunc(s.order, func(a, b course.Course) int {
		return cmp.Compare(a.EndTime/float64(a.Credits), b.EndTime/float64(b.Credits))
	})
	s.computeSuffixCredits()

	best := []course.Course{}
	bestObjective := math.Inf(-1)

	s.push(bbNode{selected: []course.Course{}, bound: float64(s.suffixCredits[0])})
	for len(s.stack) > 0 {
		n := s.pop()

		if n.bound <= bestObjective {
			continue
		}

		if n.depth == len(s.order) {
			if objective := float64(n.credits) - s.gapPenalty*n.gap; objective > bestObjective {
				best = n.selected
				bestObjective = objective
			}
			continue
		}

		current := s.order[n.depth]

		if bound := float64(n.credits+s.suffixCredits[n.depth+1]) - s.gapPenalty*n.gap; bound > bestObjective {
			s.push(bbNode{
				depth:    n.depth + 1,
				selected: slices.Clone(n.selected),
				credits:  n.credits,
				gap:      n.gap,
				bound:    bound,
			})
		}

		if !conflictsAny(n.selected, current) {
			selected := include(n.selected, current)
			credits := n.credits + current.Credits
			gap := course.TotalGap(selected)
			if bound := float64(credits+s.suffixCredits[n.depth+1]) - s.gapPenalty*gap; bound > bestObjective {
				s.push(bbNode{
					depth:    n.depth + 1,
					selected: selected,
					credits:  credits,
					gap:      gap,
					bound:    bound,
				})
			}
		}
	}

	return newResult(best)
}
