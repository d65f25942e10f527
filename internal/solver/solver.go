package solver

import (
	"github.com/samber/lo"

	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/course"
)

// Objective selects which of the three objective functions a scheduler
// optimizes.
type Objective int

const (
	// MaxCredits maximizes the total credit weight of the selection.
	MaxCredits Objective = iota
	// MinGaps minimizes the idle time between consecutive selected courses.
	MinGaps
	// Combined maximizes credits minus a weighted idle-time penalty.
	Combined
)

func (o Objective) String() string {
	switch o {
	case MaxCredits:
		return "max-credits"
	case MinGaps:
		return "min-gaps"
	case Combined:
		return "combined"
	}
	return "unknown"
}

// DefaultGapPenalty is the per-hour idle-time penalty used by the combined
// objective when the caller does not override it.
const DefaultGapPenalty = 0.1

// Params carries the per-invocation inputs shared by every strategy.
type Params struct {
	// Completed holds the ids of already-passed courses; prerequisites are
	// checked against it. A nil map means nothing is completed.
	Completed map[string]bool
	// GapPenalty is consumed by combined-objective variants only.
	GapPenalty float64
}

// Result is the output of one solve: the selected courses plus their
// aggregate credit and gap metrics, always recomputed from the selection.
type Result struct {
	Courses      []course.Course
	TotalCredits int
	TotalGap     float64
}

// Count returns the number of selected courses.
func (r Result) Count() int {
	return len(r.Courses)
}

// CourseIDs returns the ids of the selected courses in selection order.
func (r Result) CourseIDs() []string {
	return lo.Map(r.Courses, func(c course.Course, _ int) string { return c.ID })
}

// Score evaluates the combined objective (credits minus weighted gap) of the
// result under the given penalty.
func (r Result) Score(gapPenalty float64) float64 {
	return float64(r.TotalCredits) - gapPenalty*r.TotalGap
}

func newResult(selected []course.Course) Result {
	return Result{
		Courses:      selected,
		TotalCredits: course.TotalCredits(selected),
		TotalGap:     course.TotalGap(selected),
	}
}

// Scheduler produces a conflict-free, prerequisite-eligible selection out of
// a catalog. Implementations are pure with respect to their inputs: repeated
// calls with identical inputs yield identical selections.
type Scheduler interface {
	Schedule(catalog []course.Course, params Params) (Result, error)
}
