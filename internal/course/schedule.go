package course

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ConflictPair is a pair of courses whose intervals overlap.
type ConflictPair struct {
	First  Course
	Second Course
}

// CheckConflicts enumerates every conflicting pair among the given courses.
// It is quadratic and meant for validation, not for search loops.
func CheckConflicts(courses []Course) []ConflictPair {
	conflicts := []ConflictPair{}
	for i, first := range courses {
		for _, second := range courses[i+1:] {
			if first.ConflictsWith(second) {
				conflicts = append(conflicts, ConflictPair{First: first, Second: second})
			}
		}
	}
	return conflicts
}

// HasConflicts reports whether any two of the given courses overlap.
func HasConflicts(courses []Course) bool {
	return len(CheckConflicts(courses)) > 0
}

// TotalGap sums the idle hours between consecutive courses once they are
// ordered by start time. Zero or one courses yield no gap.
func TotalGap(courses []Course) float64 {
	if len(courses) <= 1 {
		return 0.0
	}

	sorted := slices.Clone(courses)
	slices.SortFunc(sorted, func(a, b Course) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})

	totalGap := 0.0
	for i := 0; i < len(sorted)-1; i++ {
		// GapTo floors at zero for overlapping successors
		totalGap += sorted[i].GapTo(sorted[i+1])
	}
	return totalGap
}

// TotalCredits sums the credit weights of the given courses.
func TotalCredits(courses []Course) int {
	return lo.SumBy(courses, func(c Course) int { return c.Credits })
}

// PrerequisitesMet reports whether every prerequisite of every course is a
// member of the available id set. Ids absent from the set block, including
// ids that exist nowhere in the catalog.
func PrerequisitesMet(courses []Course, available map[string]bool) bool {
	return lo.EveryBy(courses, func(c Course) bool {
		return lo.EveryBy(c.Prerequisites, func(prereq string) bool { return available[prereq] })
	})
}

// Eligible restricts a catalog to the courses whose prerequisites are all in
// the completed id set, preserving catalog order.
func Eligible(catalog []Course, completed map[string]bool) []Course {
	return lo.Filter(catalog, func(c Course, _ int) bool {
		return lo.EveryBy(c.Prerequisites, func(prereq string) bool { return completed[prereq] })
	})
}

// Validate checks that a schedule is feasible: no two selected courses
// overlap, and every prerequisite is covered by the completed ids or by the
// selection itself. It returns a diagnostic reason on failure.
func Validate(selected []Course, completed map[string]bool) (bool, string) {
	conflicts := CheckConflicts(selected)
	if len(conflicts) > 0 {
		pairs := lo.Map(conflicts, func(p ConflictPair, _ int) string {
			return fmt.Sprintf("%v vs %v", p.First.ID, p.Second.ID)
		})
		return false, fmt.Sprintf("time conflicts detected: %v", strings.Join(pairs, ", "))
	}

	available := make(map[string]bool, len(completed)+len(selected))
	for id := range completed {
		available[id] = completed[id]
	}
	for _, c := range selected {
		available[c.ID] = true
	}

	if !PrerequisitesMet(selected, available) {
		return false, "prerequisites not satisfied"
	}
	return true, "schedule is valid"
}
