// Package report runs scheduling strategies side by side and renders the
// comparison: one table per objective plus solution-quality statistics of
// exact runs against the heuristic. It sits strictly downstream of the
// engine and feeds nothing back into it.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"

	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/course"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/solver"
)

// Outcome is one strategy run under one objective, with its wall time.
type Outcome struct {
	Strategy  string
	Objective solver.Objective
	Result    solver.Result
	Elapsed   time.Duration
}

// Run executes one scheduler and captures its outcome.
func Run(strategy string, s solver.Scheduler, objective solver.Objective, catalog []course.Course, params solver.Params) (Outcome, error) {
	started := time.Now()
	result, err := s.Schedule(catalog, params)
	if err != nil {
		return Outcome{}, fmt.Errorf("%v (%v): %w", strategy, objective, err)
	}
	return Outcome{
		Strategy:  strategy,
		Objective: objective,
		Result:    result,
		Elapsed:   time.Since(started),
	}, nil
}

// Comparison accumulates outcomes across strategies and objectives.
type Comparison struct {
	Outcomes []Outcome
}

func (c *Comparison) Add(outcome Outcome) {
	c.Outcomes = append(c.Outcomes, outcome)
}

// ByObjective returns the outcomes recorded for one objective, in insertion
// order.
func (c *Comparison) ByObjective(objective solver.Objective) []Outcome {
	return lo.Filter(c.Outcomes, func(o Outcome, _ int) bool { return o.Objective == objective })
}

// WriteTable renders one comparison row per outcome, grouped by objective.
func (c *Comparison) WriteTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Objective\tStrategy\tCourses\tCredits\tGap (h)\tTime")
	for _, objective := range []solver.Objective{solver.MaxCredits, solver.MinGaps, solver.Combined} {
		for _, o := range c.ByObjective(objective) {
			fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%.2f\t%v\n",
				o.Objective, o.Strategy, o.Result.Count(), o.Result.TotalCredits, o.Result.TotalGap, o.Elapsed)
		}
	}
	tw.Flush()
}

// WriteSelections lists each outcome's selected courses sorted by start time.
func (c *Comparison) WriteSelections(w io.Writer) {
	for _, o := range c.Outcomes {
		fmt.Fprintf(w, "--- %v / %v ---\n", o.Objective, o.Strategy)
		selected := slices.Clone(o.Result.Courses)
		slices.SortFunc(selected, func(a, b course.Course) int {
			return cmp.Compare(a.StartTime, b.StartTime)
		})
		for _, c := range selected {
			fmt.Fprintf(w, "  %-10v %-30v %.1fh-%.1fh (%v credits)\n", c.ID, c.Name, c.StartTime, c.EndTime, c.Credits)
		}
	}
}

// Delta is the solution-quality difference of an exact run against the
// heuristic run under the same objective.
type Delta struct {
	Objective    solver.Objective
	Exact        string
	CreditsExtra int
	GapSaved     float64
}

// QualityDeltas compares every non-heuristic outcome against the heuristic
// one sharing its objective.
func (c *Comparison) QualityDeltas(heuristic string) []Delta {
	deltas := []Delta{}
	for _, o := range c.Outcomes {
		if o.Strategy == heuristic {
			continue
		}
		baseline, found := lo.Find(c.Outcomes, func(b Outcome) bool {
			return b.Strategy == heuristic && b.Objective == o.Objective
		})
		if !found {
			continue
		}
		deltas = append(deltas, Delta{
			Objective:    o.Objective,
			Exact:        o.Strategy,
			CreditsExtra: o.Result.TotalCredits - baseline.Result.TotalCredits,
			GapSaved:     baseline.Result.TotalGap - o.Result.TotalGap,
		})
	}
	return deltas
}

// WriteSummary renders the quality deltas of exact strategies against the
// named heuristic.
func (c *Comparison) WriteSummary(w io.Writer, heuristic string) {
	for _, d := range c.QualityDeltas(heuristic) {
		fmt.Fprintf(w, "%v: %v found %+d credits, %.2fh gap saved vs %v\n",
			d.Objective, d.Exact, d.CreditsExtra, d.GapSaved, heuristic)
	}
}
