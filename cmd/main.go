package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/catalog"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/course"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/mip"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/report"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/solver"
)

const File string = "data/sample_courses.json"

func main() {
	courses, err := catalog.Load(File)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}
	fmt.Printf("%v courses loaded from %v\n\n", len(courses), File)

	params := solver.Params{
		Completed:  map[string]bool{},
		GapPenalty: solver.DefaultGapPenalty,
	}
	cpsat := mip.NewCPSATSolver()

	comparison := &report.Comparison{}
	for _, objective := range []solver.Objective{solver.MaxCredits, solver.MinGaps, solver.Combined} {
		strategies := []struct {
			name      string
			scheduler solver.Scheduler
		}{
			{"greedy", solver.NewGreedy(objective)},
			{"branch-and-bound", solver.NewBranchAndBound(objective)},
			{"ilp", solver.NewILP(objective, cpsat)},
		}
		for _, s := range strategies {
			outcome, err := report.Run(s.name, s.scheduler, objective, courses, params)
			if err != nil {
				log.Fatal(err)
			}
			if ok, reason := course.Validate(outcome.Result.Courses, params.Completed); !ok {
				log.Fatalf("%v (%v) returned an invalid schedule: %v", s.name, objective, reason)
			}
			comparison.Add(outcome)
		}
	}

	comparison.WriteTable(os.Stdout)
	fmt.Println()
	comparison.WriteSelections(os.Stdout)
	fmt.Println()
	comparison.WriteSummary(os.Stdout, "greedy")
}
