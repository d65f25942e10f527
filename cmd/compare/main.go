// The compare command loads a catalog, runs every strategy under every
// objective and prints the comparison tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/catalog"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/mip"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/report"
	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/solver"
)

type strategy struct {
	name      string
	scheduler solver.Scheduler
}

func main() {
	dataFile := flag.String("data", "data/sample_courses.json", "path to the JSON course catalog")
	completedList := flag.String("completed", "", "comma-separated ids of already-completed courses")
	gapPenalty := flag.Float64("penalty", solver.DefaultGapPenalty, "idle-hour penalty of the combined objective")
	skipILP := flag.Bool("skip-ilp", false, "run heuristic and branch-and-bound strategies only")
	flag.Parse()

	if *gapPenalty < 0 {
		log.Fatal("penalty must be non-negative")
	}

	courses, err := catalog.Load(*dataFile)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	completed := map[string]bool{}
	for _, id := range strings.Split(*completedList, ",") {
		if id = strings.TrimSpace(id); id != "" {
			completed[id] = true
		}
	}

	params := solver.Params{Completed: completed, GapPenalty: *gapPenalty}
	cpsat := mip.NewCPSATSolver()

	comparison := &report.Comparison{}
	for _, objective := range []solver.Objective{solver.MaxCredits, solver.MinGaps, solver.Combined} {
		schedulers := []strategy{
			{"greedy", solver.NewGreedy(objective)},
			{"branch-and-bound", solver.NewBranchAndBound(objective)},
		}
		if !*skipILP {
			schedulers = append(schedulers, strategy{"ilp", solver.NewILP(objective, cpsat)})
		}

		for _, s := range schedulers {
			outcome, err := report.Run(s.name, s.scheduler, objective, courses, params)
			if err != nil {
				log.Fatal(err)
			}
			comparison.Add(outcome)
		}
	}

	fmt.Printf("%v courses, %v completed, penalty %v\n\n", len(courses), len(completed), *gapPenalty)
	comparison.WriteTable(os.Stdout)
	fmt.Println()
	comparison.WriteSummary(os.Stdout, "greedy")
}
