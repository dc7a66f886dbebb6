package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/NSteinhoff/meal-planner/pkg/constraint"
	"github.com/NSteinhoff/meal-planner/pkg/recipe"
)

// cancelCheckInterval is how many candidates are evaluated between
// context cancellation checks.
const cancelCheckInterval = 1024

// Search enumerates candidate plans over the table and returns the first
// MaxResults plans that satisfy the constraint set, in enumeration order:
// plan size ascending from 1 to MaxMeals, and within a size the standard
// lexicographic combination order over recipe indices. An empty table or
// a MaxMeals below 1 yields an empty result, not an error.
//
// The table and constraint set are read-only to the search; repeated calls
// with the same inputs return identical results.
func Search(ctx context.Context, table recipe.Table, cs *constraint.Set) ([]Plan, error) {
	if cs == nil {
		cs = constraint.NewSet()
	}

	start := time.Now()
	defer func() {
		searchDuration.Observe(time.Since(start).Seconds())
	}()

	results := []Plan{}
	if len(table) == 0 || cs.MaxMeals < 1 || cs.MaxResults < 1 {
		return results, nil
	}

	maxSize := cs.MaxMeals
	if maxSize > len(table) {
		maxSize = len(table)
	}

	meals := make([]recipe.Recipe, 0, maxSize)
	var evaluated int

	for size := 1; size <= maxSize; size++ {
		combos := newCombinations(len(table), size)
		for {
			idx, ok := combos.next()
			if !ok {
				break
			}

			evaluated++
			if evaluated%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					plansEvaluated.Add(float64(evaluated))
					return nil, err
				}
			}

			meals = meals[:0]
			for _, i := range idx {
				meals = append(meals, table[i])
			}

			if _, ok := Evaluate(meals, cs); !ok {
				continue
			}

			results = append(results, NewPlan(meals))
			if len(results) == cs.MaxResults {
				plansEvaluated.Add(float64(evaluated))
				plansAccepted.Add(float64(len(results)))
				logSearch(start, evaluated, len(results), true)
				return results, nil
			}
		}
	}

	plansEvaluated.Add(float64(evaluated))
	plansAccepted.Add(float64(len(results)))
	logSearch(start, evaluated, len(results), false)
	return results, nil
}

func logSearch(start time.Time, evaluated, accepted int, capped bool) {
	slog.Debug("plan search completed",
		"evaluated", evaluated,
		"accepted", accepted,
		"capped", capped,
		"duration", time.Since(start).String(),
	)
}
