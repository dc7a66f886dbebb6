package planner

import (
	"github.com/NSteinhoff/meal-planner/pkg/constraint"
	"github.com/NSteinhoff/meal-planner/pkg/recipe"
)

// Totals are the aggregate metrics of a candidate plan. Macro sums are
// rounded to the recipe package precision and calories are derived from
// the rounded sums, so constraint checks see the same numbers as the
// plan output.
type Totals struct {
	P    float64
	C    float64
	F    float64
	Kcal float64

	// Pi is the protein-calorie fraction. It is zero and undefined when
	// Kcal is zero; use the Kcal field to distinguish that case.
	Pi float64
}

// TotalsOf computes the aggregate metrics for a set of recipes.
func TotalsOf(meals []recipe.Recipe) Totals {
	var p, c, f float64
	for _, m := range meals {
		p += m.Protein
		c += m.Carbs
		f += m.Fat
	}

	t := Totals{
		P: recipe.Round(p),
		C: recipe.Round(c),
		F: recipe.Round(f),
	}
	t.Kcal = recipe.Round(recipe.Calories(t.P, t.C, t.F))
	if t.Kcal != 0 {
		t.Pi = recipe.Round(t.P * 4 / t.Kcal)
	}

	return t
}

// Metric returns the totals value for the given metric.
func (t Totals) Metric(m constraint.Metric) float64 {
	switch m {
	case constraint.MetricKcal:
		return t.Kcal
	case constraint.MetricProtein:
		return t.P
	case constraint.MetricCarbs:
		return t.C
	case constraint.MetricFat:
		return t.F
	case constraint.MetricProteinFraction:
		return t.Pi
	default:
		return 0
	}
}

// Evaluate computes the totals for a candidate plan and checks them
// against the constraint set. Metrics are checked in the fixed order
// returned by constraint.Metrics and evaluation stops at the first
// failure. The returned totals are always the full aggregate values,
// whether or not the candidate passed.
func Evaluate(meals []recipe.Recipe, cs *constraint.Set) (Totals, bool) {
	t := TotalsOf(meals)

	for _, m := range constraint.Metrics() {
		r, ok := cs.Range(m)
		if !ok {
			continue
		}

		// The protein fraction of a zero-calorie plan is undefined, so any
		// range with a bound set rejects the candidate.
		if m == constraint.MetricProteinFraction && t.Kcal == 0 {
			if r.IsUnbounded() {
				continue
			}
			return t, false
		}

		if !r.Contains(t.Metric(m)) {
			return t, false
		}
	}

	return t, true
}
