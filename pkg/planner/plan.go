package planner

import (
	"github.com/NSteinhoff/meal-planner/pkg/recipe"
)

// Detail is the per-recipe record embedded in plan output: the recipe name
// with its rounded macros and derived calories.
type Detail struct {
	Name string  `json:"name" yaml:"name"`
	Kcal float64 `json:"kcal" yaml:"kcal"`
	P    float64 `json:"p" yaml:"p"`
	F    float64 `json:"f" yaml:"f"`
	C    float64 `json:"c" yaml:"c"`
}

// Plan is one accepted meal plan in its output shape. Kcal is derived from
// the rounded macro sums, KcalShare holds each recipe's fraction of the
// plan's calories in meal order, and Details carries the full per-recipe
// records.
type Plan struct {
	Kcal      float64   `json:"kcal" yaml:"kcal"`
	Pi        float64   `json:"pi" yaml:"pi"`
	Meals     []string  `json:"meals" yaml:"meals"`
	KcalShare []float64 `json:"kcal %" yaml:"kcal %"`
	Details   []Detail  `json:"details" yaml:"details"`
	P         float64   `json:"p" yaml:"p"`
	F         float64   `json:"f" yaml:"f"`
	C         float64   `json:"c" yaml:"c"`
}

// Size returns the number of recipes in the plan.
func (p Plan) Size() int {
	return len(p.Meals)
}

// NewPlan builds the output representation of a plan from its recipes.
// All values are rounded to the recipe package precision. For the
// degenerate zero-calorie plan the protein fraction and calorie shares
// are reported as zero.
func NewPlan(meals []recipe.Recipe) Plan {
	t := TotalsOf(meals)

	p := Plan{
		Kcal:      t.Kcal,
		Pi:        t.Pi,
		Meals:     make([]string, 0, len(meals)),
		KcalShare: make([]float64, 0, len(meals)),
		Details:   make([]Detail, 0, len(meals)),
		P:         t.P,
		F:         t.F,
		C:         t.C,
	}

	for _, m := range meals {
		kcal := m.Kcal()

		var share float64
		if t.Kcal != 0 {
			share = recipe.Round(kcal / t.Kcal)
		}

		p.Meals = append(p.Meals, m.Name)
		p.KcalShare = append(p.KcalShare, share)
		p.Details = append(p.Details, Detail{
			Name: m.Name,
			Kcal: kcal,
			P:    m.Protein,
			F:    m.Fat,
			C:    m.Carbs,
		})
	}

	return p
}
