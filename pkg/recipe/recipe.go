package recipe

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// Precision is the number of decimal places carried by macro values,
// derived calories, and every value in plan output.
const Precision = 2

const precisionFactor = 100 // 10^Precision

// Round rounds v to the package precision.
func Round(v float64) float64 {
	return math.Round(v*precisionFactor) / precisionFactor
}

// Calories derives the energy of the given macros: protein and carbs
// contribute 4 kcal per gram, fat contributes 9 kcal per gram.
func Calories(protein, carbs, fat float64) float64 {
	return protein*4 + carbs*4 + fat*9
}

// Recipe is a single named meal with its per-serving macros in grams.
// Macro values are rounded to Precision at construction time so that all
// downstream arithmetic operates on the same values a user would see.
type Recipe struct {
	Name    string  `json:"name" yaml:"name" validate:"required,min=1"`
	Protein float64 `json:"protein" yaml:"protein" validate:"gte=0"`
	Carbs   float64 `json:"carbs" yaml:"carbs" validate:"gte=0"`
	Fat     float64 `json:"fat" yaml:"fat" validate:"gte=0"`
}

// New creates a Recipe with macros rounded to Precision.
func New(name string, protein, carbs, fat float64) Recipe {
	return Recipe{
		Name:    name,
		Protein: Round(protein),
		Carbs:   Round(carbs),
		Fat:     Round(fat),
	}
}

// Kcal returns the derived per-serving calories, rounded to Precision.
func (r Recipe) Kcal() float64 {
	return Round(Calories(r.Protein, r.Carbs, r.Fat))
}

// Validate checks the recipe fields against their declared constraints.
func (r Recipe) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Table is an ordered collection of recipes. The position of a recipe in the
// table is its identity during combination enumeration, so table order
// determines result order.
type Table []Recipe

// Names returns the recipe names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, r := range t {
		names[i] = r.Name
	}
	return names
}
