package tdee

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/NSteinhoff/meal-planner/pkg/errors"
)

// ActivityLevel classifies habitual physical activity for the
// parameter-based estimate.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHeavy     ActivityLevel = "heavy"
	ActivityAthlete   ActivityLevel = "athlete"
)

// activityFactors maps each level to its BMR multiplier.
var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityHeavy:     1.725,
	ActivityAthlete:   1.9,
}

// SupportedActivityLevels returns the valid levels in ascending order of
// their multipliers.
func SupportedActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary,
		ActivityLight,
		ActivityModerate,
		ActivityHeavy,
		ActivityAthlete,
	}
}

// ParseActivityLevel converts a string to an ActivityLevel,
// case-insensitively.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	level := ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := activityFactors[level]; !ok {
		return "", errors.NewWithContext(
			errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid activity level %q", s),
			map[string]any{"supported": SupportedActivityLevels()},
		)
	}
	return level, nil
}

// IsValid reports whether the level is one of the supported values.
func (a ActivityLevel) IsValid() bool {
	_, ok := activityFactors[a]
	return ok
}

func (a ActivityLevel) String() string {
	return string(a)
}

// Params holds the inputs for a parameter-based estimate.
type Params struct {
	// Weight is body weight in kilograms.
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0"`
	// BodyFat is body fat as a percentage of total weight.
	BodyFat float64 `json:"bodyFat" yaml:"bodyFat" validate:"gte=0,lt=100"`
	// Activity is the habitual activity level.
	Activity ActivityLevel `json:"activityLevel" yaml:"activityLevel" validate:"required"`
}

// Validate checks the parameter fields against their declared constraints.
func (p Params) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if !p.Activity.IsValid() {
		return errors.New(
			errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid activity level %q", p.Activity),
		)
	}
	return nil
}

// LeanBodyMass returns the fat-free mass in kilograms.
func (p Params) LeanBodyMass() float64 {
	return p.Weight * (1 - p.BodyFat/100)
}

// BMR returns the Katch-McArdle basal metabolic rate in kcal per day:
// 370 + 21.6 x lean body mass.
func (p Params) BMR() float64 {
	return 370 + 21.6*p.LeanBodyMass()
}

// Calculate returns the estimated daily energy expenditure in kcal:
// basal metabolic rate scaled by the activity multiplier.
func Calculate(p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.BMR() * activityFactors[p.Activity], nil
}
