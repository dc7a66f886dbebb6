package planner

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/NSteinhoff/meal-planner/pkg/constraint"
)

// Query parameter names for plan searches. The range parameters mirror the
// CLI option names.
const (
	QueryParamMaxMeals   = "n"
	QueryParamMaxResults = "max-results"
)

// ParseQuery builds a constraint set from HTTP query parameters. Range
// parameters (kcal, p, c, f, pi) accept the MIN:MAX grammar; n and
// max-results must be positive integers. Absent parameters keep their
// defaults.
func ParseQuery(r *http.Request) (*constraint.Set, error) {
	q := r.URL.Query()

	opts := []constraint.Option{}

	for _, m := range constraint.Metrics() {
		raw := q.Get(m.String())
		if raw == "" {
			continue
		}

		rng, err := constraint.ParseRange(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s range %q: %w", m, raw, err)
		}
		opts = append(opts, constraint.WithRange(m, rng))
	}

	if raw := q.Get(QueryParamMaxMeals); raw != "" {
		n, err := parsePositiveInt(QueryParamMaxMeals, raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, constraint.WithMaxMeals(n))
	}

	if raw := q.Get(QueryParamMaxResults); raw != "" {
		n, err := parsePositiveInt(QueryParamMaxResults, raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, constraint.WithMaxResults(n))
	}

	return constraint.NewSet(opts...), nil
}

func parsePositiveInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}
