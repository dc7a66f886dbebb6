package constraint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NSteinhoff/meal-planner/pkg/errors"
)

// rangeSeparator splits the minimum and maximum tokens of a range string.
const rangeSeparator = ":"

// Range is an optional lower and/or upper bound on one numeric metric.
// A nil bound means unbounded on that side.
type Range struct {
	Min *float64
	Max *float64
}

// NewRange creates a Range with both bounds set.
// Returns an error if min is greater than max.
func NewRange(min, max float64) (Range, error) {
	if min > max {
		return Range{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"range minimum cannot exceed maximum",
			map[string]any{"min": min, "max": max},
		)
	}
	return Range{Min: &min, Max: &max}, nil
}

// ParseRange parses a range string. Accepted forms are "MIN:MAX", "MIN:",
// ":MAX", and a bare "N" which means both bounds equal N. An empty token
// on either side of the separator means unbounded on that side.
func ParseRange(s string) (Range, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Range{}, errors.New(errors.ErrCodeInvalidRequest, "range cannot be empty")
	}

	minTok, maxTok, found := strings.Cut(trimmed, rangeSeparator)
	if !found {
		// Bare value means an exact match on both bounds.
		maxTok = minTok
	}

	var r Range
	if tok := strings.TrimSpace(minTok); tok != "" {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Range{}, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid range minimum", err, map[string]any{"value": tok})
		}
		r.Min = &v
	}
	if tok := strings.TrimSpace(maxTok); tok != "" {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Range{}, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid range maximum", err, map[string]any{"value": tok})
		}
		r.Max = &v
	}

	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return Range{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"range minimum cannot exceed maximum",
			map[string]any{"min": *r.Min, "max": *r.Max},
		)
	}

	return r, nil
}

// Contains reports whether v satisfies the range. A missing bound never
// rejects, so the zero Range accepts every value.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// IsUnbounded reports whether neither bound is set.
func (r Range) IsUnbounded() bool {
	return r.Min == nil && r.Max == nil
}

// String returns the range in its parseable MIN:MAX form.
func (r Range) String() string {
	var minTok, maxTok string
	if r.Min != nil {
		minTok = strconv.FormatFloat(*r.Min, 'f', -1, 64)
	}
	if r.Max != nil {
		maxTok = strconv.FormatFloat(*r.Max, 'f', -1, 64)
	}
	return fmt.Sprintf("%s%s%s", minTok, rangeSeparator, maxTok)
}
