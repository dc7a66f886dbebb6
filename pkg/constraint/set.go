package constraint

// Metric identifies one aggregate value computed for a candidate plan.
type Metric string

// Metric constants, named after their range option on the command line.
const (
	// MetricKcal is the total calories of a plan.
	MetricKcal Metric = "kcal"
	// MetricProtein is the total protein in grams.
	MetricProtein Metric = "p"
	// MetricCarbs is the total carbs in grams.
	MetricCarbs Metric = "c"
	// MetricFat is the total fat in grams.
	MetricFat Metric = "f"
	// MetricProteinFraction is the fraction of calories from protein.
	MetricProteinFraction Metric = "pi"
)

// Metrics returns all metrics in evaluation order: calories first, then the
// macros, then the derived protein fraction.
func Metrics() []Metric {
	return []Metric{MetricKcal, MetricProtein, MetricCarbs, MetricFat, MetricProteinFraction}
}

// IsValid reports whether the metric is one of the supported values.
func (m Metric) IsValid() bool {
	switch m {
	case MetricKcal, MetricProtein, MetricCarbs, MetricFat, MetricProteinFraction:
		return true
	default:
		return false
	}
}

func (m Metric) String() string {
	return string(m)
}

// Search limit defaults.
const (
	// DefaultMaxMeals is the default maximum number of recipes per plan.
	DefaultMaxMeals = 5
	// DefaultMaxResults is the default maximum number of plans reported.
	DefaultMaxResults = 10
)

// Set holds the full collection of named range constraints plus the search
// limits. A Set is built once and treated as read-only afterwards; metrics
// without an entry are unconstrained.
type Set struct {
	// MaxMeals is the maximum number of recipes combined into one plan.
	// Values below 1 yield an empty search result.
	MaxMeals int

	// MaxResults is the maximum number of plans returned by a search.
	MaxResults int

	ranges map[Metric]Range
}

// Option configures a Set during construction.
type Option func(*Set)

// WithMaxMeals sets the maximum plan size.
func WithMaxMeals(n int) Option {
	return func(s *Set) {
		s.MaxMeals = n
	}
}

// WithMaxResults sets the maximum number of reported plans.
func WithMaxResults(n int) Option {
	return func(s *Set) {
		s.MaxResults = n
	}
}

// WithRange binds a range constraint to a metric. Ranges for unknown
// metrics are ignored; callers validate metric names at the parsing
// boundary.
func WithRange(m Metric, r Range) Option {
	return func(s *Set) {
		if !m.IsValid() {
			return
		}
		s.ranges[m] = r
	}
}

// NewSet creates a Set with default limits and no range constraints,
// then applies the provided options.
func NewSet(opts ...Option) *Set {
	s := &Set{
		MaxMeals:   DefaultMaxMeals,
		MaxResults: DefaultMaxResults,
		ranges:     make(map[Metric]Range),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Range returns the range bound to the metric and whether one is set.
func (s *Set) Range(m Metric) (Range, bool) {
	r, ok := s.ranges[m]
	return r, ok
}

// Constrained returns the metrics that carry a range, in evaluation order.
func (s *Set) Constrained() []Metric {
	var out []Metric
	for _, m := range Metrics() {
		if _, ok := s.ranges[m]; ok {
			out = append(out, m)
		}
	}
	return out
}
