package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Plan search metrics
	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mp_plan_search_duration_seconds",
			Help:    "Duration of combination searches in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	plansEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mp_plans_evaluated_total",
			Help: "Total number of candidate plans evaluated",
		},
	)

	plansAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mp_plans_accepted_total",
			Help: "Total number of plans that satisfied all constraints",
		},
	)
)
