package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNone     = "none"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_recommendations_total",
			Help: "Total number of tour recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tourguide_recommendation_duration_seconds",
			Help:    "Duration of tour recommendation requests in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30},
		},
	)
)
