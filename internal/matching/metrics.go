package matching

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_runs_total",
			Help: "Total number of matching runs executed",
		},
	)

	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_run_duration_seconds",
			Help:    "Wall time of full matching runs",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		},
	)

	pairsScoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_pairs_scored_total",
			Help: "Total number of candidate pairs scored",
		},
	)

	matchesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_matches_created_total",
			Help: "Total number of matches committed",
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_scores",
			Help:    "Distribution of committed match scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	descriptionFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_description_fallbacks_total",
			Help: "Matches committed with the local fallback description",
		},
	)

	revealsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_reveals_total",
			Help: "Matches flipped to revealed",
		},
	)
)

func RecordRun(duration time.Duration, pairsScored int) {
	runsTotal.Inc()
	runDuration.Observe(duration.Seconds())
	pairsScoredTotal.Add(float64(pairsScored))
}

func RecordMatchCreated(score int) {
	matchesCreatedTotal.Inc()
	compatibilityScores.Observe(float64(score))
}

func RecordDescriptionFallback() {
	descriptionFallbacksTotal.Inc()
}

func RecordReveal() {
	revealsTotal.Inc()
}
