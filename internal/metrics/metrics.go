package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_generations_total",
			Help: "Content generation count by platform, audience, and outcome",
		},
		[]string{"platform", "audience", "outcome"},
	)

	rateFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_fetches_total",
			Help: "Rate source attempt count by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	registerOnce sync.Once
)

// Init registers the collectors. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(generationsTotal, rateFetchesTotal)
	})
}

// RecordGeneration counts one content generation attempt.
// Outcome is "ai", "fallback", or "error".
func RecordGeneration(platform, audience, outcome string) {
	generationsTotal.WithLabelValues(platform, audience, outcome).Inc()
}

// RecordRateFetch counts one rate source attempt.
func RecordRateFetch(source, outcome string) {
	rateFetchesTotal.WithLabelValues(source, outcome).Inc()
}
