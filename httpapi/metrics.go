package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for searchesTotal.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeBudget   = "budget"
	outcomeError    = "error"
)

type metrics struct {
	searchesTotal  *prometheus.CounterVec
	expansions     prometheus.Histogram
	searchDuration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		// searchesTotal counts path queries by outcome
		// Labels: "found", "not_found", "invalid", "budget", "error"
		searchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total path searches by outcome",
		}, []string{"outcome"}),

		expansions: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_expansions",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),

		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration including parsing",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
}
