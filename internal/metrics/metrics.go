// Package metrics exposes Prometheus collectors for path searches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/astar"
)

// Result label values for the searches counter.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Recorder holds the search collectors registered on one registry.
type Recorder struct {
	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	pathLength prometheus.Histogram
	duration   prometheus.Histogram
}

// New registers the collectors on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total path searches by result",
		}, []string{"result"}),

		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_expanded_cells",
			Help:    "Cells extracted from the frontier per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),

		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_path_length",
			Help:    "Moves on found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),

		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
}

// Observe records one finished search. Failed searches only count.
func (r *Recorder) Observe(res astar.Result, err error, d time.Duration) {
	if err != nil {
		r.searches.WithLabelValues(ResultError).Inc()
		return
	}
	r.duration.Observe(d.Seconds())
	r.expanded.Observe(float64(res.Expanded))
	if !res.Found {
		r.searches.WithLabelValues(ResultNotFound).Inc()
		return
	}
	r.searches.WithLabelValues(ResultFound).Inc()
	r.pathLength.Observe(float64(res.Cost))
}

// Search runs astar.Search and records it.
func (r *Recorder) Search(g astar.Grid, start, goal astar.Cell, opts ...astar.Option) (astar.Result, error) {
	t0 := time.Now()
	res, err := astar.Search(g, start, goal, opts...)
	r.Observe(res, err, time.Since(t0))

	return res, err
}
