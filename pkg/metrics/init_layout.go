package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLayoutMetrics() {
	r.LayoutsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlayout_layouts_total",
			Help: "Total number of layouts computed",
		},
		[]string{"algorithm", "outcome"},
	)

	r.LayoutDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphlayout_layout_duration_seconds",
			Help:    "Layout computation duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"algorithm"},
	)

	r.LayoutNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphlayout_layout_nodes",
			Help:    "Number of nodes per layout",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		},
	)

	r.ConfigErrorsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphlayout_config_errors_total",
			Help: "Total number of layout calls rejected for invalid options",
		},
	)

	r.FallbacksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlayout_fallbacks_total",
			Help: "Total number of whole-graph circular fallbacks",
		},
		[]string{"reason"},
	)

	r.CommunitiesDetected = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphlayout_communities_detected",
			Help:    "Number of communities found per community-detected layout",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 500},
		},
	)
}

func (r *Registry) initSpacingMetrics() {
	r.SpacingViolations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphlayout_spacing_violations",
			Help:    "Pairs closer than the minimum spacing before enforcement",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 1000, 10000},
		},
	)

	r.EnforcerPassesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlayout_enforcer_passes_total",
			Help: "Total spacing enforcement passes by tier",
		},
		[]string{"tier"},
	)
}
