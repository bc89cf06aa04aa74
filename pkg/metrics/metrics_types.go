package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for LayoutsTotal
const (
	OutcomeAccepted = "accepted"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
)

// Tier labels for EnforcerPassesTotal
const (
	TierRelaxation = "relaxation"
	TierAggressive = "aggressive"
)

// Registry holds all metrics for the layout engine
type Registry struct {
	// Layout Metrics
	LayoutsTotal        *prometheus.CounterVec
	LayoutDuration      *prometheus.HistogramVec
	LayoutNodes         prometheus.Histogram
	ConfigErrorsTotal   prometheus.Counter
	FallbacksTotal      *prometheus.CounterVec
	CommunitiesDetected prometheus.Histogram

	// Spacing Metrics
	SpacingViolations   prometheus.Histogram
	EnforcerPassesTotal *prometheus.CounterVec

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initLayoutMetrics()
	r.initSpacingMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
