package metrics

import (
	"time"
)

// RecordLayout records a completed layout call
func (r *Registry) RecordLayout(algorithm, outcome string, nodes int, duration time.Duration) {
	r.LayoutsTotal.WithLabelValues(algorithm, outcome).Inc()
	r.LayoutDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.LayoutNodes.Observe(float64(nodes))
}

// RecordEnforcement records one run of the spacing enforcer
func (r *Registry) RecordEnforcement(initialViolations, relaxationPasses, aggressivePasses int) {
	r.SpacingViolations.Observe(float64(initialViolations))
	if relaxationPasses > 0 {
		r.EnforcerPassesTotal.WithLabelValues(TierRelaxation).Add(float64(relaxationPasses))
	}
	if aggressivePasses > 0 {
		r.EnforcerPassesTotal.WithLabelValues(TierAggressive).Add(float64(aggressivePasses))
	}
}

// RecordFallback records a whole-graph fallback
func (r *Registry) RecordFallback(reason string) {
	r.FallbacksTotal.WithLabelValues(reason).Inc()
}

// RecordCommunities records the number of communities found
func (r *Registry) RecordCommunities(count int) {
	r.CommunitiesDetected.Observe(float64(count))
}

// RecordConfigError records a rejected layout call
func (r *Registry) RecordConfigError() {
	r.ConfigErrorsTotal.Inc()
}

// Snapshot returns the current value of every counter series keyed by
// "name{label=value,...}", for diagnostics output
func (r *Registry) Snapshot() (map[string]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				key += "{"
				for i, lp := range labels {
					if i > 0 {
						key += ","
					}
					key += lp.GetName() + "=" + lp.GetValue()
				}
				key += "}"
			}

			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				out[key+"_count"] = float64(m.GetHistogram().GetSampleCount())
				out[key+"_sum"] = m.GetHistogram().GetSampleSum()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
