// Package metrics exports progress readings as Prometheus gauges so a
// long-running job can be watched from the outside while it draws its bar
// locally.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/stepbar/internal/estimate"
	"github.com/agbru/stepbar/internal/progress"
)

// ProgressMetrics holds the gauges for one tracked process. Each instance
// carries its own registry, so tests and repeated runs never collide on
// global registration.
type ProgressMetrics struct {
	registry *prometheus.Registry

	currentSteps     prometheus.Gauge
	totalSteps       prometheus.Gauge
	fraction         prometheus.Gauge
	remainingSeconds prometheus.Gauge
}

// NewProgressMetrics creates the gauge set and registers it, together with
// the Go runtime collector, on a fresh registry.
func NewProgressMetrics() *ProgressMetrics {
	m := &ProgressMetrics{
		registry: prometheus.NewRegistry(),
		currentSteps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stepbar_current_steps",
			Help: "Steps completed so far.",
		}),
		totalSteps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stepbar_total_steps",
			Help: "Total steps the process was created with.",
		}),
		fraction: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stepbar_fraction",
			Help: "Completion fraction; exceeds 1 on overshoot.",
		}),
		remainingSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stepbar_remaining_seconds",
			Help: "Projected remaining runtime in seconds; 0 until the first step.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.currentSteps,
		m.totalSteps,
		m.fraction,
		m.remainingSeconds,
	)
	return m
}

// Attach registers a gauge-updating observer on p. Like any observer it must
// be attached before the first update; the error from Observe passes through
// unchanged. est may be nil when no estimator is in play.
func (m *ProgressMetrics) Attach(p *progress.Process, est *estimate.Estimator) error {
	m.totalSteps.Set(float64(p.TotalSteps()))
	return p.Observe(func() {
		m.currentSteps.Set(float64(p.CurrentStep()))
		m.fraction.Set(p.Fraction())
		if est != nil {
			if e, ok := est.Current(); ok {
				m.remainingSeconds.Set(e.Remaining.Seconds())
			}
		}
	})
}

// Handler returns the /metrics endpoint for this instance's registry.
func (m *ProgressMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
