// Package metrics exposes the driver's Prometheus collectors, the
// domain-stack counterpart of the teacher's metrics.go: a struct of
// pre-registered vectors with record methods, rather than scattering
// prometheus calls through internal/solarsystem.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the driver's step-level instrumentation.
type Collector struct {
	stepDuration   *prometheus.HistogramVec
	stepsTotal     *prometheus.CounterVec
	simulatedClock prometheus.Gauge
	driftResidual  *prometheus.GaugeVec
}

// NewCollector builds and registers a Collector against reg. Passing
// nil registers against the global prometheus.DefaultRegisterer, the
// way the teacher's NewMetricsCollector always did.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		stepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "solarsim_step_duration_seconds",
				Help: "Wall-clock time spent computing one Runge-Kutta step.",
			},
			[]string{"direction"},
		),
		stepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solarsim_steps_total",
				Help: "Number of Runge-Kutta steps taken, by direction.",
			},
			[]string{"direction"},
		),
		simulatedClock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_simulated_julian_date",
			Help: "Current simulated Julian date of the driver's clock.",
		}),
		driftResidual: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "solarsim_drift_residual_meters",
				Help: "Distance of the reference body from the origin just after drift correction.",
			},
			[]string{"system"},
		),
	}

	reg.MustRegister(c.stepDuration, c.stepsTotal, c.simulatedClock, c.driftResidual)
	return c
}

// RecordStep records one integrator step of the given direction
// ("forward", "backward" or "single") and its wall-clock duration.
func (c *Collector) RecordStep(direction string, seconds float64) {
	c.stepDuration.WithLabelValues(direction).Observe(seconds)
	c.stepsTotal.WithLabelValues(direction).Inc()
}

// SetSimulatedClock records the driver's current Julian date.
func (c *Collector) SetSimulatedClock(julianDate float64) {
	c.simulatedClock.Set(julianDate)
}

// SetDriftResidual records how far system's reference body sits from
// the origin right after drift correction (should be exactly zero;
// a nonzero value indicates a bug upstream, not a physical effect).
func (c *Collector) SetDriftResidual(system string, meters float64) {
	c.driftResidual.WithLabelValues(system).Set(meters)
}

// Handler returns the promhttp handler for the default Prometheus
// registry (the one NewCollector(nil) registers against), the way the
// teacher's ServeMetrics wired "/metrics" directly.
func Handler() http.Handler {
	return promhttp.Handler()
}
