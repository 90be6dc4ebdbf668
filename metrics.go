package formvalidation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records validation passes. A nil *Metrics records nothing.
type Metrics struct {
	passes   *prometheus.CounterVec
	stale    prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formvalidation",
			Name:      "passes_total",
			Help:      "Completed validation passes by result kind.",
		}, []string{"kind"}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "formvalidation",
			Name:      "stale_results_total",
			Help:      "Validation results dropped because a newer pass was requested.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "formvalidation",
			Name:      "pass_duration_seconds",
			Help:      "Time spent running a field's validator chain.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.passes, m.stale, m.duration)
	}
	return m
}

func (m *Metrics) observe(r Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.passes.WithLabelValues(r.Kind().String()).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) dropStale() {
	if m == nil {
		return
	}
	m.stale.Inc()
}
