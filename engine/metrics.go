package engine

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/algotrace/validate"
)

// Metrics reports run outcomes and trace sizes.
type Metrics struct {
	runs  *prometheus.CounterVec
	steps *prometheus.HistogramVec
}

// NewMetrics registers the engine collectors on registry.
func NewMetrics(registry prometheus.Registerer) (*Metrics, error) {
	if registry == nil {
		return nil, errors.New("engine: prometheus registry is nil")
	}

	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algotrace_runs_total",
			Help: "Trace runs by algorithm and outcome.",
		}, []string{"kind", "status"}),
		steps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algotrace_trace_steps",
			Help:    "Number of steps in built traces.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"kind"}),
	}

	for _, collector := range []prometheus.Collector{m.runs, m.steps} {
		if err := registry.Register(collector); err != nil {
			return nil, errors.Wrap(err, "engine: register collector")
		}
	}

	return m, nil
}

// observe is a no-op on a nil receiver. Rejections are labelled by their
// validation class, or "error" when unclassified.
func (m *Metrics) observe(k AlgorithmKind, err error, steps int) {
	if m == nil {
		return
	}
	if err != nil {
		status := validate.Class(err)
		if status == "" {
			status = "error"
		}
		m.runs.WithLabelValues(k.String(), status).Inc()

		return
	}
	m.runs.WithLabelValues(k.String(), "ok").Inc()
	m.steps.WithLabelValues(k.String()).Observe(float64(steps))
}
