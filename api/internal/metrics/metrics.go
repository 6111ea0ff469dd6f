package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for assessments.
type Metrics struct {
	// Assessments by engine and outcome (valid, invalid, missing_input, upstream_failure, ...)
	Assessments *prometheus.CounterVec

	// Upstream model latency by engine
	UpstreamLatency *prometheus.HistogramVec
}

// New registers the assessment metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Assessments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "content_assessor_assessments_total",
			Help: "Total assessment requests by engine and outcome",
		}, []string{"engine", "outcome"}),

		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "content_assessor_upstream_duration_seconds",
			Help:    "Duration of the upstream model call",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}, []string{"engine"}),
	}
}

// IncrementOutcome records one finished assessment request.
func (m *Metrics) IncrementOutcome(engine, outcome string) {
	if m != nil {
		m.Assessments.WithLabelValues(engine, outcome).Inc()
	}
}

// ObserveUpstreamLatency records the duration of one model call.
func (m *Metrics) ObserveUpstreamLatency(engine string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(engine).Observe(d.Seconds())
	}
}
