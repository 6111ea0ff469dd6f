package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncrementOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementOutcome("gpt", "valid")
	m.IncrementOutcome("gpt", "valid")
	m.IncrementOutcome("gpt", "missing_input")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Assessments.WithLabelValues("gpt", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Assessments.WithLabelValues("gpt", "missing_input")))
}

func TestObserveUpstreamLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveUpstreamLatency("gemini", 1500*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamLatency))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome("gpt", "valid")
		m.ObserveUpstreamLatency("gpt", time.Second)
	})
}
