package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProviderWithoutEndpoint(t *testing.T) {
	tp, err := NewProvider(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	sr := tracetest.NewSpanRecorder()
	tp.RegisterSpanProcessor(sr)

	_, span := tp.Tracer("test").Start(context.Background(), "unit")
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "unit", ended[0].Name())
	assert.True(t, ended[0].SpanContext().IsSampled())

	var service string
	for _, kv := range ended[0].Resource().Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, serviceName, service)
}

func TestNewProviderWithEndpoint(t *testing.T) {
	// the exporter connects lazily, so an unreachable collector is not an error here
	tp, err := NewProvider(context.Background(), "http://127.0.0.1:4318")
	require.NoError(t, err)
	require.NotNil(t, tp)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = tp.Shutdown(ctx)
}
