package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/flowctx/runtime/flow"
	"github.com/viant/flowctx/tracing"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDispatcher_HandlerSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, tracing.InitWithExporter("flowctx-test", "0.0.1", exporter))

	var calls []string
	dispatcher := New()
	dispatcher.Listen("request", "auth", "login", recorder(&calls, "login", nil))
	dispatcher.Listen("request", "audit", "record", recorder(&calls, "record", nil))

	exporter.Reset()
	require.NoError(t, dispatcher.Dispatch(context.Background(), "request", flow.NewContext(nil)))

	var names []string
	for _, span := range exporter.GetSpans() {
		names = append(names, span.Name)
	}
	assert.Equal(t, []string{"flow.handler auth.login", "flow.handler audit.record"}, names)
	assert.Equal(t, []string{"login", "record"}, calls)
}
