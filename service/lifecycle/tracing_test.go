package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/flowctx/extension"
	"github.com/viant/flowctx/runtime/flow"
	"github.com/viant/flowctx/service/event"
	"github.com/viant/flowctx/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func spanByName(spans tracetest.SpanStubs, name string) (tracetest.SpanStub, bool) {
	for _, span := range spans {
		if span.Name == name {
			return span, true
		}
	}
	return tracetest.SpanStub{}, false
}

func hasAttribute(span tracetest.SpanStub, key, value string) bool {
	for _, attr := range span.Attributes {
		if attr.Key == attribute.Key(key) && attr.Value.AsString() == value {
			return true
		}
	}
	return false
}

func TestService_EmitSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, tracing.InitWithExporter("flowctx-test", "0.0.1", exporter))

	dispatcher := event.New()
	boom := errors.New("boom")
	require.NoError(t, extension.Subscribe(dispatcher, extension.NewModule("audit").
		On("after-auth", "record", func(ctx context.Context, fc *flow.Context) error {
			return fc.SetMetadata("logged", true)
		}).
		On("shutdown", "flush", func(ctx context.Context, fc *flow.Context) error {
			return boom
		})))
	srv := New(dispatcher)
	ctx := newUnitContext()
	_, err := srv.Start(ctx, nil)
	require.NoError(t, err)

	exporter.Reset()
	_, err = srv.Emit(ctx, "after-auth")
	require.NoError(t, err)

	spans := exporter.GetSpans()
	emitSpan, ok := spanByName(spans, "flow.emit after-auth")
	require.True(t, ok)
	handlerSpan, ok := spanByName(spans, "flow.handler audit.record")
	require.True(t, ok)
	assert.Equal(t, emitSpan.SpanContext.SpanID(), handlerSpan.Parent.SpanID(), "handler span is a child of the emit span")
	assert.Equal(t, emitSpan.SpanContext.TraceID(), handlerSpan.SpanContext.TraceID())
	assert.True(t, hasAttribute(emitSpan, "flow.event", "after-auth"))
	assert.True(t, hasAttribute(handlerSpan, "flow.module", "audit"))
	assert.True(t, hasAttribute(handlerSpan, "flow.method", "record"))
	assert.Equal(t, codes.Ok, handlerSpan.Status.Code)

	exporter.Reset()
	_, err = srv.Emit(ctx, "shutdown")
	assert.True(t, errors.Is(err, boom))
	spans = exporter.GetSpans()
	emitSpan, ok = spanByName(spans, "flow.emit shutdown")
	require.True(t, ok)
	assert.Equal(t, codes.Error, emitSpan.Status.Code)
	handlerSpan, ok = spanByName(spans, "flow.handler audit.flush")
	require.True(t, ok)
	assert.Equal(t, codes.Error, handlerSpan.Status.Code)
	assert.Len(t, handlerSpan.Events, 1, "handler error is recorded on the span")
}
