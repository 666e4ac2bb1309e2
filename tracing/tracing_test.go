package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("flowctx", "0.0.1", fname))

	ctx, span := StartSpan(context.Background(), "flow.emit test", "INTERNAL")
	span.WithAttributes(map[string]string{"flow.event": "test"})
	actual, ok := SpanFromContext(ctx)
	assert.True(t, ok)
	assert.NotNil(t, actual)
	EndSpan(span, nil)

	_, child := StartSpan(ctx, "flow.handler audit.record", "")
	EndSpan(child, errors.New("boom"))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	span.SetStatus(errors.New("ignored"))
	EndSpan(nil, nil)

	_, ok := SpanFromContext(context.Background())
	assert.False(t, ok)
}
