package flowctx

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/flowctx/service/lifecycle"
)

func TestLoadConfig(t *testing.T) {
	location, err := filepath.Abs(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	config, err := LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "__request_flow", config.Flow.AttributeKey)
	assert.True(t, config.Dispatch.ContinueOnError)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "flowctx", config.Tracing.ServiceName, "unset sections keep defaults")
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeConfig(t *testing.T) {
	var testCases = []struct {
		description string
		yaml        string
		expectErr   bool
	}{
		{description: "empty document", yaml: ""},
		{description: "attribute key", yaml: "flow:\n  attributeKey: flow\n"},
		{description: "blank attribute key", yaml: "flow:\n  attributeKey: \" \"\n", expectErr: true},
		{description: "bad level", yaml: "log:\n  level: loud\n", expectErr: true},
		{description: "bad format", yaml: "log:\n  format: xml\n", expectErr: true},
		{description: "tracing without name", yaml: "tracing:\n  enabled: true\n  serviceName: \"\"\n", expectErr: true},
		{description: "malformed", yaml: "flow: [", expectErr: true},
	}
	for _, testCase := range testCases {
		_, err := DecodeConfig([]byte(testCase.yaml))
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, lifecycle.AttributeKey, config.Flow.AttributeKey)
	assert.False(t, config.Dispatch.ContinueOnError)
	assert.NoError(t, config.Validate())
}

func TestConfig_Logger(t *testing.T) {
	config := DefaultConfig()
	config.Log = LogConfig{Level: "warn", Format: "json"}
	buffer := &bytes.Buffer{}
	logger := config.Logger(buffer)

	logger.Info("hidden")
	assert.Empty(t, buffer.String())
	logger.Warn("shown", "event", "request")
	assert.Contains(t, buffer.String(), `"msg":"shown"`)
	assert.Contains(t, buffer.String(), `"event":"request"`)
}

func TestLoadConfig_TempFile(t *testing.T) {
	location := filepath.Join(t.TempDir(), "flow.yaml")
	require.NoError(t, os.WriteFile(location, []byte("dispatch:\n  continueOnError: true\n"), 0o644))
	config, err := LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.True(t, config.Dispatch.ContinueOnError)
	assert.Equal(t, lifecycle.AttributeKey, config.Flow.AttributeKey)
}

func TestDecodeConfig_EnvExpansion(t *testing.T) {
	t.Setenv("FLOWCTX_SERVICE", "orders")
	config, err := DecodeConfig([]byte("tracing:\n  serviceName: ${env.FLOWCTX_SERVICE}\n"))
	require.NoError(t, err)
	assert.Equal(t, "orders", config.Tracing.ServiceName)
}
