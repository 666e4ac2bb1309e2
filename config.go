package flowctx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/flowctx/internal/envexpr"
	"github.com/viant/flowctx/service/lifecycle"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the flow configuration. It can
// be populated from YAML or JSON. The zero-value of each nested section
// inherits package defaults via DefaultConfig.
type Config struct {
	Flow     FlowConfig     `json:"flow" yaml:"flow"`
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`
	Tracing  TracingConfig  `json:"tracing" yaml:"tracing"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// FlowConfig controls where the active flow context is stored.
type FlowConfig struct {
	// AttributeKey is the unit-of-work attribute holding the active context.
	AttributeKey string `json:"attributeKey" yaml:"attributeKey"`
}

// DispatchConfig controls the handler error policy.
type DispatchConfig struct {
	// ContinueOnError keeps invoking handlers after one fails.
	ContinueOnError bool `json:"continueOnError" yaml:"continueOnError"`
}

// TracingConfig configures the OpenTelemetry exporter; OutputFile empty means stdout.
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	OutputFile     string `json:"outputFile" yaml:"outputFile"`
}

// LogConfig selects the logger level (debug, info, warn, error) and format (text, json).
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// DefaultConfig returns a Config populated with package defaults.
func DefaultConfig() *Config {
	return &Config{
		Flow: FlowConfig{AttributeKey: lifecycle.AttributeKey},
		Tracing: TracingConfig{
			ServiceName:    "flowctx",
			ServiceVersion: "0.1.0",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if strings.TrimSpace(c.Flow.AttributeKey) == "" {
		return fmt.Errorf("flow.attributeKey was empty")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log.format: %v", c.Log.Format)
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName was empty")
	}
	return nil
}

// Logger builds a structured logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, _ := parseLevel(c.Log.Level)
	options := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.Log.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}

// LoadConfig downloads and decodes a YAML config from any afs supported URL,
// applying it over DefaultConfig.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	return DecodeConfig(data)
}

// DecodeConfig decodes YAML bytes over DefaultConfig and validates the result.
// ${env.KEY} references are expanded before decoding.
func DecodeConfig(data []byte) (*Config, error) {
	ret := DefaultConfig()
	if err := yaml.Unmarshal([]byte(envexpr.Expand(string(data))), ret); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unsupported log.level: %v", level)
}
