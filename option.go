package flowctx

import (
	"log/slog"

	"github.com/viant/flowctx/model/types"
	"github.com/viant/flowctx/service/event"
	"github.com/viant/flowctx/service/lifecycle"
	"github.com/viant/flowctx/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures a Service
type Option func(s *Service)

// WithConfig sets the configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithModules registers modules at construction time
func WithModules(modules ...types.Module) Option {
	return func(s *Service) {
		s.modules = append(s.modules, modules...)
	}
}

// WithEventOptions supplies additional dispatcher options
func WithEventOptions(opts ...event.Option) Option {
	return func(s *Service) {
		s.eventOptions = append(s.eventOptions, opts...)
	}
}

// WithLifecycleOptions supplies additional lifecycle options, for example a
// custom slot resolver
func WithLifecycleOptions(opts ...lifecycle.Option) Option {
	return func(s *Service) {
		s.lifecycleOptions = append(s.lifecycleOptions, opts...)
	}
}

// WithTracing configures OpenTelemetry tracing. If outputFile is empty the stdout exporter is
// used; otherwise traces are written to the supplied file path. The first successful
// initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingInit = func() error { return tracing.Init(serviceName, serviceVersion, outputFile) }
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingInit = func() error { return tracing.InitWithExporter(serviceName, serviceVersion, exporter) }
	}
}
