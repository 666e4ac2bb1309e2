package flowctx

import (
	"context"
	"log/slog"

	"github.com/viant/flowctx/extension"
	"github.com/viant/flowctx/model/types"
	"github.com/viant/flowctx/runtime/flow"
	"github.com/viant/flowctx/service/event"
	"github.com/viant/flowctx/service/lifecycle"
	"github.com/viant/flowctx/tracing"
)

// Service wires the module registry, the event dispatcher and the flow
// lifecycle together.
type Service struct {
	config           *Config
	logger           *slog.Logger
	registry         *extension.Registry
	dispatcher       *event.Dispatcher
	lifecycle        *lifecycle.Service
	modules          []types.Module
	eventOptions     []event.Option
	lifecycleOptions []lifecycle.Option
	tracingInit      func() error
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.logger == nil {
		s.logger = s.config.Logger(nil)
	}
	if s.tracingInit == nil && s.config.Tracing.Enabled {
		tc := s.config.Tracing
		s.tracingInit = func() error { return tracing.Init(tc.ServiceName, tc.ServiceVersion, tc.OutputFile) }
	}
	if s.tracingInit != nil {
		if err := s.tracingInit(); err != nil {
			return err
		}
	}
	s.registry = extension.NewRegistry()
	eventOptions := append([]event.Option{
		event.WithLogger(s.logger),
		event.WithContinueOnError(s.config.Dispatch.ContinueOnError),
	}, s.eventOptions...)
	s.dispatcher = event.New(eventOptions...)
	lifecycleOptions := append([]lifecycle.Option{
		lifecycle.WithLogger(s.logger),
		lifecycle.WithAttributeKey(s.config.Flow.AttributeKey),
	}, s.lifecycleOptions...)
	s.lifecycle = lifecycle.New(s.dispatcher, lifecycleOptions...)
	return s.RegisterModules(s.modules...)
}

// RegisterModules registers modules and subscribes their hooks. Modules
// registered later run after earlier ones for the same event.
func (s *Service) RegisterModules(modules ...types.Module) error {
	for _, module := range modules {
		if err := s.registry.Attach(s.dispatcher, module); err != nil {
			return err
		}
		s.logger.Debug("flow module registered", slog.String("extension", module.Name()))
	}
	return nil
}

// Modules returns the module registry
func (s *Service) Modules() *extension.Registry { return s.registry }

// Dispatcher returns the event dispatcher
func (s *Service) Dispatcher() *event.Dispatcher { return s.dispatcher }

// Flow returns the lifecycle controller
func (s *Service) Flow() *lifecycle.Service { return s.lifecycle }

// Config returns the configuration
func (s *Service) Config() *Config { return s.config }

// Start starts a flow for the unit of work carried by ctx
func (s *Service) Start(ctx context.Context, initial map[string]interface{}) (*flow.Context, error) {
	return s.lifecycle.Start(ctx, initial)
}

// Current returns the active flow context or nil
func (s *Service) Current(ctx context.Context) *flow.Context {
	return s.lifecycle.Current(ctx)
}

// Emit emits the named event with the active flow context
func (s *Service) Emit(ctx context.Context, name string) (*flow.Context, error) {
	return s.lifecycle.Emit(ctx, name)
}

// Stop stops the active flow and returns its final context
func (s *Service) Stop(ctx context.Context) (*flow.Context, error) {
	return s.lifecycle.Stop(ctx)
}

// New creates a flow service
func New(options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewFromConfig creates a flow service from a configuration
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	return New(append([]Option{WithConfig(config)}, options...)...)
}
