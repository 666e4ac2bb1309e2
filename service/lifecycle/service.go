package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/viant/flowctx/internal/clock"
	"github.com/viant/flowctx/runtime/flow"
	"github.com/viant/flowctx/runtime/unit"
	"github.com/viant/flowctx/tracing"
)

// AttributeKey is the default slot attribute holding the active context.
const AttributeKey = "__flow_context"

// Dispatcher forwards an event to module handlers.
type Dispatcher interface {
	Dispatch(ctx context.Context, event string, fc *flow.Context) error
}

// Slot is the per-unit-of-work storage holding the active context.
type Slot interface {
	Set(key string, value interface{})
	Get(key string) (interface{}, bool)
	Remove(key string)
}

// SlotResolver returns the slot of the unit of work carried by ctx.
type SlotResolver func(ctx context.Context) (Slot, bool)

// Service manages exactly one active flow Context per unit of work.
type Service struct {
	dispatcher   Dispatcher
	attributeKey string
	resolver     SlotResolver
	logger       *slog.Logger
}

// Start creates the active context seeded with initial core data.
func (s *Service) Start(ctx context.Context, initial map[string]interface{}) (*flow.Context, error) {
	slot, err := s.slot(ctx)
	if err != nil {
		return nil, err
	}
	if s.active(slot) != nil {
		return nil, ErrAlreadyActive
	}
	fc := flow.NewContext(initial)
	slot.Set(s.attributeKey, fc)
	s.logger.Debug("flow started", slog.String("unit", unitID(ctx)), slog.Int("core", len(initial)))
	return fc, nil
}

// Current returns the active context or nil.
func (s *Service) Current(ctx context.Context) *flow.Context {
	slot, err := s.slot(ctx)
	if err != nil {
		return nil
	}
	return s.active(slot)
}

// Emit dispatches event with the active context and returns the context,
// possibly mutated by handlers. On handler failure the context is returned
// with the error for inspection.
func (s *Service) Emit(ctx context.Context, event string) (fc *flow.Context, err error) {
	slot, err := s.slot(ctx)
	if err != nil {
		return nil, err
	}
	if fc = s.active(slot); fc == nil {
		return nil, ErrNoActiveContext
	}
	spanCtx, span := tracing.StartSpan(ctx, "flow.emit "+event, "INTERNAL")
	span.WithAttributes(map[string]string{"flow.event": event, "flow.unit": unitID(ctx)})
	started := clock.Now()
	defer func() {
		tracing.EndSpan(span, err)
		s.logger.Debug("flow emitted",
			slog.String("event", event),
			slog.String("unit", unitID(ctx)),
			slog.Int("depth", fc.Depth()),
			slog.Duration("elapsed", clock.Since(started).Round(time.Microsecond)),
		)
	}()
	if s.dispatcher == nil {
		return fc, nil
	}
	err = s.dispatcher.Dispatch(spanCtx, event, fc)
	return fc, err
}

// Stop clears the active context and returns it for inspection.
func (s *Service) Stop(ctx context.Context) (*flow.Context, error) {
	slot, err := s.slot(ctx)
	if err != nil {
		return nil, err
	}
	fc := s.active(slot)
	if fc == nil {
		return nil, ErrNoActiveContext
	}
	slot.Remove(s.attributeKey)
	s.logger.Debug("flow stopped", slog.String("unit", unitID(ctx)))
	return fc, nil
}

func (s *Service) slot(ctx context.Context) (Slot, error) {
	slot, ok := s.resolver(ctx)
	if !ok || slot == nil {
		return nil, ErrNoUnitOfWork
	}
	return slot, nil
}

func (s *Service) active(slot Slot) *flow.Context {
	value, ok := slot.Get(s.attributeKey)
	if !ok {
		return nil
	}
	fc, _ := value.(*flow.Context)
	return fc
}

func unitID(ctx context.Context) string {
	if u, ok := unit.FromContext(ctx); ok {
		return u.ID
	}
	return ""
}

// UnitSlot resolves the slot from the unit of work carried by ctx.
func UnitSlot(ctx context.Context) (Slot, bool) {
	u, ok := unit.FromContext(ctx)
	if !ok {
		return nil, false
	}
	return u, true
}

// New creates a lifecycle service forwarding events to dispatcher.
func New(dispatcher Dispatcher, opts ...Option) *Service {
	ret := &Service{
		dispatcher:   dispatcher,
		attributeKey: AttributeKey,
		resolver:     UnitSlot,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
