package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/flowctx/model/types"
	"github.com/viant/flowctx/runtime/flow"
	"github.com/viant/flowctx/tracing"
)

// Dispatcher invokes the handlers registered for an event synchronously, in
// registration order, passing the active flow Context.
type Dispatcher struct {
	listeners       map[string][]*entry
	mux             sync.RWMutex
	logger          *slog.Logger
	continueOnError bool
}

type entry struct {
	module  string
	method  string
	handler types.Handler
}

// Listen registers handler for event on behalf of module. Handlers for the
// same event run in the order they were registered.
func (d *Dispatcher) Listen(event, module, method string, handler types.Handler) {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.listeners[event] = append(d.listeners[event], &entry{module: module, method: method, handler: handler})
}

// Listeners returns the number of handlers registered for event.
func (d *Dispatcher) Listeners(event string) int {
	d.mux.RLock()
	defer d.mux.RUnlock()
	return len(d.listeners[event])
}

// Dispatch runs every handler registered for event. Handlers may dispatch
// again before returning; the listener list is snapshotted so nested
// dispatch never blocks.
//
// By default the first handler error aborts the chain and is returned. With
// WithContinueOnError every failure is logged, the chain completes, and the
// joined failures are returned.
func (d *Dispatcher) Dispatch(ctx context.Context, event string, fc *flow.Context) error {
	if fc == nil {
		return fmt.Errorf("event %v: flow context was nil", event)
	}
	d.mux.RLock()
	entries := append([]*entry(nil), d.listeners[event]...)
	d.mux.RUnlock()

	var errs []error
	for _, e := range entries {
		if err := d.invoke(ctx, event, e, fc); err != nil {
			err = fmt.Errorf("event %v: %v.%v: %w", event, e.module, e.method, err)
			if !d.continueOnError {
				return err
			}
			d.logger.Warn("flow handler error",
				slog.String("event", event),
				slog.String("extension", e.module),
				slog.String("method", e.method),
				slog.String("error", err.Error()),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) invoke(ctx context.Context, event string, e *entry, fc *flow.Context) (err error) {
	spanCtx, span := tracing.StartSpan(ctx, "flow.handler "+e.module+"."+e.method, "INTERNAL")
	span.WithAttributes(map[string]string{
		"flow.event":  event,
		"flow.module": e.module,
		"flow.method": e.method,
	})
	defer func() { tracing.EndSpan(span, err) }()
	return e.handler(spanCtx, fc)
}

// New creates a dispatcher
func New(opts ...Option) *Dispatcher {
	ret := &Dispatcher{
		listeners: make(map[string][]*entry),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
