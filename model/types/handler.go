package types

import (
	"context"

	"github.com/viant/flowctx/runtime/flow"
)

// Handler reacts to an emitted event. It receives the active flow Context of
// the unit of work; a returned error aborts the remaining handler chain unless
// the dispatcher is configured to continue.
type Handler func(ctx context.Context, fc *flow.Context) error

// Hooks maps an event name to the ordered method names handling it.
type Hooks map[string][]string

// Events returns event names with at least one method.
func (h Hooks) Events() []string {
	var ret []string
	for event, methods := range h {
		if len(methods) > 0 {
			ret = append(ret, event)
		}
	}
	return ret
}
