package extension

import (
	"context"

	"github.com/viant/flowctx/model/types"
	"github.com/viant/flowctx/runtime/flow"
)

// Scoped wraps handler so that it always runs inside module's scope. The
// stack is restored to its prior depth on every exit path. The handler can
// not pop the frame pushed for it, so it can not drop back to core scope; a
// handler that leaves extra frames behind fails with flow.ErrUnbalancedScope.
func Scoped(module string, handler types.Handler) types.Handler {
	return func(ctx context.Context, fc *flow.Context) error {
		return fc.RunInModuleScope(module, func() error {
			return handler(ctx, fc)
		})
	}
}
