package flowctx

import (
	"context"
	"sort"

	"github.com/viant/flowctx/runtime/flow"
	"github.com/viant/flowctx/service/lifecycle"
)

// Ctx returns the active flow context. When data is non-nil each entry is set
// as a core attribute first, in key order; the first failure is returned.
func (s *Service) Ctx(ctx context.Context, data map[string]interface{}) (*flow.Context, error) {
	fc := s.Current(ctx)
	if fc == nil {
		return nil, lifecycle.ErrNoActiveContext
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fc.SetCore(k, data[k]); err != nil {
			return fc, err
		}
	}
	return fc, nil
}

// Value returns a core attribute of the active flow context, or defaultValue
// when there is no active context or the attribute is absent or nil.
func (s *Service) Value(ctx context.Context, key string, defaultValue interface{}) interface{} {
	fc := s.Current(ctx)
	if fc == nil {
		return defaultValue
	}
	if value, ok := fc.Core(key); ok && value != nil {
		return value
	}
	return defaultValue
}

// Hook sets data as core attributes (when non-nil) and emits event.
func (s *Service) Hook(ctx context.Context, event string, data map[string]interface{}) (*flow.Context, error) {
	if data != nil {
		if _, err := s.Ctx(ctx, data); err != nil {
			return nil, err
		}
	}
	return s.Emit(ctx, event)
}
