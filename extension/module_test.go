package extension

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/flowctx/model/types"
	"github.com/viant/flowctx/runtime/flow"
)

func TestModule_Builder(t *testing.T) {
	first := func(ctx context.Context, fc *flow.Context) error { return fc.SetMetadata("first", true) }
	second := func(ctx context.Context, fc *flow.Context) error { return fc.SetMetadata("second", true) }
	module := NewModule("audit").
		On("request", "record", first).
		On("response", "record", second)

	assert.Equal(t, "audit", module.Name())
	assert.Equal(t, types.Hooks{"request": {"record"}, "response": {"record"}}, module.Hooks())

	handler, err := module.Method("record")
	require.NoError(t, err)
	fc := flow.NewContext(nil)
	require.NoError(t, Scoped("audit", handler)(context.Background(), fc))
	_, ok, _ := fc.Metadata("audit.first")
	assert.True(t, ok, "first registration of a method name is kept")

	_, err = module.Method("missing")
	assert.Error(t, err)
}

func TestModule_HooksCopy(t *testing.T) {
	module := NewModule("audit").On("request", "record", noop)
	hooks := module.Hooks()
	hooks["request"][0] = "changed"
	assert.Equal(t, types.Hooks{"request": {"record"}}, module.Hooks())
}
