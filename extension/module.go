package extension

import (
	"github.com/viant/flowctx/model/types"
)

// Module is a declarative module built from plain handler functions.
//
//	audit := extension.NewModule("audit").
//	    On("after-auth", "record", func(ctx context.Context, fc *flow.Context) error {
//	        return fc.SetMetadata("recorded", true)
//	    })
type Module struct {
	name    string
	hooks   types.Hooks
	methods map[string]types.Handler
}

// Name returns module name
func (m *Module) Name() string { return m.name }

// Hooks returns a copy of the module hooks
func (m *Module) Hooks() types.Hooks {
	ret := make(types.Hooks, len(m.hooks))
	for event, methods := range m.hooks {
		ret[event] = append([]string(nil), methods...)
	}
	return ret
}

// Method returns a handler by method name
func (m *Module) Method(name string) (types.Handler, error) {
	handler, ok := m.methods[name]
	if !ok {
		return nil, types.NewMethodNotFoundError(m.name, name)
	}
	return handler, nil
}

// On registers handler as method and hooks it to event. Reusing a method name
// for another event only adds the hook; the first handler is kept.
func (m *Module) On(event, method string, handler types.Handler) *Module {
	if _, ok := m.methods[method]; !ok {
		m.methods[method] = handler
	}
	m.hooks[event] = append(m.hooks[event], method)
	return m
}

// NewModule creates a module with the provided name
func NewModule(name string) *Module {
	return &Module{
		name:    name,
		hooks:   make(types.Hooks),
		methods: make(map[string]types.Handler),
	}
}
