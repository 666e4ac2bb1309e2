package extension

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/flowctx/model/types"
	"github.com/viant/flowctx/runtime/flow"
)

// ErrDuplicateModule is returned when two modules register the same name.
var ErrDuplicateModule = errors.New("extension: duplicate module")

// Registry holds modules in registration order.
type Registry struct {
	modules []types.Module
	byName  map[string]types.Module
	mux     sync.RWMutex
}

// Register validates and adds modules; registration stops at the first error.
func (r *Registry) Register(modules ...types.Module) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	for _, module := range modules {
		if err := r.check(module); err != nil {
			return err
		}
		r.add(module)
	}
	return nil
}

// Attach registers each module and subscribes its hooks to listener as one
// step: a duplicate or unresolvable module is neither registered nor
// subscribed. Attachment stops at the first error.
func (r *Registry) Attach(listener types.Listener, modules ...types.Module) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	for _, module := range modules {
		if err := r.check(module); err != nil {
			return err
		}
		subscriptions, err := resolve(module)
		if err != nil {
			return err
		}
		for _, s := range subscriptions {
			listener.Listen(s.event, s.module, s.method, s.handler)
		}
		r.add(module)
	}
	return nil
}

func (r *Registry) check(module types.Module) error {
	name := module.Name()
	if err := flow.ValidateModule(name); err != nil {
		return types.NewInvalidModuleError(name, err)
	}
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateModule, name)
	}
	return nil
}

func (r *Registry) add(module types.Module) {
	r.byName[module.Name()] = module
	r.modules = append(r.modules, module)
}

// Lookup returns a module by name
func (r *Registry) Lookup(name string) types.Module {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.byName[name]
}

// Modules returns registered modules in registration order
func (r *Registry) Modules() []types.Module {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return append([]types.Module(nil), r.modules...)
}

// Subscribe resolves every hook of every module and subscribes the scoped
// handlers to listener. Modules are subscribed in registration order and a
// module's methods in the order its hooks list them. Every method is resolved
// before any subscription so an unknown method subscribes nothing.
func (r *Registry) Subscribe(listener types.Listener) error {
	var subscriptions []subscription
	for _, module := range r.Modules() {
		resolved, err := resolve(module)
		if err != nil {
			return err
		}
		subscriptions = append(subscriptions, resolved...)
	}
	for _, s := range subscriptions {
		listener.Listen(s.event, s.module, s.method, s.handler)
	}
	return nil
}

// Subscribe resolves and subscribes a single module.
func Subscribe(listener types.Listener, module types.Module) error {
	subscriptions, err := resolve(module)
	if err != nil {
		return err
	}
	for _, s := range subscriptions {
		listener.Listen(s.event, s.module, s.method, s.handler)
	}
	return nil
}

type subscription struct {
	event   string
	module  string
	method  string
	handler types.Handler
}

func resolve(module types.Module) ([]subscription, error) {
	name := module.Name()
	if err := flow.ValidateModule(name); err != nil {
		return nil, types.NewInvalidModuleError(name, err)
	}
	hooks := module.Hooks()
	events := hooks.Events()
	sort.Strings(events)
	var ret []subscription
	for _, event := range events {
		for _, method := range hooks[event] {
			handler, err := module.Method(method)
			if err != nil {
				return nil, err
			}
			if handler == nil {
				return nil, types.NewMethodNotFoundError(name, method)
			}
			ret = append(ret, subscription{event: event, module: name, method: method, handler: Scoped(name, handler)})
		}
	}
	return ret, nil
}

// NewRegistry creates a module registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]types.Module)}
}
