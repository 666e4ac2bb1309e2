package types

// Module is an independently authored extension reacting to flow events.
//
// Name identifies the module's metadata namespace; it must be stable,
// non-empty and free of the "." qualifier delimiter. Hooks declares which
// methods handle which event, and Method resolves a method name to a Handler.
type Module interface {
	Name() string
	Hooks() Hooks
	Method(name string) (Handler, error)
}

// Listener accepts scoped handler subscriptions, typically an event dispatcher.
type Listener interface {
	Listen(event, module, method string, handler Handler)
}
