package unit

import (
	"context"
	"reflect"
)

// Key is the context key under which the current *Unit is stored.
var Key = KeyOf[*Unit]()

// WithUnit returns a context carrying the unit of work.
func WithUnit(ctx context.Context, u *Unit) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, Key, u)
}

// FromContext returns the unit of work carried by ctx.
func FromContext(ctx context.Context) (*Unit, bool) {
	if ctx == nil {
		return nil, false
	}
	u := ContextValue[*Unit](ctx)
	return u, u != nil
}

// Ensure returns ctx with a unit of work, creating one when ctx carries none.
func Ensure(ctx context.Context, opts ...Option) (context.Context, *Unit) {
	if u, ok := FromContext(ctx); ok {
		return ctx, u
	}
	u := New(opts...)
	return WithUnit(ctx, u), u
}

// ContextValue returns the value of the provided type from the context
func ContextValue[T any](ctx context.Context) T {
	key := KeyOf[T]()
	if value := ctx.Value(key); value != nil {
		if ret, ok := value.(T); ok {
			return ret
		}
	}
	var t T
	return t
}

// KeyOf returns the reflect.Type of the provided type
func KeyOf[T any]() reflect.Type {
	var a T
	return reflect.TypeOf(a)
}
