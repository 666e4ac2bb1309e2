package flow

import (
	"strings"

	"github.com/viant/structology/conv"
)

// Delimiter separates a module name from a field in qualified metadata keys.
const Delimiter = "."

// Context holds the shared state of one unit of work: core attributes owned
// by the host application, metadata owned by modules and namespaced by module
// name, and the stack of modules currently executing.
//
// An empty stack means core scope. A non-empty stack means the module on top
// is executing and may only touch its own metadata namespace.
//
// Context is single-owner and not safe for concurrent use.
type Context struct {
	core      map[string]interface{}
	modules   map[string]interface{}
	order     []string
	stack     []string
	floor     int
	converter *conv.Converter
}

// NewContext creates a context seeded with the initial core attributes.
// The initial map is copied.
func NewContext(initial map[string]interface{}) *Context {
	ret := &Context{
		core:    make(map[string]interface{}, len(initial)),
		modules: make(map[string]interface{}),
	}
	for k, v := range initial {
		ret.core[k] = v
	}
	return ret
}

// Core returns a core attribute. Reads are allowed from any scope.
func (c *Context) Core(key string) (interface{}, bool) {
	value, ok := c.core[key]
	return value, ok
}

// HasCore reports whether a core attribute is present.
func (c *Context) HasCore(key string) bool {
	_, ok := c.core[key]
	return ok
}

// SetCore sets a core attribute. It fails while a module is executing.
func (c *Context) SetCore(key string, value interface{}) error {
	if module, ok := c.CurrentModule(); ok {
		return isolationError("module %q cannot modify core data %q, use SetMetadata(%q, value) instead", module, key, key)
	}
	c.core[key] = value
	return nil
}

// UnsetCore removes a core attribute. Removing an absent key is not an error;
// like SetCore it fails while a module is executing.
func (c *Context) UnsetCore(key string) error {
	if module, ok := c.CurrentModule(); ok {
		return isolationError("module %q cannot unset core data %q", module, key)
	}
	delete(c.core, key)
	return nil
}

// Metadata reads module metadata.
//
// In core scope the key must be qualified ("audit.logged"). In module scope
// the key must be a plain field ("logged") and resolves to the executing
// module's namespace.
func (c *Context) Metadata(key string) (interface{}, bool, error) {
	module, inModule := c.CurrentModule()
	if !inModule {
		if !strings.Contains(key, Delimiter) {
			return nil, false, isolationError("invalid key %q: missing module qualifier", key)
		}
		value, ok := c.modules[key]
		return value, ok, nil
	}
	if strings.Contains(key, Delimiter) {
		return nil, false, isolationError("module %q cannot use %q in metadata key %q, use a plain field (auto-prefixed to %q)", module, Delimiter, key, module+Delimiter+"field")
	}
	value, ok := c.modules[module+Delimiter+key]
	return value, ok, nil
}

// SetMetadata stores a field in the executing module's namespace. Core scope
// may never write metadata and fields may never contain the delimiter.
func (c *Context) SetMetadata(key string, value interface{}) error {
	module, inModule := c.CurrentModule()
	if !inModule {
		return isolationError("core scope cannot write module metadata %q, use SetCore for core data", key)
	}
	if key == "" {
		return isolationError("module %q cannot use an empty metadata key", module)
	}
	if strings.Contains(key, Delimiter) {
		return isolationError("module %q cannot use %q in metadata key %q, use a plain field like %q", module, Delimiter, key, strings.ReplaceAll(key, Delimiter, "_"))
	}
	if !c.owns(module) {
		c.order = append(c.order, module)
	}
	c.modules[module+Delimiter+key] = value
	return nil
}

// DecodeCore converts a core attribute into dest, which must be a pointer.
// A missing key leaves dest untouched and returns false.
func (c *Context) DecodeCore(key string, dest interface{}) (bool, error) {
	value, ok := c.Core(key)
	if !ok {
		return false, nil
	}
	return true, c.ensureConverter().Convert(value, dest)
}

// DecodeMetadata converts a metadata value into dest following the same key
// rules as Metadata.
func (c *Context) DecodeMetadata(key string, dest interface{}) (bool, error) {
	value, ok, err := c.Metadata(key)
	if err != nil || !ok {
		return false, err
	}
	return true, c.ensureConverter().Convert(value, dest)
}

func (c *Context) ensureConverter() *conv.Converter {
	if c.converter == nil {
		c.converter = conv.NewConverter(conv.DefaultOptions())
	}
	return c.converter
}

func (c *Context) owns(module string) bool {
	for _, candidate := range c.order {
		if candidate == module {
			return true
		}
	}
	return false
}
