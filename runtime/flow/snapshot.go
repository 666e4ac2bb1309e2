package flow

import (
	"fmt"
	"reflect"
	"strings"
)

// Snapshot is a point-in-time copy of a Context.
type Snapshot struct {
	Core    map[string]interface{}            `json:"core" yaml:"core"`
	Modules map[string]map[string]interface{} `json:"modules" yaml:"modules"`
}

// SnapshotCore returns a copy of the core attributes.
func (c *Context) SnapshotCore() map[string]interface{} {
	ret := make(map[string]interface{}, len(c.core))
	for k, v := range c.core {
		ret[k] = v
	}
	return ret
}

// SnapshotModules groups metadata by module. In module scope only the
// executing module's namespace is returned, keyed by its name; modules can
// not enumerate each other's data.
func (c *Context) SnapshotModules() map[string]map[string]interface{} {
	grouped := c.group()
	module, ok := c.CurrentModule()
	if !ok {
		return grouped
	}
	own := grouped[module]
	if own == nil {
		own = map[string]interface{}{}
	}
	return map[string]map[string]interface{}{module: own}
}

// SnapshotAll combines SnapshotCore and SnapshotModules.
func (c *Context) SnapshotAll() *Snapshot {
	return &Snapshot{
		Core:    c.SnapshotCore(),
		Modules: c.SnapshotModules(),
	}
}

// Modules returns the names of modules visible from the current scope in the
// order they first wrote metadata.
func (c *Context) Modules() []string {
	if module, ok := c.CurrentModule(); ok {
		if c.owns(module) {
			return []string{module}
		}
		return []string{}
	}
	return append([]string{}, c.order...)
}

// CollectFromModules merges every visible module's field value that is a
// string-keyed map into one map. Modules are visited in the order they first
// wrote metadata, so on key collision the later module wins. Values that are
// not maps are skipped.
func (c *Context) CollectFromModules(field string) map[string]interface{} {
	grouped := c.SnapshotModules()
	ret := map[string]interface{}{}
	for _, module := range c.Modules() {
		value, ok := grouped[module][field]
		if !ok {
			continue
		}
		mergeInto(ret, value)
	}
	return ret
}

func (c *Context) group() map[string]map[string]interface{} {
	ret := make(map[string]map[string]interface{}, len(c.order))
	for key, value := range c.modules {
		index := strings.Index(key, Delimiter)
		if index == -1 {
			panic(fmt.Sprintf("flow: unqualified metadata key %q", key))
		}
		module, field := key[:index], key[index+1:]
		fields, ok := ret[module]
		if !ok {
			fields = map[string]interface{}{}
			ret[module] = fields
		}
		fields[field] = value
	}
	return ret
}

func mergeInto(dest map[string]interface{}, value interface{}) {
	switch actual := value.(type) {
	case map[string]interface{}:
		for k, v := range actual {
			dest[k] = v
		}
		return
	case nil:
		return
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map || rValue.Type().Key().Kind() != reflect.String {
		return
	}
	iter := rValue.MapRange()
	for iter.Next() {
		dest[iter.Key().String()] = iter.Value().Interface()
	}
}
