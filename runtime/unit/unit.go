package unit

import (
	"sort"
	"sync"

	"github.com/viant/flowctx/internal/idgen"
)

// Unit is one bounded execution, for example one incoming request. Its
// attribute bag is the storage slot hosts use for state that lives exactly as
// long as the unit of work.
type Unit struct {
	ID         string
	prefix     string
	attributes map[string]interface{}
	mu         sync.RWMutex
}

// Set stores an attribute.
func (u *Unit) Set(key string, value interface{}) {
	u.mu.Lock()
	u.attributes[key] = value
	u.mu.Unlock()
}

// Get returns an attribute.
func (u *Unit) Get(key string) (interface{}, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	value, ok := u.attributes[key]
	return value, ok
}

// Remove deletes an attribute.
func (u *Unit) Remove(key string) {
	u.mu.Lock()
	delete(u.attributes, key)
	u.mu.Unlock()
}

// Keys returns sorted attribute keys.
func (u *Unit) Keys() []string {
	u.mu.RLock()
	ret := make([]string, 0, len(u.attributes))
	for k := range u.attributes {
		ret = append(ret, k)
	}
	u.mu.RUnlock()
	sort.Strings(ret)
	return ret
}

// New creates a unit of work
func New(opts ...Option) *Unit {
	ret := &Unit{attributes: make(map[string]interface{})}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.ID == "" {
		ret.ID = idgen.WithPrefix(ret.prefix)
	}
	return ret
}
