package value

import (
	"github.com/Velocidex/ordereddict"
)

// Map is an ordered name to Value mapping. One is produced per struct during
// decoding, keyed by field name in declaration order, and one is consumed per
// struct during encoding. Setting an existing name overwrites in place and
// keeps the original position. The empty string is a legal name; all
// anonymous fields of a struct share that one slot.
type Map struct {
	d *ordereddict.Dict
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{d: ordereddict.NewDict()}
}

// Set inserts or overwrites name. Returns m for chaining builders.
func (m *Map) Set(name string, v Value) *Map {
	m.d.Set(name, v)
	return m
}

// Get returns the Value stored under name.
func (m *Map) Get(name string) (Value, bool) {
	raw, ok := m.d.Get(name)
	if !ok {
		return Value{}, false
	}
	return raw.(Value), true
}

// Keys returns the names in insertion order.
func (m *Map) Keys() []string {
	return m.d.Keys()
}

// Len reports the number of entries.
func (m *Map) Len() int {
	return m.d.Len()
}

// Interface returns the native Go projection of m. Key order is lost in the
// returned map; iterate Keys for ordered access.
func (m *Map) Interface() map[string]any {
	out := make(map[string]any, m.d.Len())
	for _, k := range m.d.Keys() {
		v, _ := m.Get(k)
		out[k] = v.Interface()
	}
	return out
}
