// Package ordered provides an insertion-ordered map used for the store's keyed lists.
package ordered

// Map keeps values addressable by key while remembering display order.
// The zero value is ready to use. Copies share storage; call Clone before mutating
// a map that another owner may still read.
type Map[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

// FromSlice builds a map from values in order. Later duplicates overwrite the
// value but keep the first position.
func FromSlice[K comparable, V any](values []V, key func(V) K) Map[K, V] {
	m := Map[K, V]{
		keys:  make([]K, 0, len(values)),
		items: make(map[K]V, len(values)),
	}
	for _, v := range values {
		m.Set(key(v), v)
	}
	return m
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	return len(m.keys)
}

// Get returns the value stored under k.
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

// Has reports whether k is present.
func (m Map[K, V]) Has(k K) bool {
	_, ok := m.items[k]
	return ok
}

// Set updates k in place or appends it at the end.
func (m *Map[K, V]) Set(k K, v V) {
	if m.items == nil {
		m.items = make(map[K]V)
	}
	if _, ok := m.items[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.items[k] = v
}

// Prepend inserts k at the front. An existing k is moved to the front.
func (m *Map[K, V]) Prepend(k K, v V) {
	if m.items == nil {
		m.items = make(map[K]V)
	}
	if _, ok := m.items[k]; ok {
		m.removeKey(k)
	}
	m.keys = append([]K{k}, m.keys...)
	m.items[k] = v
}

// Update applies fn to the value under k. It reports false when k is absent
// or fn returns an error, leaving the map untouched.
func (m *Map[K, V]) Update(k K, fn func(V) (V, error)) (bool, error) {
	v, ok := m.items[k]
	if !ok {
		return false, nil
	}
	next, err := fn(v)
	if err != nil {
		return false, err
	}
	m.items[k] = next
	return true, nil
}

// Keys returns the keys in order.
func (m Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in order.
func (m Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.items[k])
	}
	return out
}

// Clone returns an independent copy.
func (m Map[K, V]) Clone() Map[K, V] {
	c := Map[K, V]{
		keys:  make([]K, len(m.keys)),
		items: make(map[K]V, len(m.items)),
	}
	copy(c.keys, m.keys)
	for k, v := range m.items {
		c.items[k] = v
	}
	return c
}

func (m *Map[K, V]) removeKey(k K) {
	for i, existing := range m.keys {
		if existing == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}
