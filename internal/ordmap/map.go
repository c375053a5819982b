package ordmap

import "iter"

// Map is a map that maintains the insertion order of the keys.
// Setting an existing key updates it in place without moving it.
type Map[K comparable, V any] struct {
	m     map[K]int
	order []pair[K, V]
}

// pair is a key-value pair.
type pair[K, V any] struct {
	key   K
	value V
}

// New creates a new Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]int),
	}
}

// Set inserts or updates a key-value pair keeping the key's original position.
func (m *Map[K, V]) Set(key K, value V) {
	if i, ok := m.m[key]; ok {
		m.order[i].value = value
		return
	}

	m.m[key] = len(m.order)
	m.order = append(m.order, pair[K, V]{key: key, value: value})
}

// Get returns the value of a key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.order[i].value, true
}

// Has reports whether the key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.m[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.order))
	for _, p := range m.order {
		keys = append(keys, p.key)
	}
	return keys
}

// Iter returns an iterator that iterates over all key-value pairs in insertion order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.order {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Len returns the number of key-value pairs in the map.
func (m *Map[K, V]) Len() int {
	return len(m.order)
}

// Delete deletes a key from the map.
func (m *Map[K, V]) Delete(key K) {
	i, ok := m.m[key]
	if !ok {
		return
	}

	delete(m.m, key)
	m.order = append(m.order[:i], m.order[i+1:]...)
	for j := i; j < len(m.order); j++ {
		m.m[m.order[j].key] = j
	}
}
