package tree

// Map associates keys with values and keeps the keys sorted. It is a Tree of
// key/value entries ordered by key.
//
// Unlike Tree, a Map holds at most one entry per key: inserting a key which
// already exists replaces its value.
//
// A zero Map is empty and answers lookups and deletes. Call Init (or use
// NewMap) before the first insert.
type Map[K, V any] struct {
	tree Tree[entry[K, V]]
}

type entry[K, V any] struct {
	key   K
	value V
}

// NewMap returns an empty map ordering its keys with cmp.
func NewMap[K, V any](cmp func(K, K) int, options ...Option) *Map[K, V] {
	m := new(Map[K, V])
	m.Init(cmp, options...)
	return m
}

// Init resets m to an empty map ordering its keys with cmp. Entries held
// before the call are dropped without being freed.
//
// Complexity: O(1)
func (m *Map[K, V]) Init(cmp func(K, K) int, options ...Option) {
	m.tree.Init(func(a, b entry[K, V]) int { return cmp(a.key, b.key) }, options...)
}

// Len returns the number of keys in m.
//
// Complexity: O(N)
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// Range calls f with each key and value in ascending key order, until f
// returns false.
//
// Complexity: O(N)
func (m *Map[K, V]) Range(f func(K, V) bool) {
	m.tree.Range(InOrder, func(e entry[K, V]) bool { return f(e.key, e.value) })
}

// Insert sets the value of key. When key was already present its value is
// overwritten in place and the old value is returned with replaced set to
// true. Adding a new key needs a node slot; err wraps alloc.ErrNoSlots when
// none is available.
//
// Complexity: O(height)
func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool, err error) {
	if i := m.tree.find(entry[K, V]{key: key}); i != null {
		e := &m.tree.nodes[i].value
		previous, e.value = e.value, value
		return previous, true, nil
	}
	_, err = m.tree.insert(entry[K, V]{key: key, value: value})
	return previous, false, err
}

// Lookup returns the value of key, if present.
//
// Complexity: O(height)
func (m *Map[K, V]) Lookup(key K) (value V, found bool) {
	if i := m.tree.find(entry[K, V]{key: key}); i != null {
		return m.tree.nodes[i].value.value, true
	}
	return value, false
}

// Search returns the entry with the greatest key not greater than key.
//
// Complexity: O(height)
func (m *Map[K, V]) Search(key K) (matchKey K, matchValue V, found bool) {
	e, found := m.tree.Search(entry[K, V]{key: key})
	return e.key, e.value, found
}

// Delete removes key and returns the value it held. deleted is false, and m
// unchanged, when key was absent.
//
// Complexity: O(height)
func (m *Map[K, V]) Delete(key K) (value V, deleted bool) {
	if i := m.tree.find(entry[K, V]{key: key}); i != null {
		value = m.tree.nodes[i].value.value
		m.tree.remove(i)
		return value, true
	}
	return value, false
}

// Min returns the entry with the lowest key.
//
// Complexity: O(height)
func (m *Map[K, V]) Min() (key K, value V, found bool) {
	if c := m.tree.Min(); c.Valid() {
		e := c.Value()
		return e.key, e.value, true
	}
	return key, value, false
}

// Max returns the entry with the highest key.
//
// Complexity: O(height)
func (m *Map[K, V]) Max() (key K, value V, found bool) {
	if c := m.tree.Max(); c.Valid() {
		e := c.Value()
		return e.key, e.value, true
	}
	return key, value, false
}
