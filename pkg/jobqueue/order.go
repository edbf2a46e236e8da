package jobqueue

import "container/list"

// fifoMap is a map that remembers insertion order, used for the parked-add
// buffer and the ready set so that backpressure drains jobs in the order they
// arrived. Only the manager goroutine touches it.
type fifoMap[K comparable, V any] struct {
	order *list.List // of K
	items map[K]fifoEntry[V]
}

type fifoEntry[V any] struct {
	elem  *list.Element
	value V
}

func newFifoMap[K comparable, V any]() *fifoMap[K, V] {
	return &fifoMap[K, V]{
		order: list.New(),
		items: make(map[K]fifoEntry[V]),
	}
}

func (m *fifoMap[K, V]) len() int { return len(m.items) }

func (m *fifoMap[K, V]) contains(key K) bool {
	_, ok := m.items[key]
	return ok
}

// push inserts key at the back. Pushing an existing key keeps its position
// and replaces the value.
func (m *fifoMap[K, V]) push(key K, value V) {
	if entry, ok := m.items[key]; ok {
		entry.value = value
		m.items[key] = entry
		return
	}
	m.items[key] = fifoEntry[V]{elem: m.order.PushBack(key), value: value}
}

func (m *fifoMap[K, V]) remove(key K) (V, bool) {
	entry, ok := m.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	m.order.Remove(entry.elem)
	delete(m.items, key)
	return entry.value, true
}

func (m *fifoMap[K, V]) popFront() (K, V, bool) {
	front := m.order.Front()
	if front == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	key := front.Value.(K)
	entry := m.items[key]
	m.order.Remove(front)
	delete(m.items, key)
	return key, entry.value, true
}
