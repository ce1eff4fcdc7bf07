package hashmap

import "sync"

// NormalMap implements the Map interface by guarding the builtin map type with a RWMutex
type NormalMap[K comparable, V any] struct {
	mtx        sync.RWMutex
	underlying map[K]V
}

var _ Map[int, any] = (*NormalMap[int, any])(nil)

// NewNormal creates a new normal thread safe Map
func NewNormal[K comparable, V any]() *NormalMap[K, V] {
	return &NormalMap[K, V]{
		underlying: make(map[K]V),
	}
}

// Size returns the amount of stored key-value pairs
func (obj *NormalMap[K, V]) Size() int {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	return len(obj.underlying)
}

// Has returns whether a value is assigned to the given key
func (obj *NormalMap[K, V]) Has(key K) bool {
	_, ok := obj.Lookup(key)
	return ok
}

// Lookup returns the value assigned to the given key and a boolean indicating whether it exists
func (obj *NormalMap[K, V]) Lookup(key K) (V, bool) {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	val, ok := obj.underlying[key]
	return val, ok
}

// Set sets a key-value pair
func (obj *NormalMap[K, V]) Set(key K, value V) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.underlying[key] = value
}

// Unset deletes the value assigned to given key
func (obj *NormalMap[K, V]) Unset(key K) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	delete(obj.underlying, key)
}

// Clear removes all key-value pairs
func (obj *NormalMap[K, V]) Clear() {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.underlying = make(map[K]V)
}

// Range calls action for every key-value pair while holding the map's lock
func (obj *NormalMap[K, V]) Range(action func(key K, value V)) {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	for key, value := range obj.underlying {
		action(key, value)
	}
}

// removeIf deletes every key-value pair matching predicate and returns the removed values
func (obj *NormalMap[K, V]) removeIf(predicate func(key K, value V) bool) map[K]V {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	removed := make(map[K]V)
	for key, value := range obj.underlying {
		if predicate(key, value) {
			removed[key] = value
			delete(obj.underlying, key)
		}
	}
	return removed
}
