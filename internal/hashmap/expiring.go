package hashmap

import (
	"sync/atomic"
	"time"

	"github.com/skybi/symbolist/internal/task"
)

type expiringEntry[T any] struct {
	raw T
	// unix nanoseconds of the last write (or read, for sliding maps); accessed atomically
	touched int64
}

// ExpiringMap implements the Map interface and wraps a NormalMap in order to implement value expiration.
// Expired values are invisible to Lookup right away but only removed from memory by Expire or the cleanup task.
type ExpiringMap[K comparable, V any] struct {
	normal      *NormalMap[K, *expiringEntry[V]]
	lifetime    time.Duration
	sliding     bool
	cleanupTask *task.RepeatingTask

	// OnExpire is called for every value removed by Expire
	OnExpire func(key K, value V)

	now func() time.Time
}

var _ Map[int, any] = (*ExpiringMap[int, any])(nil)

// NewExpiring creates a new expiring map whose values exist for a specific lifetime after they were set
func NewExpiring[K comparable, V any](lifetime time.Duration) *ExpiringMap[K, V] {
	return &ExpiringMap[K, V]{
		normal:   NewNormal[K, *expiringEntry[V]](),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// NewSliding creates a new expiring map whose values exist for a specific lifetime after they were last accessed
func NewSliding[K comparable, V any](lifetime time.Duration) *ExpiringMap[K, V] {
	obj := NewExpiring[K, V](lifetime)
	obj.sliding = true
	return obj
}

// ScheduleCleanupTask schedules the task that removes expired values in a specific interval.
// StopCleanupTask has to be called as soon as the map is no longer needed; it would not be garbage collected otherwise.
func (obj *ExpiringMap[K, V]) ScheduleCleanupTask(tick time.Duration) {
	if obj.cleanupTask != nil {
		return
	}
	obj.cleanupTask = task.NewRepeating(func() {
		obj.Expire()
	}, tick)
	obj.cleanupTask.Start()
}

// StopCleanupTask stops the cleanup task
func (obj *ExpiringMap[K, V]) StopCleanupTask() {
	if obj.cleanupTask == nil {
		return
	}
	obj.cleanupTask.Stop(false)
	obj.cleanupTask = nil
}

// Expire removes all expired values and returns their amount
func (obj *ExpiringMap[K, V]) Expire() int {
	removed := obj.normal.removeIf(func(_ K, entry *expiringEntry[V]) bool {
		return obj.expired(entry)
	})
	if obj.OnExpire != nil {
		for key, entry := range removed {
			obj.OnExpire(key, entry.raw)
		}
	}
	return len(removed)
}

func (obj *ExpiringMap[K, V]) expired(entry *expiringEntry[V]) bool {
	return obj.now().Sub(time.Unix(0, atomic.LoadInt64(&entry.touched))) > obj.lifetime
}

// Size returns the amount of stored key-value pairs, including expired ones not removed yet
func (obj *ExpiringMap[K, V]) Size() int {
	return obj.normal.Size()
}

// Has returns whether a non-expired value is assigned to the given key
func (obj *ExpiringMap[K, V]) Has(key K) bool {
	_, ok := obj.Lookup(key)
	return ok
}

// Lookup returns the value assigned to the given key and a boolean indicating whether it exists and is not expired.
// Sliding maps extend the lifetime of the value.
func (obj *ExpiringMap[K, V]) Lookup(key K) (V, bool) {
	entry, ok := obj.normal.Lookup(key)
	if !ok || obj.expired(entry) {
		var zero V
		return zero, false
	}
	if obj.sliding {
		atomic.StoreInt64(&entry.touched, obj.now().UnixNano())
	}
	return entry.raw, true
}

// Set sets a key-value pair
func (obj *ExpiringMap[K, V]) Set(key K, value V) {
	obj.normal.Set(key, &expiringEntry[V]{
		raw:     value,
		touched: obj.now().UnixNano(),
	})
}

// Unset deletes the value assigned to given key
func (obj *ExpiringMap[K, V]) Unset(key K) {
	obj.normal.Unset(key)
}

// Clear removes all key-value pairs
func (obj *ExpiringMap[K, V]) Clear() {
	obj.normal.Clear()
}

// Range calls action for every non-expired key-value pair
func (obj *ExpiringMap[K, V]) Range(action func(key K, value V)) {
	obj.normal.Range(func(key K, entry *expiringEntry[V]) {
		if !obj.expired(entry) {
			action(key, entry.raw)
		}
	})
}
