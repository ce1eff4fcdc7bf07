package hashmap

// Map represents the interface every map provided by this package has to implement
type Map[K comparable, V any] interface {
	// Size returns the amount of stored key-value pairs
	Size() int

	// Has returns whether a value is assigned to the given key
	Has(key K) bool

	// Lookup returns the value assigned to the given key and a boolean indicating whether it exists
	Lookup(key K) (V, bool)

	// Set sets a key-value pair
	Set(key K, value V)

	// Unset deletes the value assigned to given key
	Unset(key K)

	// Clear removes all key-value pairs
	Clear()

	// Range calls action for every key-value pair while holding the map's lock.
	// action must not call back into the map.
	Range(action func(key K, value V))
}
