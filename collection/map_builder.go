package collection

import (
	"cmp"
)

// AsMap creates a map with factory and puts entries in order, later entries replace earlier ones
func AsMap[M Map[K, V], K comparable, V any](factory func() M, entries ...Entry[K, V]) (M, error) {
	result := factory()
	for _, entry := range entries {
		if err := result.Put(entry.Key, entry.Value); err != nil {
			var zero M
			return zero, err
		}
	}
	return result, nil
}

// AsUnmodifiableMap creates a map with factory, puts entries and returns a read-only view
func AsUnmodifiableMap[M Map[K, V], K comparable, V any](factory func() M, entries ...Entry[K, V]) (*ReadOnlyMap[K, V], error) {
	result, err := AsMap(factory, entries...)
	if err != nil {
		return nil, err
	}
	return NewReadOnlyMap[K, V](result), nil
}

// AsUnmodifiableSortedMap creates a read-only map of entries ordered by key
func AsUnmodifiableSortedMap[K cmp.Ordered, V any](entries ...Entry[K, V]) *ReadOnlySortedMap[K, V] {
	result := NewSortedMap[K, V]()
	for _, entry := range entries {
		_ = result.Put(entry.Key, entry.Value)
	}
	return result.ReadOnly()
}

// Flip creates a value to key map with factory. When values repeat the last key wins.
// A nil original yields the zero map.
func Flip[M Map[V, K], K comparable, V comparable](factory func() M, original Map[K, V]) (M, error) {
	var zero M
	if original == nil {
		return zero, nil
	}
	result := factory()
	for key, value := range original.All() {
		if err := result.Put(value, key); err != nil {
			return zero, err
		}
	}
	return result, nil
}

// UnmodifiableFlip flips original into a map created by factory and returns a read-only view
func UnmodifiableFlip[M Map[V, K], K comparable, V comparable](factory func() M, original Map[K, V]) (*ReadOnlyMap[V, K], error) {
	if original == nil {
		return nil, nil
	}
	result, err := Flip(factory, original)
	if err != nil {
		return nil, err
	}
	return NewReadOnlyMap[V, K](result), nil
}

// FlipMap flips a builtin map, which key survives for duplicate values is unspecified
func FlipMap[K comparable, V comparable](original map[K]V) map[V]K {
	if original == nil {
		return nil
	}
	result := make(map[V]K, len(original))
	for key, value := range original {
		result[value] = key
	}
	return result
}
