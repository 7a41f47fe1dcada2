package collection

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Map is a key value container
type Map[K comparable, V any] interface {
	Put(key K, value V) error
	Get(key K) (V, bool)
	Len() int
	All() iter.Seq2[K, V]
}

// Entry is a key value pair
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewEntry creates an entry
func NewEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// OrderedMap keeps keys in insertion order, replacing a value keeps the key position
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty insertion ordered map
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: map[K]V{}}
}

func (m *OrderedMap[K, V]) Put(key K, value V) error {
	if !isHashable(key) {
		return fmt.Errorf("%w: %T", ErrNotComparable, key)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return nil
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if !isHashable(key) {
		var zero V
		return zero, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Remove deletes key, reporting whether it was present
func (m *OrderedMap[K, V]) Remove(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(candidate K) bool { return candidate == key })
	return true
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns keys in insertion order
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// ReadOnly returns a read-only view of the map
func (m *OrderedMap[K, V]) ReadOnly() *ReadOnlyMap[K, V] {
	return &ReadOnlyMap[K, V]{source: m}
}

func (m *OrderedMap[K, V]) String() string {
	return formatMap[K, V](m.All())
}

// SortedMap keeps keys ordered by a comparator
type SortedMap[K comparable, V any] struct {
	keys    []K
	values  map[K]V
	compare func(a, b K) int
}

// NewSortedMap creates a map ordered by natural key order
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return NewSortedMapFunc[K, V](cmp.Compare[K])
}

// NewSortedMapFunc creates a map ordered by compare
func NewSortedMapFunc[K comparable, V any](compare func(a, b K) int) *SortedMap[K, V] {
	return &SortedMap[K, V]{values: map[K]V{}, compare: compare}
}

func (m *SortedMap[K, V]) Put(key K, value V) error {
	if _, ok := m.values[key]; !ok {
		position, _ := slices.BinarySearchFunc(m.keys, key, m.compare)
		m.keys = slices.Insert(m.keys, position, key)
	}
	m.values[key] = value
	return nil
}

func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Remove deletes key, reporting whether it was present
func (m *SortedMap[K, V]) Remove(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	if position, found := slices.BinarySearchFunc(m.keys, key, m.compare); found {
		m.keys = slices.Delete(m.keys, position, position+1)
	}
	return true
}

func (m *SortedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns keys in ascending order
func (m *SortedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// FirstKey returns the lowest key
func (m *SortedMap[K, V]) FirstKey() (K, bool) {
	if len(m.keys) == 0 {
		var zero K
		return zero, false
	}
	return m.keys[0], true
}

// LastKey returns the highest key
func (m *SortedMap[K, V]) LastKey() (K, bool) {
	if len(m.keys) == 0 {
		var zero K
		return zero, false
	}
	return m.keys[len(m.keys)-1], true
}

func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// ReadOnly returns a read-only view of the map
func (m *SortedMap[K, V]) ReadOnly() *ReadOnlySortedMap[K, V] {
	return &ReadOnlySortedMap[K, V]{source: m}
}

func (m *SortedMap[K, V]) String() string {
	return formatMap[K, V](m.All())
}

// HashMap adapts a builtin map, iteration order is unspecified
type HashMap[K comparable, V any] map[K]V

// NewHashMap creates an empty hash map
func NewHashMap[K comparable, V any]() HashMap[K, V] {
	return HashMap[K, V]{}
}

func (m HashMap[K, V]) Put(key K, value V) error {
	if !isHashable(key) {
		return fmt.Errorf("%w: %T", ErrNotComparable, key)
	}
	m[key] = value
	return nil
}

func (m HashMap[K, V]) Get(key K) (V, bool) {
	if !isHashable(key) {
		var zero V
		return zero, false
	}
	value, ok := m[key]
	return value, ok
}

func (m HashMap[K, V]) Len() int {
	return len(m)
}

func (m HashMap[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m)
}

// ReadOnlyMap is a read-only view of any Map
type ReadOnlyMap[K comparable, V any] struct {
	source Map[K, V]
}

// NewReadOnlyMap wraps source
func NewReadOnlyMap[K comparable, V any](source Map[K, V]) *ReadOnlyMap[K, V] {
	return &ReadOnlyMap[K, V]{source: source}
}

func (m *ReadOnlyMap[K, V]) Put(K, V) error {
	return unsupported("put")
}

func (m *ReadOnlyMap[K, V]) Remove(K) (bool, error) {
	return false, unsupported("remove")
}

func (m *ReadOnlyMap[K, V]) Get(key K) (V, bool)  { return m.source.Get(key) }
func (m *ReadOnlyMap[K, V]) Len() int             { return m.source.Len() }
func (m *ReadOnlyMap[K, V]) All() iter.Seq2[K, V] { return m.source.All() }
func (m *ReadOnlyMap[K, V]) String() string       { return formatMap[K, V](m.source.All()) }

// ReadOnlySortedMap is a read-only view of a SortedMap
type ReadOnlySortedMap[K comparable, V any] struct {
	source *SortedMap[K, V]
}

func (m *ReadOnlySortedMap[K, V]) Put(K, V) error {
	return unsupported("put")
}

func (m *ReadOnlySortedMap[K, V]) Remove(K) (bool, error) {
	return false, unsupported("remove")
}

func (m *ReadOnlySortedMap[K, V]) Get(key K) (V, bool)  { return m.source.Get(key) }
func (m *ReadOnlySortedMap[K, V]) Len() int             { return m.source.Len() }
func (m *ReadOnlySortedMap[K, V]) Keys() []K            { return m.source.Keys() }
func (m *ReadOnlySortedMap[K, V]) FirstKey() (K, bool)  { return m.source.FirstKey() }
func (m *ReadOnlySortedMap[K, V]) LastKey() (K, bool)   { return m.source.LastKey() }
func (m *ReadOnlySortedMap[K, V]) All() iter.Seq2[K, V] { return m.source.All() }
func (m *ReadOnlySortedMap[K, V]) String() string       { return m.source.String() }

func formatMap[K comparable, V any](entries iter.Seq2[K, V]) string {
	builder := strings.Builder{}
	builder.WriteByte('{')
	i := 0
	for key, value := range entries {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v=%v", key, value))
		i++
	}
	builder.WriteByte('}')
	return builder.String()
}
