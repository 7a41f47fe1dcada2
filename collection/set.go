package collection

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// LinkedSet is a set that keeps insertion order
type LinkedSet[E comparable] struct {
	elements []E
	index    map[E]int
}

// NewLinkedSet creates an empty insertion ordered set
func NewLinkedSet[E comparable]() *LinkedSet[E] {
	return &LinkedSet[E]{index: map[E]int{}}
}

// Add inserts element unless already present. Elements with non comparable dynamic types are rejected.
func (s *LinkedSet[E]) Add(element E) error {
	if !isHashable(element) {
		return fmt.Errorf("%w: %T", ErrNotComparable, element)
	}
	if _, ok := s.index[element]; ok {
		return nil
	}
	s.index[element] = len(s.elements)
	s.elements = append(s.elements, element)
	return nil
}

// Contains reports whether element is in the set
func (s *LinkedSet[E]) Contains(element E) bool {
	if !isHashable(element) {
		return false
	}
	_, ok := s.index[element]
	return ok
}

// Remove deletes element, reporting whether it was present
func (s *LinkedSet[E]) Remove(element E) bool {
	if !isHashable(element) {
		return false
	}
	position, ok := s.index[element]
	if !ok {
		return false
	}
	delete(s.index, element)
	s.elements = slices.Delete(s.elements, position, position+1)
	for i := position; i < len(s.elements); i++ {
		s.index[s.elements[i]] = i
	}
	return true
}

func (s *LinkedSet[E]) Len() int {
	return len(s.elements)
}

func (s *LinkedSet[E]) All() iter.Seq[E] {
	return slices.Values(s.elements)
}

// Slice returns elements in insertion order
func (s *LinkedSet[E]) Slice() []E {
	return slices.Clone(s.elements)
}

func (s *LinkedSet[E]) Items() []any {
	return itemsOf(s.All(), len(s.elements))
}

func (s *LinkedSet[E]) IsSet() bool {
	return true
}

// ReadOnly returns a read-only view of the set
func (s *LinkedSet[E]) ReadOnly() *ReadOnlySet[E] {
	return &ReadOnlySet[E]{set: s}
}

func (s *LinkedSet[E]) String() string {
	return "[" + Implode(", ", s.All()) + "]"
}

// isHashable guards interface typed keys against values that would panic as map keys,
// including structs and arrays whose interface fields hold slices, maps or funcs
func isHashable(element any) bool {
	if element == nil {
		return true
	}
	return reflect.ValueOf(element).Comparable()
}

// SortedSet keeps unique elements ordered by a comparator
type SortedSet[E any] struct {
	elements []E
	compare  func(a, b E) int
}

// NewSortedSet creates a set ordered naturally
func NewSortedSet[E cmp.Ordered]() *SortedSet[E] {
	return NewSortedSetFunc[E](cmp.Compare[E])
}

// NewSortedSetFunc creates a set ordered by compare
func NewSortedSetFunc[E any](compare func(a, b E) int) *SortedSet[E] {
	return &SortedSet[E]{compare: compare}
}

func (s *SortedSet[E]) search(element E) (int, bool) {
	return slices.BinarySearchFunc(s.elements, element, s.compare)
}

// Add inserts element at its ordered position unless an equal element exists
func (s *SortedSet[E]) Add(element E) error {
	position, found := s.search(element)
	if !found {
		s.elements = slices.Insert(s.elements, position, element)
	}
	return nil
}

// Contains reports whether an element comparing equal is present
func (s *SortedSet[E]) Contains(element E) bool {
	_, found := s.search(element)
	return found
}

// Remove deletes element, reporting whether it was present
func (s *SortedSet[E]) Remove(element E) bool {
	position, found := s.search(element)
	if found {
		s.elements = slices.Delete(s.elements, position, position+1)
	}
	return found
}

// First returns the lowest element
func (s *SortedSet[E]) First() (E, bool) {
	if len(s.elements) == 0 {
		var zero E
		return zero, false
	}
	return s.elements[0], true
}

// Last returns the highest element
func (s *SortedSet[E]) Last() (E, bool) {
	if len(s.elements) == 0 {
		var zero E
		return zero, false
	}
	return s.elements[len(s.elements)-1], true
}

// Floor returns the greatest element less than or equal to element
func (s *SortedSet[E]) Floor(element E) (E, bool) {
	position, found := s.search(element)
	if found {
		return s.elements[position], true
	}
	if position == 0 {
		var zero E
		return zero, false
	}
	return s.elements[position-1], true
}

// Ceiling returns the least element greater than or equal to element
func (s *SortedSet[E]) Ceiling(element E) (E, bool) {
	position, _ := s.search(element)
	if position == len(s.elements) {
		var zero E
		return zero, false
	}
	return s.elements[position], true
}

func (s *SortedSet[E]) Len() int {
	return len(s.elements)
}

func (s *SortedSet[E]) All() iter.Seq[E] {
	return slices.Values(s.elements)
}

// Slice returns elements in ascending order
func (s *SortedSet[E]) Slice() []E {
	return slices.Clone(s.elements)
}

func (s *SortedSet[E]) Items() []any {
	return itemsOf(s.All(), len(s.elements))
}

func (s *SortedSet[E]) IsSet() bool {
	return true
}

// ReadOnly returns a read-only view of the set
func (s *SortedSet[E]) ReadOnly() *ReadOnlySortedSet[E] {
	return &ReadOnlySortedSet[E]{set: s}
}

func (s *SortedSet[E]) String() string {
	return "[" + Implode(", ", s.All()) + "]"
}
