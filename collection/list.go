package collection

import (
	"fmt"
	"iter"
	"slices"
)

// List is an ordered sequence of elements; a fixed list allows replacing elements but not changing its size.
type List[E any] struct {
	elements []E
	fixed    bool
}

// NewList creates an empty list
func NewList[E any]() *List[E] {
	return &List[E]{}
}

// AsFixedList creates a list of elements whose size cannot change
func AsFixedList[E any](elements ...E) *List[E] {
	return &List[E]{elements: slices.Clone(elements), fixed: true}
}

// Add appends element
func (l *List[E]) Add(element E) error {
	if l.fixed {
		return fmt.Errorf("%w: add to fixed size list", ErrUnsupportedOperation)
	}
	l.elements = append(l.elements, element)
	return nil
}

// Get returns element at index
func (l *List[E]) Get(index int) (E, error) {
	if index < 0 || index >= len(l.elements) {
		var zero E
		return zero, fmt.Errorf("%w: %d, size: %d", ErrIndexOutOfRange, index, len(l.elements))
	}
	return l.elements[index], nil
}

// Set replaces element at index and returns the previous one
func (l *List[E]) Set(index int, element E) (E, error) {
	previous, err := l.Get(index)
	if err != nil {
		return previous, err
	}
	l.elements[index] = element
	return previous, nil
}

// Remove deletes element at index and returns it
func (l *List[E]) Remove(index int) (E, error) {
	if l.fixed {
		var zero E
		return zero, fmt.Errorf("%w: remove from fixed size list", ErrUnsupportedOperation)
	}
	removed, err := l.Get(index)
	if err != nil {
		return removed, err
	}
	l.elements = slices.Delete(l.elements, index, index+1)
	return removed, nil
}

func (l *List[E]) Len() int {
	return len(l.elements)
}

func (l *List[E]) All() iter.Seq[E] {
	return slices.Values(l.elements)
}

// Slice returns a copy of the elements
func (l *List[E]) Slice() []E {
	return slices.Clone(l.elements)
}

func (l *List[E]) Items() []any {
	return itemsOf(l.All(), len(l.elements))
}

func (l *List[E]) IsSet() bool {
	return false
}

// ReadOnly returns a read-only view of the list
func (l *List[E]) ReadOnly() *ReadOnlyList[E] {
	return &ReadOnlyList[E]{list: l}
}

func (l *List[E]) String() string {
	return "[" + Implode(", ", l.All()) + "]"
}
