package collection

import "cmp"

// As creates a collection with factory and adds elements in order.
//
//	numbers, err := collection.As(collection.NewSortedSet[int], 5, 2, 3)
func As[C Collection[E], E any](factory func() C, elements ...E) (C, error) {
	result := factory()
	for _, element := range elements {
		if err := result.Add(element); err != nil {
			var zero C
			return zero, err
		}
	}
	return result, nil
}

// AsList creates a list of elements
func AsList[E any](elements ...E) *List[E] {
	return &List[E]{elements: append([]E(nil), elements...)}
}

// AsUnmodifiableList creates a read-only list of elements
func AsUnmodifiableList[E any](elements ...E) *ReadOnlyList[E] {
	return AsList(elements...).ReadOnly()
}

// AsUnmodifiableSet creates a read-only insertion ordered set of elements
func AsUnmodifiableSet[E comparable](elements ...E) (*ReadOnlySet[E], error) {
	set, err := As(NewLinkedSet[E], elements...)
	if err != nil {
		return nil, err
	}
	return set.ReadOnly(), nil
}

// AsUnmodifiableSortedSet creates a read-only naturally ordered set of elements
func AsUnmodifiableSortedSet[E cmp.Ordered](elements ...E) *ReadOnlySortedSet[E] {
	set := NewSortedSet[E]()
	for _, element := range elements {
		_ = set.Add(element)
	}
	return set.ReadOnly()
}

// AsUnmodifiableSortedSetFunc creates a read-only set of elements ordered by compare
func AsUnmodifiableSortedSetFunc[E any](compare func(a, b E) int, elements ...E) *ReadOnlySortedSet[E] {
	set := NewSortedSetFunc(compare)
	for _, element := range elements {
		_ = set.Add(element)
	}
	return set.ReadOnly()
}
