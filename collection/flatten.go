package collection

import (
	"github.com/viant/dsutil/visitor"
)

// Flatten expands nested containers, slices and arrays depth first into a single collection of leaves.
//
// The result is an insertion ordered set when value is set-like, or when value holds exactly one
// set-like container; otherwise it is a list. A scalar or nil value yields a read-only collection with
// that single leaf. An empty container is returned as is when it already is a Collection[any].
// remap, when not nil, is applied once to every leaf in traversal order.
func Flatten(value any, remap func(any) any) (Collection[any], error) {
	items, asSet, err := expand(value)
	if err != nil {
		return nil, err
	}
	switch len(items) {
	case 0:
		if same, ok := value.(Collection[any]); ok {
			return same, nil
		}
		if asSet {
			return NewLinkedSet[any](), nil
		}
		return NewList[any](), nil
	case 1:
		single := items[0]
		if !isNested(single) {
			single = apply(remap, single)
			if asSet {
				set, err := AsUnmodifiableSet(single)
				if err != nil {
					return nil, err
				}
				return set, nil
			}
			return AsUnmodifiableList(single), nil
		}
		if container, ok := single.(Container); ok && container.IsSet() {
			asSet = true
		}
	}
	var result Collection[any] = NewList[any]()
	if asSet {
		result = NewLinkedSet[any]()
	}
	if err = flattenInto(result, items, remap); err != nil {
		return nil, err
	}
	return result, nil
}

func flattenInto(result Collection[any], items []any, remap func(any) any) error {
	for _, item := range items {
		if !isNested(item) {
			if err := result.Add(apply(remap, item)); err != nil {
				return err
			}
			continue
		}
		nested, err := Flatten(item, remap)
		if err != nil {
			return err
		}
		for leaf := range nested.All() {
			if err = result.Add(leaf); err != nil {
				return err
			}
		}
	}
	return nil
}

// expand returns the direct items of value and whether value is set-like
func expand(value any) ([]any, bool, error) {
	switch actual := value.(type) {
	case nil:
		return []any{nil}, false, nil
	case Container:
		return actual.Items(), actual.IsSet(), nil
	}
	if !visitor.IsSequence(value) {
		return []any{value}, false, nil
	}
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return nil, false, err
	}
	items, err := visit.Elements()
	return items, false, err
}

func isNested(value any) bool {
	if _, ok := value.(Container); ok {
		return true
	}
	return visitor.IsSequence(value)
}

func apply(remap func(any) any, value any) any {
	if remap == nil {
		return value
	}
	return remap(value)
}

// EqualsNoOrder reports whether a and b hold the same elements with the same multiplicity, in any order
func EqualsNoOrder[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[E]int, len(a))
	for _, element := range a {
		counts[element]++
	}
	for _, element := range b {
		remaining, ok := counts[element]
		if !ok || remaining == 0 {
			return false
		}
		counts[element] = remaining - 1
	}
	return true
}
