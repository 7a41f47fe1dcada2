package collection

import (
	"fmt"
	"iter"
)

func unsupported(operation string) error {
	return fmt.Errorf("%w: %s on read-only container", ErrUnsupportedOperation, operation)
}

// ReadOnlyList is a read-only view of a List
type ReadOnlyList[E any] struct {
	list *List[E]
}

func (r *ReadOnlyList[E]) Add(E) error {
	return unsupported("add")
}

func (r *ReadOnlyList[E]) Set(int, E) (E, error) {
	var zero E
	return zero, unsupported("set")
}

func (r *ReadOnlyList[E]) Remove(int) (E, error) {
	var zero E
	return zero, unsupported("remove")
}

func (r *ReadOnlyList[E]) Get(index int) (E, error) {
	return r.list.Get(index)
}

func (r *ReadOnlyList[E]) Len() int         { return r.list.Len() }
func (r *ReadOnlyList[E]) All() iter.Seq[E] { return r.list.All() }
func (r *ReadOnlyList[E]) Slice() []E       { return r.list.Slice() }
func (r *ReadOnlyList[E]) Items() []any     { return r.list.Items() }
func (r *ReadOnlyList[E]) IsSet() bool      { return false }
func (r *ReadOnlyList[E]) String() string   { return r.list.String() }

// ReadOnlySet is a read-only view of a LinkedSet
type ReadOnlySet[E comparable] struct {
	set *LinkedSet[E]
}

func (r *ReadOnlySet[E]) Add(E) error {
	return unsupported("add")
}

func (r *ReadOnlySet[E]) Remove(E) (bool, error) {
	return false, unsupported("remove")
}

func (r *ReadOnlySet[E]) Contains(element E) bool { return r.set.Contains(element) }
func (r *ReadOnlySet[E]) Len() int                { return r.set.Len() }
func (r *ReadOnlySet[E]) All() iter.Seq[E]        { return r.set.All() }
func (r *ReadOnlySet[E]) Slice() []E              { return r.set.Slice() }
func (r *ReadOnlySet[E]) Items() []any            { return r.set.Items() }
func (r *ReadOnlySet[E]) IsSet() bool             { return true }
func (r *ReadOnlySet[E]) String() string          { return r.set.String() }

// ReadOnlySortedSet is a read-only view of a SortedSet, navigation stays available
type ReadOnlySortedSet[E any] struct {
	set *SortedSet[E]
}

func (r *ReadOnlySortedSet[E]) Add(E) error {
	return unsupported("add")
}

func (r *ReadOnlySortedSet[E]) Remove(E) (bool, error) {
	return false, unsupported("remove")
}

func (r *ReadOnlySortedSet[E]) Contains(element E) bool { return r.set.Contains(element) }
func (r *ReadOnlySortedSet[E]) First() (E, bool)        { return r.set.First() }
func (r *ReadOnlySortedSet[E]) Last() (E, bool)         { return r.set.Last() }
func (r *ReadOnlySortedSet[E]) Floor(element E) (E, bool) {
	return r.set.Floor(element)
}
func (r *ReadOnlySortedSet[E]) Ceiling(element E) (E, bool) {
	return r.set.Ceiling(element)
}
func (r *ReadOnlySortedSet[E]) Len() int         { return r.set.Len() }
func (r *ReadOnlySortedSet[E]) All() iter.Seq[E] { return r.set.All() }
func (r *ReadOnlySortedSet[E]) Slice() []E       { return r.set.Slice() }
func (r *ReadOnlySortedSet[E]) Items() []any     { return r.set.Items() }
func (r *ReadOnlySortedSet[E]) IsSet() bool      { return true }
func (r *ReadOnlySortedSet[E]) String() string   { return r.set.String() }
