package collection

import (
	"errors"
	"iter"

	"github.com/viant/dsutil/conv"
)

var (
	// ErrUnsupportedOperation is returned when mutating a read-only or fixed size container
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrIndexOutOfRange is returned for list positions outside [0, Len)
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrMissingParser is returned when an element type has no single string parser
	ErrMissingParser = conv.ErrNoParser
	// ErrNotComparable is returned when a set receives an element that cannot be hashed
	ErrNotComparable = errors.New("element is not comparable")
)

// Collection is a growable group of elements
type Collection[E any] interface {
	Add(element E) error
	Len() int
	All() iter.Seq[E]
}

// Container is the untyped view of a collection, used when walking nested values
type Container interface {
	Len() int
	Items() []any
	IsSet() bool
}

// Must returns v or panics with err, intended for package level tables
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func itemsOf[E any](seq iter.Seq[E], size int) []any {
	result := make([]any, 0, size)
	for element := range seq {
		result = append(result, element)
	}
	return result
}

func sliceOf[E any](seq iter.Seq[E], size int) []E {
	result := make([]E, 0, size)
	for element := range seq {
		result = append(result, element)
	}
	return result
}
