package visitor

import (
	"fmt"
	"reflect"
)

// IsSequence reports whether value is a slice or an array (byte slices and strings excluded).
func IsSequence(value interface{}) bool {
	switch value.(type) {
	case nil, string, []byte:
		return false
	case []interface{}, []string, []int, []int64, []float64, []bool:
		return true
	}
	kind := reflect.TypeOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// AnySliceVisitorOf dynamically creates a visitor from any slice or array value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	case []bool:
		return AnyTypedSliceVisitorOf[bool](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []int64:
		return AnyTypedSliceVisitorOf[int64](actual), nil
	case []uint64:
		return AnyTypedSliceVisitorOf[uint64](actual), nil
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), nil
	}
	if value == nil {
		return nil, fmt.Errorf("expected slice or array, got nil")
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &AnySliceVisitor[any]{data: val}
	return visitor.Visit, nil
}

// AnyTypedSliceVisitorOf return visitor
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnySliceVisitor visits slices and arrays of any element type via reflection.
type AnySliceVisitor[E any] struct {
	data reflect.Value
}

// Visit iterates over the sequence via reflection.
func (v *AnySliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		item := v.data.Index(i)
		var val E
		if item.Kind() != reflect.Interface || !item.IsNil() {
			casted, ok := item.Interface().(E)
			if !ok {
				return fmt.Errorf("element %d: unsupported type %s", i, item.Type())
			}
			val = casted
		}
		continueVisit, err := f(i, val)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
