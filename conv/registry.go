package conv

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/viant/dsutil/visitor"
)

// ErrNoParser is returned when no parser is registered or derivable for a type.
var ErrNoParser = errors.New("no single string parser")

var registry = newRegistry()

func newRegistry() *visitor.SyncMap[reflect.Type, any] {
	result := visitor.NewSyncMap[reflect.Type, any]()
	result.Put(reflect.TypeFor[string](), Parser[string](String))
	result.Put(reflect.TypeFor[bool](), Parser[bool](Bool))
	result.Put(reflect.TypeFor[int](), Signed[int]())
	result.Put(reflect.TypeFor[int8](), Signed[int8]())
	result.Put(reflect.TypeFor[int16](), Signed[int16]())
	result.Put(reflect.TypeFor[int32](), Signed[int32]())
	result.Put(reflect.TypeFor[int64](), Signed[int64]())
	result.Put(reflect.TypeFor[uint](), Unsigned[uint]())
	result.Put(reflect.TypeFor[uint8](), Unsigned[uint8]())
	result.Put(reflect.TypeFor[uint16](), Unsigned[uint16]())
	result.Put(reflect.TypeFor[uint32](), Unsigned[uint32]())
	result.Put(reflect.TypeFor[uint64](), Unsigned[uint64]())
	result.Put(reflect.TypeFor[float32](), Float[float32]())
	result.Put(reflect.TypeFor[float64](), Float[float64]())
	result.Put(reflect.TypeFor[time.Duration](), Parser[time.Duration](Duration))
	return result
}

// Register associates parse with E, replacing any previous registration.
func Register[E any](parse Parser[E]) {
	registry.Put(reflect.TypeFor[E](), parse)
}

// ParserFor returns the parser registered for E. Types whose pointer implements
// encoding.TextUnmarshaler get a derived parser.
func ParserFor[E any]() (Parser[E], error) {
	rType := reflect.TypeFor[E]()
	if candidate, ok := registry.Get(rType); ok {
		if parse, ok := candidate.(Parser[E]); ok {
			return parse, nil
		}
	}
	var sample E
	if _, ok := any(&sample).(encoding.TextUnmarshaler); ok {
		stored, _ := registry.GetOrPut(rType, Parser[E](textParser[E]))
		if parse, ok := stored.(Parser[E]); ok {
			return parse, nil
		}
		return textParser[E], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoParser, rType.String())
}

func textParser[E any](token string) (E, error) {
	var result E
	unmarshaler := any(&result).(encoding.TextUnmarshaler)
	if err := unmarshaler.UnmarshalText([]byte(token)); err != nil {
		var zero E
		return zero, newConversionError[E](token, err)
	}
	return result, nil
}
