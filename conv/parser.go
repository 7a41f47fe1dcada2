package conv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	ftime "github.com/viant/dsutil/format/time"
)

// Parser converts a token into E
type Parser[E any] func(token string) (E, error)

// ConversionError reports a token that could not be converted to the destination type.
type ConversionError struct {
	Token  string
	Target string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("can't convert (%s) to %s", e.Token, e.Target)
	}
	return fmt.Sprintf("can't convert (%s) to %s: %v", e.Token, e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func newConversionError[E any](token string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &ConversionError{Token: token, Target: reflect.TypeFor[E]().String(), Err: err}
}

type (
	signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}
	unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}
	float interface {
		~float32 | ~float64
	}
)

// String returns the token as is
func String(token string) (string, error) {
	return token, nil
}

// Int parses a base 10 int
func Int(token string) (int, error) {
	return Signed[int]()(token)
}

// Int64 parses a base 10 int64
func Int64(token string) (int64, error) {
	return Signed[int64]()(token)
}

// Uint parses a base 10 uint
func Uint(token string) (uint, error) {
	return Unsigned[uint]()(token)
}

// Float64 parses a float64
func Float64(token string) (float64, error) {
	return Float[float64]()(token)
}

// Bool parses true/false, 1/0 and t/f in any case
func Bool(token string) (bool, error) {
	v, err := strconv.ParseBool(token)
	if err != nil {
		return false, newConversionError[bool](token, err)
	}
	return v, nil
}

// Signed returns a parser for any signed integer type, honouring its bit size.
func Signed[E signed]() Parser[E] {
	bits := reflect.TypeFor[E]().Bits()
	return func(token string) (E, error) {
		v, err := strconv.ParseInt(token, 10, bits)
		if err != nil {
			return 0, newConversionError[E](token, err)
		}
		return E(v), nil
	}
}

// Unsigned returns a parser for any unsigned integer type.
func Unsigned[E unsigned]() Parser[E] {
	bits := reflect.TypeFor[E]().Bits()
	return func(token string) (E, error) {
		v, err := strconv.ParseUint(token, 10, bits)
		if err != nil {
			return 0, newConversionError[E](token, err)
		}
		return E(v), nil
	}
}

// Float returns a parser for float32/float64 kinds.
func Float[E float]() Parser[E] {
	bits := reflect.TypeFor[E]().Bits()
	return func(token string) (E, error) {
		v, err := strconv.ParseFloat(token, bits)
		if err != nil {
			return 0, newConversionError[E](token, err)
		}
		return E(v), nil
	}
}

// Duration parses Go duration literals such as 1h30m
func Duration(token string) (time.Duration, error) {
	v, err := time.ParseDuration(token)
	if err != nil {
		return 0, newConversionError[time.Duration](token, err)
	}
	return v, nil
}

// Enum returns a parser matching tokens against the String() form of values.
// Matching is exact first, then case-insensitive.
func Enum[E fmt.Stringer](values ...E) Parser[E] {
	index := make(map[string]E, len(values))
	folded := make(map[string]E, len(values))
	for _, value := range values {
		index[value.String()] = value
		folded[strings.ToLower(value.String())] = value
	}
	return func(token string) (E, error) {
		if v, ok := index[token]; ok {
			return v, nil
		}
		if v, ok := folded[strings.ToLower(token)]; ok {
			return v, nil
		}
		var zero E
		return zero, newConversionError[E](token, fmt.Errorf("no enum constant %s", token))
	}
}

// Lookup returns a parser resolving tokens through a fixed dictionary.
func Lookup[E any](dictionary map[string]E) Parser[E] {
	return func(token string) (E, error) {
		v, ok := dictionary[token]
		if !ok {
			var zero E
			return zero, newConversionError[E](token, fmt.Errorf("unknown value"))
		}
		return v, nil
	}
}

// Time returns a parser for date patterns such as yyyy-MM-dd.
func Time(pattern string) (Parser[time.Time], error) {
	compiled, err := ftime.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(token string) (time.Time, error) {
		v, err := compiled.Parse(token)
		if err != nil {
			return time.Time{}, newConversionError[time.Time](token, err)
		}
		return v, nil
	}, nil
}
