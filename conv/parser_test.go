package conv

import (
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	red color = iota
	green
)

func (c color) String() string {
	switch c {
	case red:
		return "RED"
	case green:
		return "GREEN"
	}
	return "UNKNOWN"
}

func TestParsers(t *testing.T) {
	var testCases = []struct {
		description string
		parse       func(string) (interface{}, error)
		input       string
		expect      interface{}
		hasError    bool
	}{
		{description: "int", parse: wrap(Int), input: "42", expect: 42},
		{description: "negative int64", parse: wrap(Int64), input: "-7", expect: int64(-7)},
		{description: "int with spaces", parse: wrap(Int), input: " 3", hasError: true},
		{description: "int8 overflow", parse: wrap(Signed[int8]()), input: "300", hasError: true},
		{description: "uint", parse: wrap(Uint), input: "9", expect: uint(9)},
		{description: "negative uint", parse: wrap(Uint), input: "-9", hasError: true},
		{description: "float", parse: wrap(Float64), input: "1.5", expect: 1.5},
		{description: "bool", parse: wrap(Bool), input: "TRUE", expect: true},
		{description: "bad bool", parse: wrap(Bool), input: "yes", hasError: true},
		{description: "duration", parse: wrap(Duration), input: "1m30s", expect: 90 * time.Second},
		{description: "string", parse: wrap(String), input: " as is ", expect: " as is "},
		{description: "enum", parse: wrap(Enum(red, green)), input: "GREEN", expect: green},
		{description: "enum folded", parse: wrap(Enum(red, green)), input: "red", expect: red},
		{description: "unknown enum", parse: wrap(Enum(red, green)), input: "BLUE", hasError: true},
		{description: "lookup", parse: wrap(Lookup(map[string]int{"one": 1})), input: "one", expect: 1},
		{description: "unknown lookup", parse: wrap(Lookup(map[string]int{"one": 1})), input: "two", hasError: true},
	}

	for _, testCase := range testCases {
		actual, err := testCase.parse(testCase.input)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			var conversionErr *ConversionError
			assert.True(t, errors.As(err, &conversionErr), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestConversionError(t *testing.T) {
	_, err := Int("x1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't convert (x1) to int")
}

func TestTime(t *testing.T) {
	parse, err := Time("MM/dd/yyyy")
	require.NoError(t, err)
	actual, err := parse("02/29/2016")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, 2, 29, 0, 0, 0, 0, time.UTC), actual)

	_, err = parse("02/30/2016")
	assert.Error(t, err)

	_, err = Time("yyyy-QQ")
	assert.Error(t, err)
}

func TestParserFor(t *testing.T) {
	{
		parse, err := ParserFor[int]()
		require.NoError(t, err)
		v, err := parse("5")
		assert.NoError(t, err)
		assert.Equal(t, 5, v)
	}
	{
		parse, err := ParserFor[netip.Addr]()
		require.NoError(t, err)
		v, err := parse("10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, netip.MustParseAddr("10.0.0.1"), v)
		_, err = parse("not-an-ip")
		assert.Error(t, err)
	}
	{
		_, err := ParserFor[struct{ A int }]()
		assert.ErrorIs(t, err, ErrNoParser)
	}
	{
		Register(Enum(red, green))
		parse, err := ParserFor[color]()
		require.NoError(t, err)
		v, err := parse("GREEN")
		assert.NoError(t, err)
		assert.Equal(t, green, v)
	}
}

func wrap[E any](parse func(string) (E, error)) func(string) (interface{}, error) {
	return func(token string) (interface{}, error) {
		return parse(token)
	}
}
