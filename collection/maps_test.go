package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf[K comparable, V any](m Map[K, V]) []K {
	var result []K
	for key := range m.All() {
		result = append(result, key)
	}
	return result
}

func TestAsMap(t *testing.T) {
	entries := []Entry[string, int]{NewEntry("C", 3), NewEntry("A", 1), NewEntry("B", 2)}
	var testCases = []struct {
		description string
		build       func() (Map[string, int], error)
		expectKeys  []string
	}{
		{
			description: "ordered map keeps insertion order",
			build: func() (Map[string, int], error) {
				return AsMap(NewOrderedMap[string, int], entries...)
			},
			expectKeys: []string{"C", "A", "B"},
		},
		{
			description: "sorted map orders keys",
			build: func() (Map[string, int], error) {
				return AsMap(NewSortedMap[string, int], entries...)
			},
			expectKeys: []string{"A", "B", "C"},
		},
	}
	for _, testCase := range testCases {
		actual, err := testCase.build()
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectKeys, keysOf(actual), testCase.description)
		value, ok := actual.Get("A")
		assert.True(t, ok, testCase.description)
		assert.Equal(t, 1, value, testCase.description)
	}

	hash, err := AsMap(NewHashMap[string, int], entries...)
	require.NoError(t, err)
	assert.Equal(t, HashMap[string, int]{"A": 1, "B": 2, "C": 3}, hash)
}

func TestOrderedMapReplaceKeepsPosition(t *testing.T) {
	m := NewOrderedMap[string, int]()
	_ = m.Put("x", 1)
	_ = m.Put("y", 2)
	_ = m.Put("x", 3)
	assert.Equal(t, []string{"x", "y"}, m.Keys())
	assert.Equal(t, "{x=3, y=2}", m.String())
	assert.True(t, m.Remove("x"))
	assert.False(t, m.Remove("x"))
	assert.Equal(t, []string{"y"}, m.Keys())
}

func TestUnmodifiableMap(t *testing.T) {
	readOnly, err := AsUnmodifiableMap(NewOrderedMap[string, int], NewEntry("a", 1))
	require.NoError(t, err)
	assert.ErrorIs(t, readOnly.Put("b", 2), ErrUnsupportedOperation)
	_, err = readOnly.Remove("a")
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Equal(t, 1, readOnly.Len())

	sorted := AsUnmodifiableSortedMap(NewEntry(3, "c"), NewEntry(1, "a"), NewEntry(2, "b"))
	assert.ErrorIs(t, sorted.Put(4, "d"), ErrUnsupportedOperation)
	assert.Equal(t, []int{1, 2, 3}, sorted.Keys())
	first, _ := sorted.FirstKey()
	last, _ := sorted.LastKey()
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, last)
	assert.Equal(t, "{1=a, 2=b, 3=c}", sorted.String())
}

func TestFlip(t *testing.T) {
	var original Map[int, string] = Must(AsMap(NewOrderedMap[int, string], NewEntry(1, "C"), NewEntry(2, "A"), NewEntry(3, "B")))

	flipped, err := Flip(NewOrderedMap[string, int], original)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, flipped.Keys())

	readOnly, err := UnmodifiableFlip(NewSortedMap[string, int], original)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, keysOf[string, int](readOnly))
	assert.ErrorIs(t, readOnly.Put("D", 4), ErrUnsupportedOperation)

	var back Map[string, int] = flipped
	restored, err := Flip(NewOrderedMap[int, string], back)
	require.NoError(t, err)
	assert.Equal(t, "{1=C, 2=A, 3=B}", restored.String())

	var missing Map[int, string]
	nilFlip, err := Flip(NewOrderedMap[string, int], missing)
	assert.NoError(t, err)
	assert.Nil(t, nilFlip)
	nilReadOnly, err := UnmodifiableFlip(NewOrderedMap[string, int], missing)
	assert.NoError(t, err)
	assert.Nil(t, nilReadOnly)
}

func TestFlipDuplicateValues(t *testing.T) {
	var original Map[string, int] = Must(AsMap(NewOrderedMap[string, int], NewEntry("a", 1), NewEntry("b", 1)))
	flipped, err := Flip(NewOrderedMap[int, string], original)
	require.NoError(t, err)
	value, _ := flipped.Get(1)
	assert.Equal(t, "b", value)
}

func TestFlipMap(t *testing.T) {
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, FlipMap(map[int]string{1: "a", 2: "b"}))
	assert.Nil(t, FlipMap[int, string](nil))
}
