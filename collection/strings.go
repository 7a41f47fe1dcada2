package collection

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/viant/dsutil/conv"
)

// Implode joins the fmt.Sprint form of elements with glue, a nil sequence yields an empty string
func Implode[E any](glue string, elements iter.Seq[E]) string {
	if elements == nil {
		return ""
	}
	builder := strings.Builder{}
	i := 0
	for element := range elements {
		if i > 0 {
			builder.WriteString(glue)
		}
		builder.WriteString(fmt.Sprint(element))
		i++
	}
	return builder.String()
}

// ImplodeValues joins values with glue
func ImplodeValues[E any](glue string, values ...E) string {
	return Implode(glue, slices.Values(values))
}

// ExplodeStrings splits s on the literal delimiter, trailing empty tokens are dropped
func ExplodeStrings(delimiter, s string) []string {
	if s == "" {
		return nil
	}
	tokens := strings.Split(s, delimiter)
	end := len(tokens)
	for end > 0 && tokens[end-1] == "" {
		end--
	}
	return tokens[:end]
}

// Explode splits s on the literal delimiter and adds parse(token) for each token to a collection created by factory.
// An empty s is treated as null and yields the zero collection, not a collection holding one empty token.
// A nil parse is a configuration error.
func Explode[C Collection[E], E any](factory func() C, parse func(token string) (E, error), delimiter, s string) (C, error) {
	var zero C
	if parse == nil {
		return zero, fmt.Errorf("%w: nil parser", ErrMissingParser)
	}
	if s == "" {
		return zero, nil
	}
	result := factory()
	for _, token := range ExplodeStrings(delimiter, s) {
		element, err := parse(token)
		if err != nil {
			return zero, err
		}
		if err = result.Add(element); err != nil {
			return zero, err
		}
	}
	return result, nil
}

// ExplodeAs explodes s using the parser registered for E
func ExplodeAs[C Collection[E], E any](factory func() C, delimiter, s string) (C, error) {
	parse, err := conv.ParserFor[E]()
	if err != nil {
		var zero C
		return zero, err
	}
	return Explode[C, E](factory, parse, delimiter, s)
}

// ExplodeToSlice splits s and parses every token
func ExplodeToSlice[E any](parse func(token string) (E, error), delimiter, s string) ([]E, error) {
	list, err := Explode[*List[E], E](NewList[E], parse, delimiter, s)
	if err != nil || list == nil {
		return nil, err
	}
	return list.elements, nil
}
