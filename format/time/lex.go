package time

import (
	"github.com/viant/parsly"
)

const (
	fieldToken = iota
	quotedToken
	literalToken
)

var (
	fieldMatcher   = parsly.NewToken(fieldToken, "field", &letterRun{})
	quotedMatcher  = parsly.NewToken(quotedToken, "' .... '", &quoted{})
	literalMatcher = parsly.NewToken(literalToken, "literal", &literal{})
)

// letterRun matches a run of the same ASCII letter, e.g. yyyy or MM
type letterRun struct{}

func (m *letterRun) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	if len(input) == 0 || !isLetter(input[0]) {
		return 0
	}
	matched := 1
	for matched < len(input) && input[matched] == input[0] {
		matched++
	}
	return matched
}

// quoted matches 'text', a doubled quote stands for a single quote both inside and outside quoting
type quoted struct{}

func (m *quoted) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	if len(input) == 0 || input[0] != '\'' {
		return 0
	}
	for i := 1; i < len(input); i++ {
		if input[i] != '\'' {
			continue
		}
		if i+1 < len(input) && input[i+1] == '\'' {
			i++
			continue
		}
		return i + 1
	}
	return len(input)
}

// literal matches a run of bytes that are neither letters nor quotes
type literal struct{}

func (m *literal) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	matched := 0
	for matched < len(input) && !isLetter(input[matched]) && input[matched] != '\'' {
		matched++
	}
	return matched
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func unquote(text string) string {
	if text == "''" {
		return "'"
	}
	text = text[1:]
	if len(text) > 0 && text[len(text)-1] == '\'' {
		text = text[:len(text)-1]
	}
	result := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		result = append(result, text[i])
		if text[i] == '\'' && i+1 < len(text) && text[i+1] == '\'' {
			i++
		}
	}
	return string(result)
}
