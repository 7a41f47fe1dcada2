package format

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
)

const (
	TagName = "format"
)

// Tag is the parsed `format` struct tag, e.g. `format:"name=startDate,dateFormat=yyyy-MM-dd,omitempty"`.
// Values containing commas are wrapped in braces: `format:"dateFormat={MMM d, yyyy}"`.
type Tag struct {
	Name       string
	CaseFormat string
	DateFormat string

	Omitempty bool
	Ignore    bool
}

func (t *Tag) update(key string, value string, strictMode bool) error {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "name":
		t.Name = value
	case "dateformat", "pattern":
		t.DateFormat = value
	case "caseformat":
		t.CaseFormat = value
	case "omitempty":
		t.Omitempty = true
	case "ignore", "-", "transient":
		t.Ignore = true
	case "":
	default:
		if strictMode {
			return fmt.Errorf("unknown %v tag key: %v", TagName, key)
		}
	}
	return nil
}

// Parse parses the format tag, names are fallback tags sharing the same key=value syntax, unknown keys are only reported for the format tag
func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}
	names = append([]string{TagName}, names...)
	for i, name := range names {
		encoded, ok := tag.Lookup(name)
		if !ok || encoded == "" {
			continue
		}
		switch encoded {
		case "-":
			ret.Ignore = true
			continue
		case ",omitempty":
			ret.Omitempty = true
			continue
		}
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for cursor.Pos < len(cursor.Input) {
			key, value := matchPair(cursor)
			if err := ret.update(key, value, i == 0); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

// matchPair reads key[=value] up to the next top level comma, braced and quoted values may contain commas
func matchPair(cursor *parsly.Cursor) (string, string) {
	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex == -1 || (comaIndex != -1 && comaIndex < eqIndex) {
		return matchRest(cursor), ""
	}
	match := cursor.MatchAny(eqTerminatorMatcher)
	key := match.Text(cursor)
	key = key[:len(key)-1]
	value := ""
	match = cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1]
	default:
		value = string(cursor.Input[cursor.Pos:])
		cursor.Pos = len(cursor.Input)
	}
	return key, value
}

func matchRest(cursor *parsly.Cursor) string {
	match := cursor.MatchAny(comaTerminatorMatcher)
	if match.Code == comaTerminatorToken {
		text := match.Text(cursor)
		return text[:len(text)-1]
	}
	text := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return text
}
