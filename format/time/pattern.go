package time

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/viant/parsly"
)

type kind int

const (
	kindLiteral kind = iota
	kindYear
	kindTwoDigitYear
	kindMonth
	kindMonthText
	kindDay
	kindHour
	kindMinute
	kindSecond
	kindFraction
)

func (k kind) isNumeric() bool {
	return k != kindLiteral && k != kindMonthText
}

// segment is a single compiled pattern element
type segment struct {
	kind    kind
	width   int
	maxLen  int
	lenient bool
	literal string
}

// Pattern is a compiled date pattern such as yyyy-MM-dd HH:mm:ss.SSS
type Pattern struct {
	pattern     string
	segments    []segment
	pivot       int
	defaultYear int
}

// String returns the source pattern
func (p *Pattern) String() string {
	return p.pattern
}

// Format renders t using the pattern
func (p *Pattern) Format(t time.Time) string {
	builder := strings.Builder{}
	builder.Grow(len(p.pattern) + 4)
	for _, item := range p.segments {
		switch item.kind {
		case kindLiteral:
			builder.WriteString(item.literal)
		case kindYear:
			writePadded(&builder, t.Year(), item.width)
		case kindTwoDigitYear:
			writePadded(&builder, ((t.Year()%100)+100)%100, 2)
		case kindMonth:
			writePadded(&builder, int(t.Month()), item.width)
		case kindMonthText:
			name := t.Month().String()
			if item.width < 4 {
				name = name[:3]
			}
			builder.WriteString(name)
		case kindDay:
			writePadded(&builder, t.Day(), item.width)
		case kindHour:
			writePadded(&builder, t.Hour(), item.width)
		case kindMinute:
			writePadded(&builder, t.Minute(), item.width)
		case kindSecond:
			writePadded(&builder, t.Second(), item.width)
		case kindFraction:
			builder.WriteString(formatFraction(t.Nanosecond(), item.width))
		}
	}
	return builder.String()
}

func writePadded(builder *strings.Builder, value, width int) {
	if value < 0 {
		builder.WriteByte('-')
		value = -value
	}
	text := strconv.Itoa(value)
	for i := len(text); i < width; i++ {
		builder.WriteByte('0')
	}
	builder.WriteString(text)
}

// formatFraction prints millisecond precision fraction digits truncated or padded to width
func formatFraction(nanos, width int) string {
	millis := strconv.Itoa(nanos / int(time.Millisecond))
	digits := strings.Repeat("0", 3-len(millis)) + millis
	if width <= 3 {
		return digits[:width]
	}
	return digits + strings.Repeat("0", width-3)
}

// compile translates a pattern into segments
func compile(pattern string) (*Pattern, error) {
	if pattern == "" {
		return nil, fmt.Errorf("invalid pattern: empty")
	}
	var segments []segment
	cursor := parsly.NewCursor("", []byte(pattern), 0)
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAny(fieldMatcher, quotedMatcher, literalMatcher)
		switch match.Code {
		case fieldToken:
			text := match.Text(cursor)
			item, err := newFieldSegment(text)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			segments = append(segments, item)
		case quotedToken:
			segments = appendLiteral(segments, unquote(match.Text(cursor)))
		case literalToken:
			segments = appendLiteral(segments, match.Text(cursor))
		default:
			return nil, fmt.Errorf("invalid pattern %q: unexpected character at %d", pattern, cursor.Pos)
		}
	}
	adjustWidths(segments)
	return &Pattern{pattern: pattern, segments: segments, pivot: time.Now().Year() - 30, defaultYear: defaultYear(segments)}, nil
}

// defaultYear is 2000 for patterns with a month or day but no year, 1970 otherwise
func defaultYear(segments []segment) int {
	hasDate := false
	for _, item := range segments {
		switch item.kind {
		case kindYear, kindTwoDigitYear:
			return 1970
		case kindMonth, kindMonthText, kindDay:
			hasDate = true
		}
	}
	if hasDate {
		return 2000
	}
	return 1970
}

func appendLiteral(segments []segment, text string) []segment {
	if text == "" {
		return segments
	}
	if n := len(segments); n > 0 && segments[n-1].kind == kindLiteral {
		segments[n-1].literal += text
		return segments
	}
	return append(segments, segment{kind: kindLiteral, literal: text})
}

func newFieldSegment(text string) (segment, error) {
	width := len(text)
	switch text[0] {
	case 'y', 'Y':
		if width == 2 {
			return segment{kind: kindTwoDigitYear, width: 2, maxLen: 2, lenient: true}, nil
		}
		return segment{kind: kindYear, width: width, maxLen: 9}, nil
	case 'M':
		if width >= 3 {
			return segment{kind: kindMonthText, width: width}, nil
		}
		return segment{kind: kindMonth, width: width, maxLen: 2}, nil
	case 'd':
		return segment{kind: kindDay, width: width, maxLen: 2}, nil
	case 'H':
		return segment{kind: kindHour, width: width, maxLen: 2}, nil
	case 'm':
		return segment{kind: kindMinute, width: width, maxLen: 2}, nil
	case 's':
		return segment{kind: kindSecond, width: width, maxLen: 2}, nil
	case 'S':
		return segment{kind: kindFraction, width: width, maxLen: 9}, nil
	}
	return segment{}, fmt.Errorf("illegal pattern component: %s", text)
}

// adjustWidths switches year fields to fixed width parsing when immediately followed by another numeric field
func adjustWidths(segments []segment) {
	for i := range segments {
		if i+1 >= len(segments) || !segments[i+1].kind.isNumeric() {
			continue
		}
		switch segments[i].kind {
		case kindYear:
			segments[i].maxLen = segments[i].width
		case kindTwoDigitYear:
			segments[i].lenient = false
		}
	}
}
