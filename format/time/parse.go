package time

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = func() []string {
	result := make([]string, 0, 24)
	for m := time.January; m <= time.December; m++ {
		result = append(result, m.String())
	}
	for m := time.January; m <= time.December; m++ {
		result = append(result, m.String()[:3])
	}
	return result
}()

// ParseError reports a value that does not conform to a pattern
type ParseError struct {
	Value    string
	Pattern  string
	Position int
	Reason   string
}

func (e *ParseError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("cannot parse %q: %s", e.Value, e.Reason)
	case e.Position >= len(e.Value):
		return fmt.Sprintf("invalid format: %q is too short", e.Value)
	default:
		return fmt.Sprintf("invalid format: %q is malformed at %q", e.Value, e.Value[e.Position:])
	}
}

const maxYearDigits = 9

type fields struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
	nanos  int
}

// Parse parses value in UTC, missing fields default to 1970-01-01T00:00:00.
// A pattern with a month or day but no year defaults the year to 2000, so 02/29 parses with MM/dd.
// Literals match case-insensitively and the whole value has to be consumed.
func (p *Pattern) Parse(value string) (time.Time, error) {
	parsed := fields{year: p.defaultYear, month: 1, day: 1}
	pos := 0
	for _, item := range p.segments {
		var ok bool
		switch item.kind {
		case kindLiteral:
			end := pos + len(item.literal)
			if ok = end <= len(value) && strings.EqualFold(value[pos:end], item.literal); ok {
				pos = end
			}
		case kindMonthText:
			parsed.month, pos, ok = parseMonthName(value, pos)
		case kindTwoDigitYear:
			parsed.year, pos, ok = p.parseTwoDigitYear(value, pos, item)
		case kindYear:
			parsed.year, pos, ok = parseNumber(value, pos, item.maxLen, true)
		case kindFraction:
			start := pos
			var digits int
			if digits, pos, ok = parseNumber(value, pos, item.maxLen, false); ok {
				for i := pos - start; i < 9; i++ {
					digits *= 10
				}
				parsed.nanos = digits
			}
		default:
			var number int
			if number, pos, ok = parseNumber(value, pos, item.maxLen, false); ok {
				parsed.set(item.kind, number)
			}
		}
		if !ok {
			return time.Time{}, &ParseError{Value: value, Pattern: p.pattern, Position: pos}
		}
	}
	if pos < len(value) {
		return time.Time{}, &ParseError{Value: value, Pattern: p.pattern, Position: pos}
	}
	if reason := parsed.validate(); reason != "" {
		return time.Time{}, &ParseError{Value: value, Pattern: p.pattern, Position: pos, Reason: reason}
	}
	return time.Date(parsed.year, time.Month(parsed.month), parsed.day, parsed.hour, parsed.minute, parsed.second, parsed.nanos, time.UTC), nil
}

func (f *fields) set(k kind, value int) {
	switch k {
	case kindMonth:
		f.month = value
	case kindDay:
		f.day = value
	case kindHour:
		f.hour = value
	case kindMinute:
		f.minute = value
	case kindSecond:
		f.second = value
	}
}

func (f *fields) validate() string {
	if f.month < 1 || f.month > 12 {
		return rangeReason(f.month, "monthOfYear", 1, 12)
	}
	if last := DaysIn(time.Month(f.month), f.year); f.day < 1 || f.day > last {
		return rangeReason(f.day, "dayOfMonth", 1, last)
	}
	if f.hour > 23 {
		return rangeReason(f.hour, "hourOfDay", 0, 23)
	}
	if f.minute > 59 {
		return rangeReason(f.minute, "minuteOfHour", 0, 59)
	}
	if f.second > 59 {
		return rangeReason(f.second, "secondOfMinute", 0, 59)
	}
	return ""
}

func rangeReason(value int, field string, lower, upper int) string {
	return fmt.Sprintf("value %d for %s must be in the range [%d,%d]", value, field, lower, upper)
}

// DaysIn returns the number of days in month of year
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseNumber reads between 1 and maxLen digits, a leading minus is accepted when signed
func parseNumber(value string, pos, maxLen int, signed bool) (int, int, bool) {
	negative := false
	if signed && pos < len(value) && value[pos] == '-' {
		negative = true
		pos++
	}
	start := pos
	result := 0
	for pos < len(value) && pos-start < maxLen && isDigit(value[pos]) {
		result = result*10 + int(value[pos]-'0')
		pos++
	}
	if pos == start {
		if negative {
			pos--
		}
		return 0, pos, false
	}
	if negative {
		result = -result
	}
	return result, pos, true
}

func (p *Pattern) parseTwoDigitYear(value string, pos int, item segment) (int, int, bool) {
	if item.lenient {
		start := pos
		signed := pos < len(value) && (value[pos] == '-' || value[pos] == '+')
		if signed {
			pos++
		}
		digitsStart := pos
		for pos < len(value) && isDigit(value[pos]) {
			pos++
		}
		digits := pos - digitsStart
		if digits == 0 || digits > maxYearDigits {
			return 0, start, false
		}
		if signed || digits != 2 {
			year, _, _ := parseNumber(strings.TrimPrefix(value[start:pos], "+"), 0, maxYearDigits, true)
			return year, pos, true
		}
		pos = start
	}
	if pos+2 > len(value) || !isDigit(value[pos]) || !isDigit(value[pos+1]) {
		return 0, pos, false
	}
	year := int(value[pos]-'0')*10 + int(value[pos+1]-'0')
	return p.expandTwoDigitYear(year), pos + 2, true
}

// expandTwoDigitYear maps yy into the hundred year window centred on the pivot
func (p *Pattern) expandTwoDigitYear(year int) int {
	low := p.pivot - 50
	var t int
	if low >= 0 {
		t = low % 100
	} else {
		t = 99 + ((low + 1) % 100)
	}
	if year < t {
		year += 100
	}
	return year + low - t
}

func parseMonthName(value string, pos int) (int, int, bool) {
	for i, name := range monthNames {
		end := pos + len(name)
		if end <= len(value) && strings.EqualFold(value[pos:end], name) {
			return i%12 + 1, end, true
		}
	}
	return 0, pos, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
