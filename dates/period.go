package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ftime "github.com/viant/dsutil/format/time"
)

// Period is an amount of calendar time expressed per field
type Period struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

func Years(n int) Period   { return Period{Years: n} }
func Months(n int) Period  { return Period{Months: n} }
func Weeks(n int) Period   { return Period{Weeks: n} }
func Days(n int) Period    { return Period{Days: n} }
func Hours(n int) Period   { return Period{Hours: n} }
func Minutes(n int) Period { return Period{Minutes: n} }
func Seconds(n int) Period { return Period{Seconds: n} }
func Millis(n int) Period  { return Period{Millis: n} }

// MultipliedBy scales every field by scalar
func (p Period) MultipliedBy(scalar int) Period {
	return Period{
		Years:   p.Years * scalar,
		Months:  p.Months * scalar,
		Weeks:   p.Weeks * scalar,
		Days:    p.Days * scalar,
		Hours:   p.Hours * scalar,
		Minutes: p.Minutes * scalar,
		Seconds: p.Seconds * scalar,
		Millis:  p.Millis * scalar,
	}
}

// IsZero reports whether all fields are zero
func (p Period) IsZero() bool {
	return p == Period{}
}

// AddTo adds the period to t field by field, largest first.
// Year and month steps keep the day of month, clamped to the length of the target month.
func (p Period) AddTo(t time.Time) time.Time {
	t = addMonths(t, p.Years*12)
	t = addMonths(t, p.Months)
	t = t.AddDate(0, 0, p.Weeks*7+p.Days)
	return t.Add(time.Duration(p.Hours)*time.Hour +
		time.Duration(p.Minutes)*time.Minute +
		time.Duration(p.Seconds)*time.Second +
		time.Duration(p.Millis)*time.Millisecond)
}

func addMonths(t time.Time, months int) time.Time {
	if months == 0 {
		return t
	}
	total := int(t.Month()) - 1 + months
	year := t.Year() + floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)
	day := min(t.Day(), ftime.DaysIn(month, year))
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// String returns the ISO-8601 form, e.g. P1Y2M3W4DT5H6M7.008S
func (p Period) String() string {
	if p.IsZero() {
		return "PT0S"
	}
	builder := strings.Builder{}
	builder.WriteByte('P')
	appendUnit(&builder, p.Years, 'Y')
	appendUnit(&builder, p.Months, 'M')
	appendUnit(&builder, p.Weeks, 'W')
	appendUnit(&builder, p.Days, 'D')
	if p.Hours == 0 && p.Minutes == 0 && p.Seconds == 0 && p.Millis == 0 {
		return builder.String()
	}
	builder.WriteByte('T')
	appendUnit(&builder, p.Hours, 'H')
	appendUnit(&builder, p.Minutes, 'M')
	if p.Seconds != 0 || p.Millis != 0 {
		total := p.Seconds*1000 + p.Millis
		if total < 0 {
			builder.WriteByte('-')
			total = -total
		}
		builder.WriteString(strconv.Itoa(total / 1000))
		if fraction := total % 1000; fraction != 0 {
			builder.WriteString(fmt.Sprintf(".%03d", fraction))
		}
		builder.WriteByte('S')
	}
	return builder.String()
}

func appendUnit(builder *strings.Builder, value int, unit byte) {
	if value == 0 {
		return
	}
	builder.WriteString(strconv.Itoa(value))
	builder.WriteByte(unit)
}

// ParseUnit returns a one unit period for names like day, months or y
func ParseUnit(name string) (Period, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "ms" {
		return Millis(1), nil
	}
	switch strings.TrimSuffix(key, "s") {
	case "year", "y":
		return Years(1), nil
	case "month":
		return Months(1), nil
	case "week", "w":
		return Weeks(1), nil
	case "day", "d":
		return Days(1), nil
	case "hour", "h":
		return Hours(1), nil
	case "minute", "min":
		return Minutes(1), nil
	case "second", "sec":
		return Seconds(1), nil
	case "milli", "millisecond":
		return Millis(1), nil
	}
	return Period{}, fmt.Errorf("unsupported period unit: %q", name)
}
