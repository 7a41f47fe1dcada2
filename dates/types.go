package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ftime "github.com/viant/dsutil/format/time"
)

const (
	isoLocalDate     = StandardDateFormat
	isoLocalTime     = "HH:mm:ss"
	isoLocalDateTime = "yyyy-MM-dd'T'HH:mm:ss"
	isoSecondLayout  = "2006-01-02T15:04:05"
)

// LocalDate is a calendar day without time or zone
type LocalDate struct {
	t time.Time
}

// NewLocalDate returns the given day, out of range values are normalized
func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// LocalDateOf returns the day of t in t's location
func LocalDateOf(t time.Time) LocalDate {
	return NewLocalDate(t.Date())
}

// ParseLocalDate parses yyyy-MM-dd
func ParseLocalDate(text string) (LocalDate, error) {
	return ParseLocalDateFormat(text, isoLocalDate)
}

// ParseLocalDateFormat parses text with pattern keeping only the day
func ParseLocalDateFormat(text, pattern string) (LocalDate, error) {
	t, err := ftime.Parse(pattern, text)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDateOf(t), nil
}

func (d LocalDate) Year() int              { return d.t.Year() }
func (d LocalDate) Month() time.Month      { return d.t.Month() }
func (d LocalDate) Day() int               { return d.t.Day() }
func (d LocalDate) Time() time.Time        { return d.t }
func (d LocalDate) IsZero() bool           { return d.t.IsZero() }
func (d LocalDate) Equal(o LocalDate) bool { return d.t.Equal(o.t) }

// Plus adds period, time fields are truncated away
func (d LocalDate) Plus(period Period) LocalDate {
	return LocalDateOf(period.AddTo(d.t))
}

func (d LocalDate) String() string {
	return ftime.MustCompile(isoLocalDate).Format(d.t)
}

// Format renders the day with pattern
func (d LocalDate) Format(pattern string) (string, error) {
	return ftime.Format(pattern, d.t)
}

func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *LocalDate) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LocalTime is a time of day without date or zone
type LocalTime struct {
	t time.Time
}

// NewLocalTime returns the given time of day, out of range values wrap
func NewLocalTime(hour, minute, second, nanosecond int) LocalTime {
	return LocalTimeOf(time.Date(1970, time.January, 1, hour, minute, second, nanosecond, time.UTC))
}

// LocalTimeOf returns the time of day of t
func LocalTimeOf(t time.Time) LocalTime {
	return LocalTime{t: time.Date(1970, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// ParseLocalTime parses HH:mm, HH:mm:ss or HH:mm:ss with a fraction of up to nine digits
func ParseLocalTime(text string) (LocalTime, error) {
	var err error
	for _, pattern := range []string{"HH:mm:ss.S", isoLocalTime, "HH:mm"} {
		var t time.Time
		if t, err = ftime.Parse(pattern, text); err == nil {
			return LocalTimeOf(t), nil
		}
	}
	return LocalTime{}, err
}

// ParseLocalTimeFormat parses text with pattern keeping only the time of day
func ParseLocalTimeFormat(text, pattern string) (LocalTime, error) {
	t, err := ftime.Parse(pattern, text)
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTimeOf(t), nil
}

func (t LocalTime) Hour() int              { return t.t.Hour() }
func (t LocalTime) Minute() int            { return t.t.Minute() }
func (t LocalTime) Second() int            { return t.t.Second() }
func (t LocalTime) Nanosecond() int        { return t.t.Nanosecond() }
func (t LocalTime) Time() time.Time        { return t.t }
func (t LocalTime) IsZero() bool           { return t.t.IsZero() }
func (t LocalTime) Equal(o LocalTime) bool { return t.t.Equal(o.t) }

// String renders HH:mm:ss followed by a 3, 6 or 9 digit fraction when present
func (t LocalTime) String() string {
	return ftime.MustCompile(isoLocalTime).Format(t.t) + isoFraction(t.t.Nanosecond())
}

// Format renders the time of day with pattern
func (t LocalTime) Format(pattern string) (string, error) {
	return ftime.Format(pattern, t.t)
}

func (t LocalTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LocalTime) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// LocalDateTime is a date and time of day without zone
type LocalDateTime struct {
	t time.Time
}

// NewLocalDateTime returns the given date time, out of range values are normalized
func NewLocalDateTime(year int, month time.Month, day, hour, minute, second, nanosecond int) LocalDateTime {
	return LocalDateTime{t: time.Date(year, month, day, hour, minute, second, nanosecond, time.UTC)}
}

// LocalDateTimeOf returns the wall clock of t, dropping the location
func LocalDateTimeOf(t time.Time) LocalDateTime {
	return NewLocalDateTime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// ParseLocalDateTime parses yyyy-MM-ddTHH:mm[:ss[.fraction]], a space may replace T
func ParseLocalDateTime(text string) (LocalDateTime, error) {
	if len(text) > 10 && text[10] == ' ' {
		text = text[:10] + "T" + text[11:]
	}
	var err error
	for _, pattern := range []string{isoLocalDateTime + ".S", isoLocalDateTime, "yyyy-MM-dd'T'HH:mm"} {
		var t time.Time
		if t, err = ftime.Parse(pattern, text); err == nil {
			return LocalDateTime{t: t}, nil
		}
	}
	return LocalDateTime{}, err
}

// ParseLocalDateTimeFormat parses text with pattern
func ParseLocalDateTimeFormat(text, pattern string) (LocalDateTime, error) {
	t, err := ftime.Parse(pattern, text)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{t: t}, nil
}

func (dt LocalDateTime) Date() LocalDate            { return LocalDateOf(dt.t) }
func (dt LocalDateTime) Clock() LocalTime           { return LocalTimeOf(dt.t) }
func (dt LocalDateTime) Time() time.Time            { return dt.t }
func (dt LocalDateTime) IsZero() bool               { return dt.t.IsZero() }
func (dt LocalDateTime) Equal(o LocalDateTime) bool { return dt.t.Equal(o.t) }
func (dt LocalDateTime) Plus(period Period) LocalDateTime {
	return LocalDateTime{t: period.AddTo(dt.t)}
}

// String renders yyyy-MM-ddTHH:mm:ss followed by a 3, 6 or 9 digit fraction when present
func (dt LocalDateTime) String() string {
	return ftime.MustCompile(isoLocalDateTime).Format(dt.t) + isoFraction(dt.t.Nanosecond())
}

// Format renders the date time with pattern
func (dt LocalDateTime) Format(pattern string) (string, error) {
	return ftime.Format(pattern, dt.t)
}

func (dt LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

func (dt *LocalDateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalDateTime(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// Instant is a point on the UTC time line
type Instant struct {
	t time.Time
}

// InstantOf returns t as an instant
func InstantOf(t time.Time) Instant {
	return Instant{t: t.UTC()}
}

// InstantOfEpochMilli returns the instant millis after the epoch
func InstantOfEpochMilli(millis int64) Instant {
	return InstantOf(time.UnixMilli(millis))
}

// ParseInstant parses an RFC 3339 time with any offset
func ParseInstant(text string) (Instant, error) {
	t, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return Instant{}, fmt.Errorf("%w: %q", ErrUnparseableDate, text)
	}
	return InstantOf(t), nil
}

func (i Instant) Time() time.Time      { return i.t }
func (i Instant) IsZero() bool         { return i.t.IsZero() }
func (i Instant) Equal(o Instant) bool { return i.t.Equal(o.t) }
func (i Instant) EpochMilli() int64    { return i.t.UnixMilli() }

// String renders UTC RFC 3339 with a 3, 6 or 9 digit fraction when present, e.g. 2017-07-06T04:37:30Z
func (i Instant) String() string {
	return i.t.Format(isoSecondLayout) + isoFraction(i.t.Nanosecond()) + "Z"
}

// Format renders the instant in UTC with pattern
func (i Instant) Format(pattern string) (string, error) {
	return ftime.Format(pattern, i.t)
}

func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Instant) UnmarshalText(text []byte) error {
	parsed, err := ParseInstant(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// ZonedDateTime is a date time with its offset and optionally a named zone
type ZonedDateTime struct {
	t time.Time
}

// ZonedDateTimeOf returns t keeping its location
func ZonedDateTimeOf(t time.Time) ZonedDateTime {
	return ZonedDateTime{t: t}
}

// ParseZonedDateTime parses RFC 3339 optionally followed by a bracketed zone id,
// e.g. 2016-06-05T21:37:30.855-07:00[America/Los_Angeles]
func ParseZonedDateTime(text string) (ZonedDateTime, error) {
	value, zone := text, ""
	if strings.HasSuffix(text, "]") {
		if index := strings.LastIndexByte(text, '['); index != -1 {
			value, zone = text[:index], text[index+1:len(text)-1]
		}
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return ZonedDateTime{}, fmt.Errorf("%w: %q", ErrUnparseableDate, text)
	}
	if zone != "" {
		location, err := time.LoadLocation(zone)
		if err != nil {
			return ZonedDateTime{}, fmt.Errorf("unknown zone %q: %w", zone, err)
		}
		t = t.In(location)
	}
	return ZonedDateTime{t: t}, nil
}

func (z ZonedDateTime) Time() time.Time            { return z.t }
func (z ZonedDateTime) IsZero() bool               { return z.t.IsZero() }
func (z ZonedDateTime) Equal(o ZonedDateTime) bool { return z.t.Equal(o.t) }
func (z ZonedDateTime) Instant() Instant           { return InstantOf(z.t) }
func (z ZonedDateTime) Location() *time.Location   { return z.t.Location() }

// String renders RFC 3339 with a 3, 6 or 9 digit fraction when present,
// named zones are appended in brackets
func (z ZonedDateTime) String() string {
	text := z.t.Format(isoSecondLayout) + isoFraction(z.t.Nanosecond()) + z.t.Format("Z07:00")
	if name := z.t.Location().String(); strings.Contains(name, "/") {
		text += "[" + name + "]"
	}
	return text
}

// Format renders the wall clock of the zoned date time with pattern
func (z ZonedDateTime) Format(pattern string) (string, error) {
	return ftime.Format(pattern, z.t)
}

func (z ZonedDateTime) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *ZonedDateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseZonedDateTime(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

func isoFraction(nanos int) string {
	switch {
	case nanos == 0:
		return ""
	case nanos%int(time.Millisecond) == 0:
		return "." + pad(nanos/int(time.Millisecond), 3)
	case nanos%int(time.Microsecond) == 0:
		return "." + pad(nanos/int(time.Microsecond), 6)
	}
	return "." + pad(nanos, 9)
}

func pad(value, width int) string {
	text := strconv.Itoa(value)
	if len(text) >= width {
		return text
	}
	return strings.Repeat("0", width-len(text)) + text
}
