package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/viant/dsutil/collection"
	ftime "github.com/viant/dsutil/format/time"
)

var (
	// ErrUnparseableDate is returned when a date parses but resolves to no meaningful day
	ErrUnparseableDate = errors.New("unparseable date")
	// ErrNoFormats is returned when no candidate input format was supplied
	ErrNoFormats = errors.New("no input formats")
	// ErrUnsupportedGranularity is returned for unknown TimeGranularity values
	ErrUnsupportedGranularity = errors.New("unsupported time granularity")
)

// ConvertDate parses date with inFormat and renders it with outFormat.
// A single digit year is zero padded first: the part before the first '-' for Y-M-D layouts,
// the single character after the last '/' for M/D/Y layouts, or the whole value.
func ConvertDate(date, inFormat, outFormat string) (string, error) {
	in, err := ftime.Compile(inFormat)
	if err != nil {
		return "", err
	}
	out, err := ftime.Compile(outFormat)
	if err != nil {
		return "", err
	}
	parsed, err := in.Parse(padOneDigitYear(date))
	if err != nil {
		return "", err
	}
	return out.Format(parsed), nil
}

// ConvertDateAny tries inFormats in order and returns the first conversion that succeeds,
// or the last error when none does.
func ConvertDateAny(date string, inFormats []string, outFormat string) (string, error) {
	err := fmt.Errorf("%w: %q", ErrNoFormats, date)
	for _, inFormat := range inFormats {
		var converted string
		if converted, err = ConvertDate(date, inFormat, outFormat); err == nil {
			return converted, nil
		}
	}
	return "", err
}

// ConvertDateMapped tries each input pattern of formats in iteration order, rendering with the mapped output pattern.
// A conversion resolving to year one is rejected as unparseable.
func ConvertDateMapped(date string, formats collection.Map[string, string]) (string, error) {
	err := fmt.Errorf("%w: %q", ErrNoFormats, date)
	if formats == nil {
		return "", err
	}
	for inFormat, outFormat := range formats.All() {
		var converted string
		if converted, err = ConvertDate(date, inFormat, outFormat); err != nil {
			continue
		}
		if converted == invalidDate {
			err = fmt.Errorf("%w: %q", ErrUnparseableDate, date)
			continue
		}
		return converted, nil
	}
	return "", err
}

// AddTime adds period scaled by amount to a yyyy-MM-dd date
func AddTime(date string, period Period, amount int) (string, error) {
	return AddTimeFormat(date, StandardDateFormat, period, amount)
}

// AddTimeFormat parses date with format, adds period scaled by amount and renders with the same format.
// A negative amount subtracts.
func AddTimeFormat(date, format string, period Period, amount int) (string, error) {
	pattern, err := ftime.Compile(format)
	if err != nil {
		return "", err
	}
	parsed, err := pattern.Parse(date)
	if err != nil {
		return "", err
	}
	return pattern.Format(period.MultipliedBy(amount).AddTo(parsed)), nil
}

// ValidateDate checks that date is a valid yyyy-MM-dd date
func ValidateDate(date string) error {
	return ValidateDateFormat(date, StandardDateFormat)
}

// ValidateDateFormat checks that date parses with format
func ValidateDateFormat(date, format string) error {
	_, err := ftime.Parse(format, date)
	return err
}

// ParseDate parses date with format into a UTC time
func ParseDate(date, format string) (time.Time, error) {
	return ftime.Parse(format, date)
}

func padOneDigitYear(date string) string {
	if index := strings.IndexByte(date, '-'); index != -1 {
		date = padYear(date[:index]) + date[index:]
	}
	if !strings.Contains(date, "/") {
		return padYear(date)
	}
	yearIndex := strings.LastIndexByte(date, '/') + 1
	if yearIndex >= len(date) {
		return date
	}
	if yearIndex+1 == len(date) || !isDigit(date[yearIndex+1]) {
		return date[:yearIndex] + padYear(date[yearIndex:yearIndex+1]) + date[yearIndex+1:]
	}
	return date
}

func padYear(year string) string {
	if len(year) == 1 && isDigit(year[0]) {
		return "0" + year
	}
	return year
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
