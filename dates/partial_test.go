package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretPartialDate(t *testing.T) {
	var testCases = []struct {
		description string
		date        string
		boundary    TimeBoundary
		expect      string
	}{
		{description: "day lower", date: "2006-02-01", boundary: Lower, expect: "2006-02-01"},
		{description: "day upper", date: "2006-02-01", boundary: Upper, expect: "2006-02-01"},
		{description: "day upper excluded", date: "2006-02-01", boundary: UpperExcluded, expect: "2006-02-02"},
		{description: "month lower", date: "2006-02", boundary: Lower, expect: "2006-02-01"},
		{description: "month upper", date: "2006-02", boundary: Upper, expect: "2006-02-28"},
		{description: "month upper excluded", date: "2006-02", boundary: UpperExcluded, expect: "2006-03-01"},
		{description: "leap month upper", date: "2008-02", boundary: Upper, expect: "2008-02-29"},
		{description: "year lower", date: "2006", boundary: Lower, expect: "2006-01-01"},
		{description: "year upper", date: "2006", boundary: Upper, expect: "2006-12-31"},
		{description: "year upper excluded", date: "2006", boundary: UpperExcluded, expect: "2007-01-01"},
		{description: "december upper excluded", date: "2006-12", boundary: UpperExcluded, expect: "2007-01-01"},
		{description: "empty", date: "", boundary: Upper, expect: ""},
	}

	for _, testCase := range testCases {
		actual, err := InterpretPartialDate(testCase.date, Day, testCase.boundary)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestInterpretPartialDateErrors(t *testing.T) {
	_, err := InterpretPartialDate("2006/02", Day, Lower)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "2006/02")
	}

	_, err = InterpretPartialDate("1", Day, Upper)
	assert.ErrorIs(t, err, ErrUnparseableDate)

	_, err = InterpretPartialDate("2006", TimeGranularity(7), Lower)
	assert.ErrorIs(t, err, ErrUnsupportedGranularity)

	_, err = InterpretPartialDate("2006-13", Day, Lower)
	assert.Error(t, err)
}

func TestParseTimeBoundary(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      TimeBoundary
		hasError    bool
	}{
		{description: "lower", input: "LOWER", expect: Lower},
		{description: "lower case", input: "upper", expect: Upper},
		{description: "dash", input: "upper-excluded", expect: UpperExcluded},
		{description: "unknown", input: "middle", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseTimeBoundary(testCase.input)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
	assert.Equal(t, "UPPER_EXCLUDED", UpperExcluded.String())
	assert.Equal(t, "TimeBoundary(9)", TimeBoundary(9).String())

	var boundary TimeBoundary
	assert.NoError(t, boundary.UnmarshalText([]byte("upper")))
	assert.Equal(t, Upper, boundary)
}

func TestParseTimeGranularity(t *testing.T) {
	granularity, err := ParseTimeGranularity("day")
	assert.NoError(t, err)
	assert.Equal(t, Day, granularity)
	assert.Equal(t, "DAY", granularity.String())

	_, err = ParseTimeGranularity("month")
	assert.ErrorIs(t, err, ErrUnsupportedGranularity)
}
