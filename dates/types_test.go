package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDate(t *testing.T) {
	date, err := ParseLocalDate("2016-02-03")
	require.NoError(t, err)
	assert.Equal(t, NewLocalDate(2016, time.February, 3), date)
	assert.Equal(t, "2016-02-03", date.String())
	assert.False(t, date.IsZero())
	assert.True(t, LocalDate{}.IsZero())

	formatted, err := date.Format(USDateFormat)
	require.NoError(t, err)
	assert.Equal(t, "02/03/2016", formatted)

	assert.Equal(t, "2016-02-29", NewLocalDate(2016, time.March, 31).Plus(Months(-1)).String())

	var decoded LocalDate
	require.NoError(t, decoded.UnmarshalText([]byte("2016-02-03")))
	assert.True(t, decoded.Equal(date))
	assert.Error(t, decoded.UnmarshalText([]byte("2016-02-30")))
}

func TestLocalTime(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      LocalTime
		text        string
	}{
		{description: "seconds", input: "13:04:55", expect: NewLocalTime(13, 4, 55, 0), text: "13:04:55"},
		{description: "minutes", input: "13:04", expect: NewLocalTime(13, 4, 0, 0), text: "13:04:00"},
		{description: "millis", input: "13:04:55.5", expect: NewLocalTime(13, 4, 55, 500000000), text: "13:04:55.500"},
		{description: "nanos", input: "13:04:55.000000001", expect: NewLocalTime(13, 4, 55, 1), text: "13:04:55.000000001"},
	}
	for _, testCase := range testCases {
		actual, err := ParseLocalTime(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, testCase.text, actual.String(), testCase.description)
	}
	_, err := ParseLocalTime("24:00:00")
	assert.Error(t, err)
}

func TestLocalDateTime(t *testing.T) {
	expect := NewLocalDateTime(2016, time.February, 3, 13, 4, 55, 0)
	for _, input := range []string{"2016-02-03T13:04:55", "2016-02-03 13:04:55"} {
		actual, err := ParseLocalDateTime(input)
		require.NoError(t, err, input)
		assert.True(t, expect.Equal(actual), input)
	}
	assert.Equal(t, "2016-02-03T13:04:55", expect.String())
	formatted, err := expect.Format(StandardDateTimeFormat)
	require.NoError(t, err)
	assert.Equal(t, "2016-02-03 13:04:55", formatted)
	assert.Equal(t, NewLocalDate(2016, time.February, 3), expect.Date())
	assert.Equal(t, NewLocalTime(13, 4, 55, 0), expect.Clock())
}

func TestInstant(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{description: "utc", input: "2017-07-06T04:37:30Z", expect: "2017-07-06T04:37:30Z"},
		{description: "offset normalized", input: "2017-07-05T21:37:30-07:00", expect: "2017-07-06T04:37:30Z"},
		{description: "millis", input: "2017-07-06T04:37:30.120Z", expect: "2017-07-06T04:37:30.120Z"},
		{description: "micros", input: "2017-07-06T04:37:30.000120Z", expect: "2017-07-06T04:37:30.000120Z"},
	}
	for _, testCase := range testCases {
		actual, err := ParseInstant(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual.String(), testCase.description)
	}
	_, err := ParseInstant("2017-07-06")
	assert.ErrorIs(t, err, ErrUnparseableDate)
	assert.Equal(t, "1970-01-01T00:00:01Z", InstantOfEpochMilli(1000).String())
}

func TestZonedDateTime(t *testing.T) {
	zoned, err := ParseZonedDateTime("2016-06-05T21:37:30.855-07:00")
	require.NoError(t, err)
	assert.Equal(t, "2016-06-05T21:37:30.855-07:00", zoned.String())
	assert.Equal(t, "2016-06-06T04:37:30.855Z", zoned.Instant().String())

	utc, err := ParseZonedDateTime("2016-06-06T04:37:30.855Z")
	require.NoError(t, err)
	assert.True(t, zoned.Equal(utc))
	assert.Equal(t, "2016-06-06T04:37:30.855Z", utc.String())

	_, err = ParseZonedDateTime("2016-06-05T21:37:30-07:00[Nowhere/Atlantis]")
	assert.Error(t, err)
}
