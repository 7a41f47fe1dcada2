package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_AddTo(t *testing.T) {
	var testCases = []struct {
		description string
		start       time.Time
		period      Period
		expect      time.Time
	}{
		{
			description: "month end clamp",
			start:       time.Date(2016, 1, 31, 0, 0, 0, 0, time.UTC),
			period:      Months(1),
			expect:      time.Date(2016, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "negative months across year",
			start:       time.Date(2016, 1, 15, 0, 0, 0, 0, time.UTC),
			period:      Months(-13),
			expect:      time.Date(2014, 12, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "years then days",
			start:       time.Date(2016, 2, 29, 0, 0, 0, 0, time.UTC),
			period:      Period{Years: 1, Days: 1},
			expect:      time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "time fields",
			start:       time.Date(2016, 2, 29, 23, 59, 59, 0, time.UTC),
			period:      Period{Hours: 1, Minutes: 1, Seconds: 1, Millis: 5},
			expect:      time.Date(2016, 3, 1, 1, 1, 0, 5000000, time.UTC),
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.period.AddTo(testCase.start), testCase.description)
	}
}

func TestPeriod_String(t *testing.T) {
	var testCases = []struct {
		description string
		period      Period
		expect      string
	}{
		{description: "zero", period: Period{}, expect: "PT0S"},
		{description: "month", period: Months(1), expect: "P1M"},
		{description: "negative days", period: Days(1).MultipliedBy(-1), expect: "P-1D"},
		{description: "mixed", period: Period{Years: 1, Months: 2, Weeks: 3, Days: 4, Hours: 5, Minutes: 6, Seconds: 7, Millis: 8}, expect: "P1Y2M3W4DT5H6M7.008S"},
		{description: "millis only", period: Millis(250), expect: "PT0.250S"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.period.String(), testCase.description)
	}
}

func TestParseUnit(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      Period
		hasError    bool
	}{
		{description: "plural", input: "months", expect: Months(1)},
		{description: "short", input: "d", expect: Days(1)},
		{description: "upper case", input: "YEAR", expect: Years(1)},
		{description: "millis", input: "ms", expect: Millis(1)},
		{description: "minutes", input: "min", expect: Minutes(1)},
		{description: "unknown", input: "fortnight", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseUnit(testCase.input)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
