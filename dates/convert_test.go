package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/dsutil/collection"
	ftime "github.com/viant/dsutil/format/time"
)

var testFormats = collection.Must(collection.AsUnmodifiableMap(collection.NewOrderedMap[string, string],
	collection.NewEntry("yy-MM-dd HH:mm:ss", StandardDateTimeFormat),
	collection.NewEntry("MM/dd/yy HH:mm:ss", StandardDateTimeFormat),
	collection.NewEntry("yy-MM-dd", StandardDateFormat),
	collection.NewEntry("MM/dd/yy", StandardDateFormat),
))

func TestConvertDate(t *testing.T) {
	var testCases = []struct {
		description string
		date        string
		inFormat    string
		outFormat   string
		expect      string
		hasError    bool
	}{
		{
			description: "single digit year padding",
			date:        "1-2-3",
			inFormat:    "yy-MM-dd",
			outFormat:   USDateFormat,
			expect:      "02/03/2001",
		},
		{
			description: "standard to us",
			date:        "2016-03-31",
			inFormat:    StandardDateFormat,
			outFormat:   USDateFormat,
			expect:      "03/31/2016",
		},
		{
			description: "single digit year last",
			date:        "3/4/7",
			inFormat:    "MM/dd/yy",
			outFormat:   StandardDateFormat,
			expect:      "2007-03-04",
		},
		{
			description: "file date time",
			date:        "2017-03-04 01:03:14",
			inFormat:    StandardDateTimeFormat,
			outFormat:   FileDateTimeFormat,
			expect:      "2017-03-04 01-03-14",
		},
		{
			description: "month and day without year",
			date:        "02/29",
			inFormat:    "MM/dd",
			outFormat:   StandardDateFormat,
			expect:      "2000-02-29",
		},
		{
			description: "unparseable",
			date:        "2016/03/31",
			inFormat:    StandardDateFormat,
			outFormat:   USDateFormat,
			hasError:    true,
		},
		{
			description: "invalid pattern",
			date:        "2016-03-31",
			inFormat:    "yyyy-MM-dd qq",
			outFormat:   USDateFormat,
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := ConvertDate(testCase.date, testCase.inFormat, testCase.outFormat)
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

func TestConvertDateAny(t *testing.T) {
	actual, err := ConvertDateAny("03/04/2017", collection.AsUnmodifiableList("MM/dd/yy", USDateFormat).Slice(), StandardDateFormat)
	require.NoError(t, err)
	assert.Equal(t, "2017-03-04", actual)

	_, err = ConvertDateAny("2017.03.04", []string{StandardDateFormat, USDateFormat}, StandardDateFormat)
	var parseError *ftime.ParseError
	require.ErrorAs(t, err, &parseError)
	assert.Equal(t, USDateFormat, parseError.Pattern)
	assert.Contains(t, err.Error(), "2017.03.04")

	_, err = ConvertDateAny("2017-03-04", nil, StandardDateFormat)
	assert.ErrorIs(t, err, ErrNoFormats)
}

func TestConvertDateMapped(t *testing.T) {
	var testCases = []struct {
		description string
		date        string
		formats     collection.Map[string, string]
		expect      string
		hasError    bool
	}{
		{
			description: "four digit year",
			date:        "03/04/2017",
			formats:     testFormats,
			expect:      "2017-03-04",
		},
		{
			description: "two digit year",
			date:        "03/04/17",
			formats:     testFormats,
			expect:      "2017-03-04",
		},
		{
			description: "date time with four digit year",
			date:        "03/04/2017 1:3:14",
			formats:     testFormats,
			expect:      "2017-03-04 01:03:14",
		},
		{
			description: "date time with two digit year",
			date:        "03/04/17 1:3:14",
			formats:     testFormats,
			expect:      "2017-03-04 01:03:14",
		},
		{
			description: "partial year month",
			date:        "2006-02",
			formats:     PartialToStandardConversions,
			expect:      "2006-02",
		},
		{
			description: "partial hour",
			date:        "06-02-01 13",
			formats:     PartialToStandardConversions,
			expect:      "2006-02-01 13",
		},
		{
			description: "no match",
			date:        "tomorrow",
			formats:     testFormats,
			hasError:    true,
		},
		{
			description: "nil formats",
			date:        "2017-03-04",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := ConvertDateMapped(testCase.date, testCase.formats)
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

func TestConvertDateMappedRejectsYearOne(t *testing.T) {
	formats := collection.Must(collection.AsMap(collection.NewOrderedMap[string, string],
		collection.NewEntry("yyyy-MM-dd", StandardDateFormat)))
	_, err := ConvertDateMapped("1-01-01", formats)
	assert.ErrorIs(t, err, ErrUnparseableDate)
}

func TestAddTime(t *testing.T) {
	var testCases = []struct {
		description string
		date        string
		format      string
		period      Period
		amount      int
		expect      string
	}{
		{
			description: "leap year month clamp",
			date:        "2016-03-31",
			period:      Months(1),
			amount:      -1,
			expect:      "2016-02-29",
		},
		{
			description: "us format",
			date:        "3/31/2016",
			format:      USDateFormat,
			period:      Months(1),
			amount:      -1,
			expect:      "02/29/2016",
		},
		{
			description: "year from leap day",
			date:        "2016-02-29",
			period:      Years(1),
			amount:      1,
			expect:      "2017-02-28",
		},
		{
			description: "weeks",
			date:        "2016-12-28",
			period:      Weeks(1),
			amount:      2,
			expect:      "2017-01-11",
		},
		{
			description: "hours across midnight",
			date:        "2016-12-31 23:30:00",
			format:      StandardDateTimeFormat,
			period:      Hours(1),
			amount:      1,
			expect:      "2017-01-01 00:30:00",
		},
		{
			description: "millis",
			date:        "2016-12-31 23:59:59.999",
			format:      StandardMillisecondFormat,
			period:      Millis(1),
			amount:      1,
			expect:      "2017-01-01 00:00:00.000",
		},
	}

	for _, testCase := range testCases {
		var actual string
		var err error
		if testCase.format == "" {
			actual, err = AddTime(testCase.date, testCase.period, testCase.amount)
		} else {
			actual, err = AddTimeFormat(testCase.date, testCase.format, testCase.period, testCase.amount)
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}

	_, err := AddTime("2016-02-30", Days(1), 1)
	assert.NotNil(t, err)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2016-01-12"))
	assert.Error(t, ValidateDate("2016-13-12"))
	assert.NoError(t, ValidateDateFormat("01/12/2016", USDateFormat))
	assert.Error(t, ValidateDateFormat("2016-13-12", USDateFormat))
	assert.Error(t, ValidateDate("2015-02-29"))
}

func TestPadOneDigitYear(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{description: "year first", input: "1-2-3", expect: "01-2-3"},
		{description: "year last", input: "2/3/1", expect: "2/3/01"},
		{description: "year last followed by time", input: "2/3/1 10:00", expect: "2/3/01 10:00"},
		{description: "two digit year last", input: "2/3/17", expect: "2/3/17"},
		{description: "year only", input: "7", expect: "07"},
		{description: "four digit year", input: "2017-03-04", expect: "2017-03-04"},
		{description: "trailing slash", input: "2/3/", expect: "2/3/"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, padOneDigitYear(testCase.input), testCase.description)
	}
}
