package dates

import (
	"fmt"
)

type partial struct {
	period    Period
	inFormat  string
	outFormat string
}

// partialDays is tried finest first, the first input pattern that parses wins
var partialDays = []partial{
	{period: Days(1), inFormat: StandardDateFormat, outFormat: StandardDateFormat},
	{period: Months(1), inFormat: "yyyy-MM", outFormat: "yyyy-MM-01"},
	{period: Years(1), inFormat: "yyyy", outFormat: "yyyy-01-01"},
}

// InterpretPartialDate resolves a full or partial yyyy-MM-dd date to a day.
// Lower returns the first day implied by date, UpperExcluded the first day after the implied range
// and Upper the last day within it. An empty date is returned as is.
func InterpretPartialDate(date string, granularity TimeGranularity, boundary TimeBoundary) (string, error) {
	if date == "" {
		return "", nil
	}
	var partials []partial
	var outFormat string
	var step Period
	switch granularity {
	case Day:
		partials = partialDays
		outFormat = StandardDateFormat
		step = Days(1)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedGranularity, granularity)
	}

	var err error
	for _, candidate := range partials {
		var lower string
		if lower, err = ConvertDate(date, candidate.inFormat, candidate.outFormat); err != nil {
			continue
		}
		if lower == invalidDate {
			return "", fmt.Errorf("%w: %q", ErrUnparseableDate, date)
		}
		if boundary == Lower {
			return lower, nil
		}
		upperExcluded, err := AddTimeFormat(lower, outFormat, candidate.period, 1)
		if err != nil {
			return "", err
		}
		if boundary == UpperExcluded {
			return upperExcluded, nil
		}
		return AddTimeFormat(upperExcluded, outFormat, step, -1)
	}
	return "", err
}
