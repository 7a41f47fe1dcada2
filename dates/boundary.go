package dates

import (
	"fmt"
	"strings"
)

// TimeBoundary selects which end of the range implied by a partial date is returned
type TimeBoundary int

const (
	// Lower is the first day of the range
	Lower TimeBoundary = iota
	// Upper is the last day of the range
	Upper
	// UpperExcluded is the first day after the range
	UpperExcluded
)

var boundaryNames = []string{"LOWER", "UPPER", "UPPER_EXCLUDED"}

func (b TimeBoundary) String() string {
	if b < 0 || int(b) >= len(boundaryNames) {
		return fmt.Sprintf("TimeBoundary(%d)", int(b))
	}
	return boundaryNames[b]
}

// ParseTimeBoundary parses LOWER, UPPER or UPPER_EXCLUDED in any case, '-' may replace '_'
func ParseTimeBoundary(name string) (TimeBoundary, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i, candidate := range boundaryNames {
		if candidate == normalized {
			return TimeBoundary(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported time boundary: %q", name)
}

func (b TimeBoundary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *TimeBoundary) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// TimeGranularity is the finest calendar unit a partial date is resolved to
type TimeGranularity int

const (
	// Day resolves partial dates to a yyyy-MM-dd day
	Day TimeGranularity = iota
)

func (g TimeGranularity) String() string {
	if g == Day {
		return "DAY"
	}
	return fmt.Sprintf("TimeGranularity(%d)", int(g))
}

// ParseTimeGranularity parses DAY in any case
func ParseTimeGranularity(name string) (TimeGranularity, error) {
	if strings.EqualFold(strings.TrimSpace(name), "DAY") {
		return Day, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedGranularity, name)
}

func (g TimeGranularity) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *TimeGranularity) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeGranularity(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
