package time

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of compiled patterns kept by Compile
const DefaultCacheSize = 256

var patterns = newCache(DefaultCacheSize)

func newCache(size int) *lru.Cache[string, *Pattern] {
	cache, err := lru.New[string, *Pattern](size)
	if err != nil {
		panic(err)
	}
	return cache
}

// Compile compiles pattern, compiled patterns are cached.
// Supported letters: y (year, yy two digit year), M (month, MMM/MMMM month name), d, H, m, s and S (fraction of second).
// Other letters are rejected, text in single quotes and non letters are literals, a doubled quote is a single quote.
func Compile(pattern string) (*Pattern, error) {
	if compiled, ok := patterns.Get(pattern); ok {
		return compiled, nil
	}
	compiled, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	patterns.Add(pattern, compiled)
	return compiled, nil
}

// MustCompile compiles pattern or panics
func MustCompile(pattern string) *Pattern {
	compiled, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return compiled
}

// Parse parses value with pattern in UTC
func Parse(pattern, value string) (time.Time, error) {
	compiled, err := Compile(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return compiled.Parse(value)
}

// Format formats t with pattern
func Format(pattern string, t time.Time) (string, error) {
	compiled, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	return compiled.Format(t), nil
}
