package dates

import "github.com/viant/dsutil/collection"

// Common patterns
const (
	StandardDateFormat        = "yyyy-MM-dd"
	FileDateTimeFormat        = "yyyy-MM-dd HH-mm-ss"
	StandardDateTimeFormat    = "yyyy-MM-dd HH:mm:ss"
	USDateFormat              = "MM/dd/yyyy"
	StandardMillisecondFormat = "yyyy-MM-dd HH:mm:ss.SSS"
	LocalTimeFormat           = "HH:mm:ss"

	// invalidDate is what a one or two digit year 1 renders as; it is never a meaningful input
	invalidDate = "0001-01-01"
)

// PartialToStandardConversions maps partial input patterns to their standard output pattern.
// Order matters, the first pattern that parses wins.
var PartialToStandardConversions = collection.Must(collection.AsUnmodifiableMap(collection.NewOrderedMap[string, string],
	collection.NewEntry("yy-MM-dd HH:mm:ss", StandardDateTimeFormat),
	collection.NewEntry("MM/dd/yy HH:mm:ss", StandardDateTimeFormat),

	collection.NewEntry("yy-MM-dd HH:mm", "yyyy-MM-dd HH:mm"),
	collection.NewEntry("MM/dd/yy HH:mm", "yyyy-MM-dd HH:mm"),

	collection.NewEntry("yy-MM-dd HH", "yyyy-MM-dd HH"),
	collection.NewEntry("MM/dd/yy HH", "yyyy-MM-dd HH"),

	collection.NewEntry("yy-MM-dd", StandardDateFormat),
	collection.NewEntry("MM/dd/yy", StandardDateFormat),

	collection.NewEntry("yy-MM", "yyyy-MM"),
	collection.NewEntry("MM/yy", "yyyy-MM"),

	collection.NewEntry("yy", "yyyy"),
	collection.NewEntry("yyyy", "yyyy"),
))
