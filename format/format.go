package format

import (
	"time"

	ftime "github.com/viant/dsutil/format/time"
	"github.com/viant/tagly/format/text"
)

// FormatName returns Name converted to CaseFormat, Name is returned as is when no case format is set
func (t *Tag) FormatName() string {
	if t.CaseFormat == "-" || t.CaseFormat == "" || t.Name == "" {
		return t.Name
	}
	src := text.DetectCaseFormat(t.Name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(t.Name, text.CaseFormat(t.CaseFormat))
}

// FormatTime renders ts with DateFormat or RFC 3339 when no date format is set
func (t *Tag) FormatTime(ts time.Time) (string, error) {
	if t.DateFormat == "" {
		return ts.Format(time.RFC3339), nil
	}
	return ftime.Format(t.DateFormat, ts)
}

// ParseTime parses value with DateFormat or RFC 3339 when no date format is set
func (t *Tag) ParseTime(value string) (time.Time, error) {
	if t.DateFormat == "" {
		return time.Parse(time.RFC3339, value)
	}
	return ftime.Parse(t.DateFormat, value)
}
