package json

import (
	"github.com/viant/tagly/format/text"
)

// UnknownFieldPolicy controls unknown key handling.
type UnknownFieldPolicy int

const (
	IgnoreUnknown UnknownFieldPolicy = iota
	ErrorOnUnknown
)

// NameTransformer maps a Go field name to its JSON name.
type NameTransformer interface {
	Transform(path string, fieldName string) string
}

// Option mutates mapper options.
type Option interface{ apply(*Options) }

// Options defines mapper behavior.
type Options struct {
	Indent             int
	SortMapKeys        bool
	UnknownFieldPolicy UnknownFieldPolicy
	EscapeHTML         bool
	EscapeNonASCII     bool
	CaseFormat         text.CaseFormat
	NameTransformer    NameTransformer
	// DatePattern is used for time.Time values
	DatePattern string
	// TagName names the fallback struct tag read after `format` for per field date patterns
	TagName string
}
