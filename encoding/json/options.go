package json

import (
	"github.com/viant/tagly/format/text"
)

// Default patterns for temporal values
const (
	LocalDatePattern     = "yyyy-MM-dd"
	LocalTimePattern     = "HH:mm:ss"
	LocalDateTimePattern = "yyyy-MM-dd HH:mm:ss"
	DatePattern          = "yyyy-MM-dd"
)

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithIndent indents output by step spaces per level, zero disables indentation
func WithIndent(step int) Option {
	return optionFn(func(o *Options) { o.Indent = step })
}

func WithSortMapKeys(enabled bool) Option {
	return optionFn(func(o *Options) { o.SortMapKeys = enabled })
}

func WithUnknownFieldPolicy(policy UnknownFieldPolicy) Option {
	return optionFn(func(o *Options) { o.UnknownFieldPolicy = policy })
}

func WithEscapeHTML(enabled bool) Option {
	return optionFn(func(o *Options) { o.EscapeHTML = enabled })
}

func WithEscapeNonASCII(enabled bool) Option {
	return optionFn(func(o *Options) { o.EscapeNonASCII = enabled })
}

// WithCaseFormat names fields without a json tag using caseFormat
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return optionFn(func(o *Options) {
		o.CaseFormat = caseFormat
		o.NameTransformer = caseFormatTransformer{caseFormat: caseFormat}
	})
}

func WithNameTransformer(transformer NameTransformer) Option {
	return optionFn(func(o *Options) { o.NameTransformer = transformer })
}

// WithDatePattern sets the pattern used for time.Time values
func WithDatePattern(pattern string) Option {
	return optionFn(func(o *Options) { o.DatePattern = pattern })
}

func WithTagName(name string) Option {
	return optionFn(func(o *Options) { o.TagName = name })
}

func defaultOptions() Options {
	return Options{
		SortMapKeys:        true,
		UnknownFieldPolicy: IgnoreUnknown,
		CaseFormat:         text.CaseFormatUndefined,
		NameTransformer:    defaultNameTransformer{},
		DatePattern:        DatePattern,
	}
}

func resolveOptions(opts []Option) Options {
	result := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	if result.NameTransformer == nil {
		result.NameTransformer = defaultNameTransformer{}
	}
	if result.DatePattern == "" {
		result.DatePattern = DatePattern
	}
	return result
}
