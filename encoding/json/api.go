package json

import (
	jsoniter "github.com/json-iterator/go"
)

// Mapper is a configured JSON engine with temporal value support
type Mapper struct {
	api     jsoniter.API
	options Options
}

var (
	defaultMapper = MustNew()
	prettyMapper  = MustNew(WithIndent(2))
)

// New creates a mapper: map keys sorted, unknown fields ignored, temporal values written as text.
// Instant and ZonedDateTime use their ISO form, LocalDate yyyy-MM-dd, LocalTime HH:mm:ss,
// LocalDateTime yyyy-MM-dd HH:mm:ss and time.Time the date pattern.
func New(opts ...Option) (*Mapper, error) {
	options := resolveOptions(opts)
	ext, err := newExtension(&options)
	if err != nil {
		return nil, err
	}
	api := jsoniter.Config{
		IndentionStep:         options.Indent,
		SortMapKeys:           options.SortMapKeys,
		EscapeHTML:            options.EscapeHTML,
		DisallowUnknownFields: options.UnknownFieldPolicy == ErrorOnUnknown,
	}.Froze()
	api.RegisterExtension(ext)
	return &Mapper{api: api, options: options}, nil
}

// MustNew creates a mapper or panics
func MustNew(opts ...Option) *Mapper {
	mapper, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return mapper
}

// Default returns the shared compact mapper
func Default() *Mapper { return defaultMapper }

// Pretty returns the shared indented mapper
func Pretty() *Mapper { return prettyMapper }

// Options returns the resolved mapper options
func (m *Mapper) Options() Options { return m.options }

func (m *Mapper) Marshal(value any) ([]byte, error) {
	data, err := m.api.Marshal(value)
	if err != nil || !m.options.EscapeNonASCII {
		return data, err
	}
	return escapeNonASCII(data), nil
}

func (m *Mapper) Unmarshal(data []byte, dest any) error {
	return m.api.Unmarshal(data, dest)
}

// Stringify returns the JSON text of value
func (m *Mapper) Stringify(value any) (string, error) {
	if !m.options.EscapeNonASCII {
		return m.api.MarshalToString(value)
	}
	data, err := m.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Marshal encodes value with the default mapper, or a mapper built from opts
func Marshal(value any, opts ...Option) ([]byte, error) {
	mapper, err := mapperFor(opts)
	if err != nil {
		return nil, err
	}
	return mapper.Marshal(value)
}

// Unmarshal decodes data into dest with the default mapper, or a mapper built from opts
func Unmarshal(data []byte, dest any, opts ...Option) error {
	mapper, err := mapperFor(opts)
	if err != nil {
		return err
	}
	return mapper.Unmarshal(data, dest)
}

// Stringify returns the compact JSON text of value
func Stringify(value any) (string, error) {
	return defaultMapper.Stringify(value)
}

// PrettyStringify returns the indented JSON text of value
func PrettyStringify(value any) (string, error) {
	return prettyMapper.Stringify(value)
}

func mapperFor(opts []Option) (*Mapper, error) {
	if len(opts) == 0 {
		return defaultMapper, nil
	}
	return New(opts...)
}
