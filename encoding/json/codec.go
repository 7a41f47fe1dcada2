package json

import (
	"reflect"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
	"github.com/viant/dsutil/dates"
	"github.com/viant/dsutil/format"
	ftime "github.com/viant/dsutil/format/time"
)

var (
	instantType       = reflect.TypeOf(dates.Instant{})
	zonedDateTimeType = reflect.TypeOf(dates.ZonedDateTime{})
	localDateType     = reflect.TypeOf(dates.LocalDate{})
	localTimeType     = reflect.TypeOf(dates.LocalTime{})
	localDateTimeType = reflect.TypeOf(dates.LocalDateTime{})
	timeType          = reflect.TypeOf(time.Time{})
)

// textCodec encodes a temporal value as a JSON string, zero values as null
type textCodec struct {
	name   string
	isZero func(ptr unsafe.Pointer) bool
	format func(ptr unsafe.Pointer) (string, error)
	parse  func(ptr unsafe.Pointer, text string) error
}

func (c *textCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return c.isZero(ptr)
}

func (c *textCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	if c.isZero(ptr) {
		stream.WriteNil()
		return
	}
	text, err := c.format(ptr)
	if err != nil {
		stream.WriteNil()
		if stream.Error == nil {
			stream.Error = err
		}
		return
	}
	stream.WriteString(text)
}

func (c *textCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		if err := c.parse(ptr, ""); err != nil {
			iter.ReportError("decode "+c.name, err.Error())
		}
		return
	}
	text := iter.ReadString()
	if iter.Error != nil {
		return
	}
	if err := c.parse(ptr, text); err != nil {
		iter.ReportError("decode "+c.name, err.Error())
	}
}

// newCodec returns a codec for a supported temporal type, pattern overrides the default text form where the type has one
func newCodec(typ reflect.Type, pattern string, datePattern string) (*textCodec, error) {
	switch typ {
	case instantType:
		return instantCodec(), nil
	case zonedDateTimeType:
		return zonedDateTimeCodec(), nil
	case localDateType:
		return localDateCodec(orDefault(pattern, LocalDatePattern))
	case localTimeType:
		return localTimeCodec(orDefault(pattern, LocalTimePattern))
	case localDateTimeType:
		return localDateTimeCodec(orDefault(pattern, LocalDateTimePattern))
	case timeType:
		return timeCodec(orDefault(pattern, datePattern))
	}
	return nil, nil
}

func orDefault(pattern, defaultPattern string) string {
	if pattern == "" {
		return defaultPattern
	}
	return pattern
}

func instantCodec() *textCodec {
	return &textCodec{
		name:   "Instant",
		isZero: func(ptr unsafe.Pointer) bool { return (*dates.Instant)(ptr).IsZero() },
		format: func(ptr unsafe.Pointer) (string, error) { return (*dates.Instant)(ptr).String(), nil },
		parse: func(ptr unsafe.Pointer, text string) error {
			if text == "" {
				*(*dates.Instant)(ptr) = dates.Instant{}
				return nil
			}
			value, err := dates.ParseInstant(text)
			if err == nil {
				*(*dates.Instant)(ptr) = value
			}
			return err
		},
	}
}

func zonedDateTimeCodec() *textCodec {
	return &textCodec{
		name:   "ZonedDateTime",
		isZero: func(ptr unsafe.Pointer) bool { return (*dates.ZonedDateTime)(ptr).IsZero() },
		format: func(ptr unsafe.Pointer) (string, error) { return (*dates.ZonedDateTime)(ptr).String(), nil },
		parse: func(ptr unsafe.Pointer, text string) error {
			if text == "" {
				*(*dates.ZonedDateTime)(ptr) = dates.ZonedDateTime{}
				return nil
			}
			value, err := dates.ParseZonedDateTime(text)
			if err == nil {
				*(*dates.ZonedDateTime)(ptr) = value
			}
			return err
		},
	}
}

func localDateCodec(pattern string) (*textCodec, error) {
	compiled, err := ftime.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &textCodec{
		name:   "LocalDate",
		isZero: func(ptr unsafe.Pointer) bool { return (*dates.LocalDate)(ptr).IsZero() },
		format: func(ptr unsafe.Pointer) (string, error) { return compiled.Format((*dates.LocalDate)(ptr).Time()), nil },
		parse: func(ptr unsafe.Pointer, text string) error {
			if text == "" {
				*(*dates.LocalDate)(ptr) = dates.LocalDate{}
				return nil
			}
			t, err := compiled.Parse(text)
			if err == nil {
				*(*dates.LocalDate)(ptr) = dates.LocalDateOf(t)
			}
			return err
		},
	}, nil
}

func localTimeCodec(pattern string) (*textCodec, error) {
	compiled, err := ftime.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &textCodec{
		name:   "LocalTime",
		isZero: func(ptr unsafe.Pointer) bool { return (*dates.LocalTime)(ptr).IsZero() },
		format: func(ptr unsafe.Pointer) (string, error) { return compiled.Format((*dates.LocalTime)(ptr).Time()), nil },
		parse: func(ptr unsafe.Pointer, text string) error {
			if text == "" {
				*(*dates.LocalTime)(ptr) = dates.LocalTime{}
				return nil
			}
			t, err := compiled.Parse(text)
			if err == nil {
				*(*dates.LocalTime)(ptr) = dates.LocalTimeOf(t)
			}
			return err
		},
	}, nil
}

func localDateTimeCodec(pattern string) (*textCodec, error) {
	compiled, err := ftime.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &textCodec{
		name:   "LocalDateTime",
		isZero: func(ptr unsafe.Pointer) bool { return (*dates.LocalDateTime)(ptr).IsZero() },
		format: func(ptr unsafe.Pointer) (string, error) {
			return compiled.Format((*dates.LocalDateTime)(ptr).Time()), nil
		},
		parse: func(ptr unsafe.Pointer, text string) error {
			if text == "" {
				*(*dates.LocalDateTime)(ptr) = dates.LocalDateTime{}
				return nil
			}
			t, err := compiled.Parse(text)
			if err == nil {
				*(*dates.LocalDateTime)(ptr) = dates.LocalDateTimeOf(t)
			}
			return err
		},
	}, nil
}

// timeCodec formats with pattern, decoding also accepts RFC 3339
func timeCodec(pattern string) (*textCodec, error) {
	compiled, err := ftime.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &textCodec{
		name:   "time.Time",
		isZero: func(ptr unsafe.Pointer) bool { return (*time.Time)(ptr).IsZero() },
		format: func(ptr unsafe.Pointer) (string, error) { return compiled.Format(*(*time.Time)(ptr)), nil },
		parse: func(ptr unsafe.Pointer, text string) error {
			if text == "" {
				*(*time.Time)(ptr) = time.Time{}
				return nil
			}
			t, err := compiled.Parse(text)
			if err != nil {
				var rfcErr error
				if t, rfcErr = time.Parse(time.RFC3339Nano, text); rfcErr != nil {
					return err
				}
			}
			*(*time.Time)(ptr) = t
			return nil
		},
	}, nil
}

// tagTimeCodec formats time.Time with the dateFormat of a format tag, decoding also accepts RFC 3339
func tagTimeCodec(tag *format.Tag) (*textCodec, error) {
	if _, err := ftime.Compile(tag.DateFormat); err != nil {
		return nil, err
	}
	return &textCodec{
		name:   "time.Time",
		isZero: func(ptr unsafe.Pointer) bool { return (*time.Time)(ptr).IsZero() },
		format: func(ptr unsafe.Pointer) (string, error) { return tag.FormatTime(*(*time.Time)(ptr)) },
		parse: func(ptr unsafe.Pointer, text string) error {
			if text == "" {
				*(*time.Time)(ptr) = time.Time{}
				return nil
			}
			t, err := tag.ParseTime(text)
			if err != nil {
				var rfcErr error
				if t, rfcErr = time.Parse(time.RFC3339Nano, text); rfcErr != nil {
					return err
				}
			}
			*(*time.Time)(ptr) = t
			return nil
		},
	}, nil
}

// pointerCodec handles *T fields whose element codec was chosen per field
type pointerCodec struct {
	elemType reflect2.Type
	elem     *textCodec
}

func (c *pointerCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*unsafe.Pointer)(ptr) == nil
}

func (c *pointerCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	elemPtr := *(*unsafe.Pointer)(ptr)
	if elemPtr == nil {
		stream.WriteNil()
		return
	}
	c.elem.Encode(elemPtr, stream)
}

func (c *pointerCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		*(*unsafe.Pointer)(ptr) = nil
		return
	}
	elemPtr := *(*unsafe.Pointer)(ptr)
	if elemPtr == nil {
		elemPtr = c.elemType.UnsafeNew()
		*(*unsafe.Pointer)(ptr) = elemPtr
	}
	c.elem.Decode(elemPtr, iter)
}
