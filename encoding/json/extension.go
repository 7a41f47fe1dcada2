package json

import (
	"reflect"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
	"github.com/viant/dsutil/format"
	"github.com/viant/tagly/format/text"
)

// extension plugs temporal codecs, format tags and field naming into a frozen jsoniter config
type extension struct {
	jsoniter.DummyExtension
	options *Options
	codecs  map[reflect.Type]*textCodec
}

func newExtension(options *Options) (*extension, error) {
	ret := &extension{options: options, codecs: map[reflect.Type]*textCodec{}}
	for _, typ := range []reflect.Type{instantType, zonedDateTimeType, localDateType, localTimeType, localDateTimeType, timeType} {
		codec, err := newCodec(typ, "", options.DatePattern)
		if err != nil {
			return nil, err
		}
		ret.codecs[typ] = codec
	}
	return ret, nil
}

func (e *extension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if codec, ok := e.codecs[typ.Type1()]; ok {
		return codec
	}
	if pointer := e.pointerCodec(typ); pointer != nil {
		return pointer
	}
	return nil
}

func (e *extension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if codec, ok := e.codecs[typ.Type1()]; ok {
		return codec
	}
	if pointer := e.pointerCodec(typ); pointer != nil {
		return pointer
	}
	return nil
}

// pointerCodec keeps *T on the T codec, otherwise the text marshaler of T would take over
func (e *extension) pointerCodec(typ reflect2.Type) *pointerCodec {
	if typ.Kind() != reflect.Ptr {
		return nil
	}
	ptrType, ok := typ.(reflect2.PtrType)
	if !ok {
		return nil
	}
	codec, ok := e.codecs[ptrType.Elem().Type1()]
	if !ok {
		return nil
	}
	return &pointerCodec{elemType: ptrType.Elem(), elem: codec}
}

func (e *extension) UpdateStructDescriptor(descriptor *jsoniter.StructDescriptor) {
	var names []string
	if e.options.TagName != "" {
		names = append(names, e.options.TagName)
	}
	for _, binding := range descriptor.Fields {
		field := binding.Field
		tag, err := format.Parse(field.Tag(), names...)
		if err != nil {
			failing := &errorCodec{err: err}
			binding.Encoder, binding.Decoder = failing, failing
			continue
		}
		if tag.Ignore {
			binding.FromNames, binding.ToNames = []string{}, []string{}
			continue
		}
		if name := e.fieldName(field, tag); name != "" {
			binding.FromNames, binding.ToNames = []string{name}, []string{name}
		}
		if tag.DateFormat == "" {
			continue
		}
		if err = e.bindPattern(binding, tag); err != nil {
			failing := &errorCodec{err: err}
			binding.Encoder, binding.Decoder = failing, failing
		}
	}
}

// fieldName returns the JSON name implied by the format tag or the name transformer, or "" to keep the json tag name
func (e *extension) fieldName(field reflect2.StructField, tag *format.Tag) string {
	if tag.Name != "" {
		return tag.FormatName()
	}
	if jsonName, _, _ := strings.Cut(field.Tag().Get("json"), ","); jsonName != "" {
		return ""
	}
	if _, ok := e.options.NameTransformer.(defaultNameTransformer); ok {
		return ""
	}
	return e.options.NameTransformer.Transform("", field.Name())
}

// bindPattern replaces the codecs of a temporal field, or a pointer to one, with codecs using the tag's dateFormat
func (e *extension) bindPattern(binding *jsoniter.Binding, tag *format.Tag) error {
	fieldType := binding.Field.Type()
	isPtr := false
	if fieldType.Kind() == reflect.Ptr {
		if ptrType, ok := fieldType.(reflect2.PtrType); ok {
			fieldType, isPtr = ptrType.Elem(), true
		}
	}
	var codec *textCodec
	var err error
	if fieldType.Type1() == timeType {
		codec, err = tagTimeCodec(tag)
	} else {
		codec, err = newCodec(fieldType.Type1(), tag.DateFormat, e.options.DatePattern)
	}
	if err != nil || codec == nil {
		return err
	}
	if isPtr {
		pointer := &pointerCodec{elemType: fieldType, elem: codec}
		binding.Encoder, binding.Decoder = pointer, pointer
		return nil
	}
	binding.Encoder, binding.Decoder = codec, codec
	return nil
}

type caseFormatTransformer struct {
	caseFormat text.CaseFormat
}

func (c caseFormatTransformer) Transform(_ string, fieldName string) string {
	if !c.caseFormat.IsDefined() {
		return fieldName
	}
	if fieldName == "ID" {
		switch c.caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, c.caseFormat)
}

type defaultNameTransformer struct{}

func (d defaultNameTransformer) Transform(_ string, fieldName string) string {
	return fieldName
}

// errorCodec surfaces an invalid field configuration when the field is first encoded or decoded
type errorCodec struct {
	err error
}

func (c *errorCodec) IsEmpty(unsafe.Pointer) bool { return false }

func (c *errorCodec) Encode(_ unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteNil()
	if stream.Error == nil {
		stream.Error = c.err
	}
}

func (c *errorCodec) Decode(_ unsafe.Pointer, iter *jsoniter.Iterator) {
	iter.Skip()
	iter.ReportError("decode field", c.err.Error())
}
