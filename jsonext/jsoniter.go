// Package jsonext reads bigdec values with third-party JSON tokenizers:
// json-iterator and fastjson.
// Both tokenizers are loose about number syntax, so every token is validated by bigdec's scanner.
package jsonext

import (
	"sync"
	"unsafe"

	jsoniter "github.com/json-iterator/go"

	"github.com/avdva/bigdec"
)

const (
	valueTypeName = "bigdec.Value"
	decodeOp      = "decode " + valueTypeName
)

var (
	registerOnce sync.Once

	// API is a json-iterator config, which decodes bigdec values from raw number tokens.
	// It's compatible with encoding/json, and keeps numbers in interfaces as json.Number.
	API = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		UseNumber:              true,
	}.Froze()
)

type valueCodec struct{}

func (valueCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var s string
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		s = string(iter.ReadNumber())
	case jsoniter.StringValue:
		s = iter.ReadString()
	case jsoniter.NilValue:
		iter.ReadNil()
		return
	default:
		iter.ReportError(decodeOp, "number or string expected")
		return
	}
	v, err := bigdec.FromString(s)
	if err != nil {
		iter.ReportError(decodeOp, err.Error())
		return
	}
	*(*bigdec.Value)(ptr) = v
}

func (valueCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return (*bigdec.Value)(ptr).IsNone()
}

func (valueCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	data, err := (*bigdec.Value)(ptr).MarshalJSON()
	if err != nil {
		stream.Error = err
		return
	}
	stream.Write(data)
}

// RegisterJSONIterator registers bigdec.Value codec for all json-iterator configs.
// It must be called before a config encodes or decodes bigdec values for the first time,
// as json-iterator caches codecs.
// With the codec registered, None values are omitted for `omitempty` fields.
func RegisterJSONIterator() {
	registerOnce.Do(func() {
		jsoniter.RegisterTypeDecoder(valueTypeName, valueCodec{})
		jsoniter.RegisterTypeEncoder(valueTypeName, valueCodec{})
	})
}

// Marshal encodes v with API.
func Marshal(v interface{}) ([]byte, error) {
	RegisterJSONIterator()
	return API.Marshal(v)
}

// Unmarshal decodes data into v with API.
func Unmarshal(data []byte, v interface{}) error {
	RegisterJSONIterator()
	return API.Unmarshal(data, v)
}
