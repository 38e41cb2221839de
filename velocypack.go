// Package velocypack provides convenience wrappers around the decode and
// encode packages for the common case of working with a value.Value tree
// instead of driving a decode.Visitor or encode.Builder directly.
//
// # Basic usage
//
// Decoding a VelocyPack-encoded byte slice into a value.Value:
//
//	v, remaining, err := velocypack.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// When the caller knows data holds exactly one value and nothing more:
//
//	v, err := velocypack.DecodeAll(data)
//
// Encoding a value.Value back to bytes:
//
//	data, err := velocypack.Encode(value.Object(
//	    value.P("name", value.String("vpack")),
//	    value.P("count", value.Uint(3)),
//	))
//
// # Package structure
//
// This package is a thin convenience layer. For the lower-level
// event-stream (decode.Visitor) or builder (encode.Builder) APIs, or for
// random-access lookups into an encoded value without a full decode, use
// the decode and encode packages directly. The store package builds a
// content-addressed blob store on top of this core.
package velocypack

import (
	"bytes"

	"github.com/arloliu/velocypack/decode"
	"github.com/arloliu/velocypack/encode"
	"github.com/arloliu/velocypack/value"
)

// Decode decodes the value at the start of input into a value.Value tree
// and returns the unconsumed remainder of input.
func Decode(input []byte) (value.Value, []byte, error) {
	return decode.Value(input)
}

// DecodeAll decodes exactly one value from input and reports an error if
// any bytes remain afterward.
func DecodeAll(input []byte) (value.Value, error) {
	return decode.ValueAll(input)
}

// Encode encodes v and returns the resulting bytes.
func Encode(v value.Value) ([]byte, error) {
	var out bytes.Buffer
	if err := EncodeInto(v, &out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// EncodeInto encodes v and appends the result to out.
func EncodeInto(v value.Value, out *bytes.Buffer) error {
	return encode.Encode(v, out)
}
