package encode

import (
	"bytes"

	"github.com/arloliu/velocypack/value"
)

// FromValue drives b from a value.Value tree, the "producer of typed
// events" spec §6.2's encode(source, output_buffer) describes — here a
// direct tree walk rather than a callback producer, since the tree
// already exists in this core. b must be freshly constructed: a Builder
// holds one top-level value, and emitting a second one panics.
func FromValue(b *Builder, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		return b.Null()
	case value.KindBool:
		return b.Bool(v.AsBool())
	case value.KindDouble:
		return b.Double(v.AsDouble())
	case value.KindInt:
		return b.Int(v.AsInt())
	case value.KindUint:
		return b.Uint(v.AsUint())
	case value.KindString:
		return b.String(v.AsString())

	case value.KindArray:
		if err := b.OpenArray(); err != nil {
			return err
		}
		for _, item := range v.Items() {
			if err := FromValue(b, item); err != nil {
				return err
			}
		}

		return b.CloseArray()

	case value.KindObject:
		if err := b.OpenObject(); err != nil {
			return err
		}
		for _, p := range v.Pairs() {
			if err := b.Key(p.Key); err != nil {
				return err
			}
			if err := FromValue(b, p.Value); err != nil {
				return err
			}
		}

		return b.CloseObject()

	default:
		panic("encode: FromValue called with an unrecognized value.Kind")
	}
}

// Encode is the top-level convenience wrapper spec §6.2 names: it
// encodes v and writes the result to out.
func Encode(v value.Value, out *bytes.Buffer) error {
	b, err := NewBuilder()
	if err != nil {
		return err
	}

	if err := FromValue(b, v); err != nil {
		return err
	}

	_, err = out.Write(b.Bytes())

	return err
}
