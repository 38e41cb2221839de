package encode

import (
	"math"

	"github.com/arloliu/velocypack/endian"
	"github.com/arloliu/velocypack/vptag"
)

func encodeNull() []byte { return []byte{vptag.TagNull} }

func encodeBool(v bool) []byte {
	if v {
		return []byte{vptag.TagTrue}
	}

	return []byte{vptag.TagFalse}
}

func encodeDouble(v float64, engine endian.EndianEngine) []byte {
	buf := make([]byte, 0, 9)
	buf = append(buf, vptag.TagDouble)

	return engine.AppendUint64(buf, math.Float64bits(v))
}

// encodeInt emits the narrowest representation of v: the embedded
// small-integer tag when v is in -6..9, otherwise the smallest 1..8 byte
// two's-complement width that round-trips v (spec §6.1: "Encoders must
// choose the narrowest representation for scalars").
func encodeInt(v int64) []byte {
	if tag, ok := vptag.TagForSmallInt(v); ok {
		return []byte{tag}
	}

	w := minSignedWidth(v)
	buf := make([]byte, 0, 1+w)
	buf = append(buf, vptag.TagForSignedWidth(w))

	return appendLEBytes(buf, uint64(v), w)
}

// encodeUint emits the narrowest representation of v: the embedded
// small-integer tag when v is in 0..9, otherwise the smallest 1..8 byte
// width that holds v.
func encodeUint(v uint64) []byte {
	if v <= 9 {
		return []byte{vptag.TagSmallUintBase + byte(v)}
	}

	w := minUnsignedWidth(v)
	buf := make([]byte, 0, 1+w)
	buf = append(buf, vptag.TagForUnsignedWidth(w))

	return appendLEBytes(buf, v, w)
}

// encodeString emits the short-string tag (0..126 bytes embedded in the
// tag) when the payload fits, otherwise the long-string tag with an
// 8-byte length prefix.
func encodeString(v string, engine endian.EndianEngine) []byte {
	n := len(v)
	if n <= 126 {
		buf := make([]byte, 0, 1+n)
		buf = append(buf, vptag.TagForShortString(n))
		buf = append(buf, v...)

		return buf
	}

	buf := make([]byte, 0, 9+n)
	buf = append(buf, vptag.TagLongString)
	buf = engine.AppendUint64(buf, uint64(n))
	buf = append(buf, v...)

	return buf
}

// minSignedWidth returns the smallest n in 1..8 such that the n-byte
// two's-complement encoding of v sign-extends back to v.
func minSignedWidth(v int64) int {
	for w := 1; w < 8; w++ {
		bits := uint(8 * w)
		lo := -(int64(1) << (bits - 1))
		hi := int64(1)<<(bits-1) - 1
		if v >= lo && v <= hi {
			return w
		}
	}

	return 8
}

// minUnsignedWidth returns the smallest n in 1..8 such that the n-byte
// unsigned encoding of v holds v exactly.
func minUnsignedWidth(v uint64) int {
	for w := 1; w < 8; w++ {
		if v < uint64(1)<<(8*w) {
			return w
		}
	}

	return 8
}

// appendLEBytes appends the w-byte little-endian encoding of v to buf. w
// ranges over 1..8 for scalar integers, not just the {1,2,4,8} container
// widths, so this writes bytes directly rather than going through
// endian.EndianEngine's fixed-width methods.
func appendLEBytes(buf []byte, v uint64, w int) []byte {
	for i := 0; i < w; i++ {
		buf = append(buf, byte(v>>(8*i)))
	}

	return buf
}
