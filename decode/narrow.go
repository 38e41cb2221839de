package decode

import (
	"math"

	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/vptag"
)

// DecodeInt reads the integer at the cursor's current position and
// returns it sign-extended to int64, advancing past it. Small integers
// and signed multi-byte tags decode directly; unsigned tags are also
// accepted (mirroring original_source/src/de.rs's parse_signed falling
// back to parse_unsigned), reporting NumberTooLargeError if the value
// doesn't fit in an int64.
func (c *Cursor) DecodeInt() (int64, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}

	tag := c.data[c.pos]
	d := vptag.Classify(tag)

	switch d.Kind {
	case vptag.KindSmallInt:
		c.pos++

		return vptag.SmallIntValue(tag), nil

	case vptag.KindSignedInt:
		c.pos++
		if err := c.need(d.Width); err != nil {
			return 0, err
		}

		v := readSignedLE(c.data[c.pos : c.pos+d.Width])
		c.pos += d.Width

		return v, nil

	case vptag.KindUnsignedInt:
		c.pos++
		if err := c.need(d.Width); err != nil {
			return 0, err
		}

		u := readUintWidth(c.data[c.pos:c.pos+d.Width], d.Width)
		c.pos += d.Width

		if u > math.MaxInt64 {
			return 0, &errs.NumberTooLargeError{Kind: "int64", Value: int64(u), MaxWidth: 8}
		}

		return int64(u), nil

	default:
		return 0, errs.ErrExpectedInteger
	}
}

// DecodeUint reads the unsigned integer at the cursor's current position
// and returns it zero-extended to uint64, advancing past it. Tags that
// encode a negative value (the small-negative range or a signed
// multi-byte tag) are rejected with ErrExpectedInteger, mirroring
// de.rs's parse_unsigned, which only recognizes the unsigned tag
// families.
func (c *Cursor) DecodeUint() (uint64, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}

	tag := c.data[c.pos]
	d := vptag.Classify(tag)

	switch d.Kind {
	case vptag.KindSmallInt:
		val := vptag.SmallIntValue(tag)
		if val < 0 {
			return 0, errs.ErrExpectedInteger
		}

		c.pos++

		return uint64(val), nil

	case vptag.KindUnsignedInt:
		c.pos++
		if err := c.need(d.Width); err != nil {
			return 0, err
		}

		u := readUintWidth(c.data[c.pos:c.pos+d.Width], d.Width)
		c.pos += d.Width

		return u, nil

	default:
		return 0, errs.ErrExpectedInteger
	}
}

// DecodeInt8 narrows DecodeInt's result to int8, reporting
// NumberTooLargeError rather than silently truncating (spec §4.2: "A
// narrowing conversion that would lose bits is an overflow error"),
// mirroring de.rs's per-width accessor functions (get_int narrowing to
// i8/i16/i32) rather than exposing only a single 64-bit accessor.
func (c *Cursor) DecodeInt8() (int8, error) {
	v, err := c.DecodeInt()
	if err != nil {
		return 0, err
	}

	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, &errs.NumberTooLargeError{Kind: "int8", Value: v, MaxWidth: 1}
	}

	return int8(v), nil
}

// DecodeInt16 narrows DecodeInt's result to int16.
func (c *Cursor) DecodeInt16() (int16, error) {
	v, err := c.DecodeInt()
	if err != nil {
		return 0, err
	}

	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, &errs.NumberTooLargeError{Kind: "int16", Value: v, MaxWidth: 2}
	}

	return int16(v), nil
}

// DecodeInt32 narrows DecodeInt's result to int32.
func (c *Cursor) DecodeInt32() (int32, error) {
	v, err := c.DecodeInt()
	if err != nil {
		return 0, err
	}

	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &errs.NumberTooLargeError{Kind: "int32", Value: v, MaxWidth: 4}
	}

	return int32(v), nil
}
