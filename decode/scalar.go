package decode

import (
	"math"
	"unicode/utf8"

	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/vptag"
)

func (c *Cursor) decodeBool(v Visitor, tag byte) error {
	c.pos++

	return v.VisitBool(tag == vptag.TagTrue)
}

func (c *Cursor) decodeDouble(v Visitor) error {
	c.pos++
	if err := c.need(8); err != nil {
		return err
	}

	bits := c.engine.Uint64(c.data[c.pos : c.pos+8])
	c.pos += 8

	return v.VisitDouble(math.Float64frombits(bits))
}

func (c *Cursor) decodeSmallInt(v Visitor, tag byte) error {
	c.pos++

	val := vptag.SmallIntValue(tag)
	if val >= 0 {
		return v.VisitUint(uint64(val))
	}

	return v.VisitInt(val)
}

func (c *Cursor) decodeSignedInt(v Visitor, d vptag.Descriptor) error {
	c.pos++
	if err := c.need(d.Width); err != nil {
		return err
	}

	val := readSignedLE(c.data[c.pos : c.pos+d.Width])
	c.pos += d.Width

	return v.VisitInt(val)
}

func (c *Cursor) decodeUnsignedInt(v Visitor, d vptag.Descriptor) error {
	c.pos++
	if err := c.need(d.Width); err != nil {
		return err
	}

	val := readUintWidth(c.data[c.pos:c.pos+d.Width], d.Width)
	c.pos += d.Width

	return v.VisitUint(val)
}

func (c *Cursor) decodeString(v Visitor) error {
	s, err := c.readStringRaw()
	if err != nil {
		return err
	}

	return v.VisitString(s)
}

// readStringRaw decodes the short or long string at c.pos and advances
// past it, without delivering a Visitor event. Object decoding uses it
// directly for keys, which must be visited via VisitKey rather than
// VisitString.
func (c *Cursor) readStringRaw() (string, error) {
	if err := c.need(1); err != nil {
		return "", err
	}

	tag := c.data[c.pos]
	d := vptag.Classify(tag)

	switch d.Kind {
	case vptag.KindShortString:
		n := d.Width
		c.pos++
		if err := c.need(n); err != nil {
			return "", err
		}

		raw := c.data[c.pos : c.pos+n]
		c.pos += n

		return c.finishString(raw)

	case vptag.KindLongString:
		c.pos++
		if err := c.need(8); err != nil {
			return "", err
		}

		length := c.engine.Uint64(c.data[c.pos : c.pos+8])
		c.pos += 8

		if uint64(len(c.data)-c.pos) < length {
			return "", errs.ErrEOF
		}

		raw := c.data[c.pos : c.pos+int(length)]
		c.pos += int(length)

		return c.finishString(raw)

	default:
		return "", errs.ErrExpectedString
	}
}

func (c *Cursor) finishString(raw []byte) (string, error) {
	if c.validateUTF8 && !utf8.Valid(raw) {
		return "", errs.ErrInvalidUTF8
	}

	return string(raw), nil
}
