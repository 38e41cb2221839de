package decode

import (
	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/vptag"
)

func (c *Cursor) decodeObject(v Visitor, d vptag.Descriptor) error {
	start := c.pos
	if err := c.pushContainer(start); err != nil {
		return err
	}
	defer c.popContainer()

	c.pos++ // consume the type byte

	if d.Empty {
		if err := v.BeginObject(0); err != nil {
			return err
		}

		return v.EndObject()
	}

	switch d.CountLoc {
	case vptag.CountHead, vptag.CountTail:
		return c.decodeIndexedObject(v, start, d)
	case vptag.CountVarintTail:
		return c.decodeCompactObject(v, start)
	default:
		return &errs.UnimplementedError{Tag: d.Tag}
	}
}

// decodeIndexedObject handles tags 0x0b..0x12 (sorted and unsorted). The
// trailing index table (and, for 0x0e/0x12, the tail count) is skipped
// the same way decodeIndexedArray skips it: the declared byte length
// alone is enough to find the container's end for a sequential decode.
func (c *Cursor) decodeIndexedObject(v Visitor, start int, d vptag.Descriptor) error {
	if err := c.need(d.Width); err != nil {
		return err
	}

	length := readUintWidth(c.data[c.pos:c.pos+d.Width], d.Width)
	c.pos += d.Width

	end := start + int(length)
	if end > len(c.data) {
		return errs.ErrEOF
	}

	var count int
	switch d.CountLoc {
	case vptag.CountHead:
		if err := c.need(d.Width); err != nil {
			return err
		}
		count = int(readUintWidth(c.data[c.pos:c.pos+d.Width], d.Width))
		c.pos += d.Width
		c.skipPadding()

	case vptag.CountTail:
		c.skipPadding()
		if end-d.Width < c.pos {
			return errs.ErrEOF
		}
		count = int(readUintWidth(c.data[end-d.Width:end], d.Width))
	}

	if err := v.BeginObject(count); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		if err := c.decodeMember(v); err != nil {
			return err
		}
	}

	c.pos = end

	return v.EndObject()
}

// decodeCompactObject handles tag 0x14: a forward varint byte length, a
// payload of sequentially-packed key/value pairs in insertion order
// (spec §4.1's table carries no index table for either compact variant),
// and a reverse varint member count at the tail.
func (c *Cursor) decodeCompactObject(v Visitor, start int) error {
	length, n, err := vptag.ReadForwardVarint(c.data[c.pos:])
	if err != nil {
		return err
	}
	c.pos += n

	end := start + int(length)
	if end > len(c.data) || end < c.pos {
		return errs.ErrEOF
	}

	count, _, err := vptag.ReadReverseVarint(c.data[:end])
	if err != nil {
		return err
	}

	if err := v.BeginObject(int(count)); err != nil {
		return err
	}

	for i := uint64(0); i < count; i++ {
		if err := c.decodeMember(v); err != nil {
			return err
		}
	}

	c.pos = end

	return v.EndObject()
}

func (c *Cursor) decodeMember(v Visitor) error {
	key, err := c.readStringRaw()
	if err != nil {
		if err == errs.ErrExpectedString {
			return errs.ErrKeyNotString
		}

		return err
	}

	if err := v.VisitKey(key); err != nil {
		return err
	}

	return c.decodeValue(v)
}
