package decode

import (
	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/vptag"
)

func (c *Cursor) decodeArray(v Visitor, d vptag.Descriptor) error {
	start := c.pos
	if err := c.pushContainer(start); err != nil {
		return err
	}
	defer c.popContainer()

	c.pos++ // consume the type byte

	if d.Empty {
		if err := v.BeginArray(0); err != nil {
			return err
		}

		return v.EndArray()
	}

	switch d.CountLoc {
	case vptag.CountImplicit:
		return c.decodeEqualLengthArray(v, start, d)
	case vptag.CountHead, vptag.CountTail:
		return c.decodeIndexedArray(v, start, d)
	case vptag.CountVarintTail:
		return c.decodeCompactArray(v, start)
	default:
		return &errs.UnimplementedError{Tag: d.Tag}
	}
}

// decodeEqualLengthArray handles tags 0x02..0x05: a declared byte length
// followed by same-size elements with no index table. The element count
// isn't stored; it is derived by decoding the first element once to
// measure its byte stride, then dividing the remaining payload by it
// (spec §4.3's "length/count discovery mid-stream").
func (c *Cursor) decodeEqualLengthArray(v Visitor, start int, d vptag.Descriptor) error {
	if err := c.need(d.Width); err != nil {
		return err
	}

	length := readUintWidth(c.data[c.pos:c.pos+d.Width], d.Width)
	c.pos += d.Width

	c.skipPadding()
	payloadStart := c.pos

	end := start + int(length)
	if end > len(c.data) || end < payloadStart {
		return errs.ErrEOF
	}

	elemStart := c.pos
	if err := c.skipValue(); err != nil {
		return err
	}
	stride := c.pos - elemStart
	if stride <= 0 {
		return errs.ErrStrideMismatch
	}

	payloadLen := end - payloadStart
	if payloadLen%stride != 0 {
		return errs.ErrStrideMismatch
	}
	count := payloadLen / stride

	if err := v.BeginArray(count); err != nil {
		return err
	}

	c.pos = payloadStart
	for i := 0; i < count; i++ {
		if err := c.decodeValue(v); err != nil {
			return err
		}
	}

	c.pos = end

	return v.EndArray()
}

// decodeIndexedArray handles tags 0x06..0x09. The index table and (for
// 0x09) the tail count field are skipped rather than parsed: the
// declared byte length already tells the cursor where the container
// ends, and random access into the index table is handled separately by
// Cursor.At.
func (c *Cursor) decodeIndexedArray(v Visitor, start int, d vptag.Descriptor) error {
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

	if err := v.BeginArray(count); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		if err := c.decodeValue(v); err != nil {
			return err
		}
	}

	c.pos = end

	return v.EndArray()
}

// decodeCompactArray handles tag 0x13: a forward varint byte length, a
// payload of sequentially-packed elements with no padding and no index,
// and a reverse varint item count at the tail.
func (c *Cursor) decodeCompactArray(v Visitor, start int) error {
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

	if err := v.BeginArray(int(count)); err != nil {
		return err
	}

	for i := uint64(0); i < count; i++ {
		if err := c.decodeValue(v); err != nil {
			return err
		}
	}

	c.pos = end

	return v.EndArray()
}
