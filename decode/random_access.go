package decode

import (
	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/value"
	"github.com/arloliu/velocypack/vptag"
)

// At returns the index-th element of the array at the cursor's current
// position, without decoding the elements before it. Indexed arrays
// (0x06..0x09) read the element's offset straight from the parsed index
// table (spec §4.4: "lookup-by-key is therefore a binary search over
// the index" — for arrays the index table gives direct offsets, no
// search needed); equal-length arrays (0x02..0x05) use stride
// arithmetic; compact arrays (0x13) have no index and fall back to a
// linear scan.
func (c *Cursor) At(index int) (value.Value, error) {
	if index < 0 {
		return value.Value{}, errs.ErrEOF
	}
	if err := c.need(1); err != nil {
		return value.Value{}, err
	}

	start := c.pos
	tag := c.data[start]
	d := vptag.Classify(tag)
	if d.Kind != vptag.KindArray {
		return value.Value{}, errs.ErrExpectedArray
	}
	if d.Empty {
		return value.Value{}, errs.ErrEOF
	}

	switch d.CountLoc {
	case vptag.CountImplicit:
		return c.atEqualLength(start, d, index)
	case vptag.CountHead, vptag.CountTail:
		return c.atIndexed(start, d, index)
	case vptag.CountVarintTail:
		return c.atCompact(start, index)
	default:
		return value.Value{}, &errs.UnimplementedError{Tag: tag}
	}
}

func (c *Cursor) atEqualLength(start int, d vptag.Descriptor, index int) (value.Value, error) {
	pos := start + 1
	if err := c.need(1 + d.Width); err != nil {
		return value.Value{}, err
	}

	length := readUintWidth(c.data[pos:pos+d.Width], d.Width)
	pos += d.Width
	for pos < len(c.data) && c.data[pos] == 0x00 {
		pos++
	}

	payloadStart := pos
	end := start + int(length)
	if end > len(c.data) {
		return value.Value{}, errs.ErrEOF
	}

	stride, err := valueByteLen(c.data[payloadStart:end])
	if err != nil {
		return value.Value{}, err
	}
	if stride <= 0 {
		return value.Value{}, errs.ErrStrideMismatch
	}

	elemOff := payloadStart + index*stride
	if elemOff+stride > end {
		return value.Value{}, errs.ErrEOF
	}

	v, _, err := Value(c.data[elemOff:])

	return v, err
}

func (c *Cursor) atIndexed(start int, d vptag.Descriptor, index int) (value.Value, error) {
	offsets, _, err := c.indexedArrayLayout(start, d)
	if err != nil {
		return value.Value{}, err
	}
	if index >= len(offsets) {
		return value.Value{}, errs.ErrEOF
	}

	v, _, err := Value(c.data[start+offsets[index]:])

	return v, err
}

func (c *Cursor) atCompact(start int, index int) (value.Value, error) {
	length, n, err := vptag.ReadForwardVarint(c.data[start+1:])
	if err != nil {
		return value.Value{}, err
	}
	payloadStart := start + 1 + n
	end := start + int(length)
	if end > len(c.data) {
		return value.Value{}, errs.ErrEOF
	}

	count, _, err := vptag.ReadReverseVarint(c.data[:end])
	if err != nil {
		return value.Value{}, err
	}
	if index >= int(count) {
		return value.Value{}, errs.ErrEOF
	}

	pos := payloadStart
	for i := 0; i < index; i++ {
		n, err := valueByteLen(c.data[pos:end])
		if err != nil {
			return value.Value{}, err
		}
		pos += n
	}

	v, _, err := Value(c.data[pos:])

	return v, err
}

// indexedArrayLayout parses an indexed array's (tags 0x06..0x09) index
// table into container-relative element offsets.
func (c *Cursor) indexedArrayLayout(start int, d vptag.Descriptor) ([]int, int, error) {
	pos := start + 1
	if err := c.need(pos - start + d.Width); err != nil {
		return nil, 0, err
	}

	length := readUintWidth(c.data[pos:pos+d.Width], d.Width)
	pos += d.Width
	end := start + int(length)
	if end > len(c.data) {
		return nil, 0, errs.ErrEOF
	}

	var count int
	switch d.CountLoc {
	case vptag.CountHead:
		count = int(readUintWidth(c.data[pos:pos+d.Width], d.Width))
		pos += d.Width
	case vptag.CountTail:
		if end-d.Width < pos {
			return nil, 0, errs.ErrEOF
		}
		count = int(readUintWidth(c.data[end-d.Width:end], d.Width))
	}

	tableEnd := end
	if d.CountLoc == vptag.CountTail {
		tableEnd = end - d.Width
	}
	tableStart := tableEnd - count*d.Width
	if tableStart < pos {
		return nil, 0, errs.ErrEOF
	}

	offsets := make([]int, count)
	for i := 0; i < count; i++ {
		off := readUintWidth(c.data[tableStart+i*d.Width:], d.Width)
		offsets[i] = int(off)
	}

	return offsets, end, nil
}

// valueByteLen measures the encoded byte length of the single value at
// the front of data, without building a value.Value.
func valueByteLen(data []byte) (int, error) {
	c, err := NewCursor(data)
	if err != nil {
		return 0, err
	}
	if err := c.skipValue(); err != nil {
		return 0, err
	}

	return c.pos, nil
}

// Get looks up key in the object at the cursor's current position.
// Sorted objects (0x0b..0x0e) use a binary search over the index table's
// keys; unsorted objects (0x0f..0x12) and compact objects (0x14, which
// carries no index at all) fall back to a linear scan.
func (c *Cursor) Get(key string) (value.Value, bool, error) {
	if err := c.need(1); err != nil {
		return value.Value{}, false, err
	}

	start := c.pos
	tag := c.data[start]
	d := vptag.Classify(tag)
	if d.Kind != vptag.KindObject {
		return value.Value{}, false, errs.ErrExpectedObject
	}
	if d.Empty {
		return value.Value{}, false, nil
	}

	if d.CountLoc == vptag.CountVarintTail {
		return c.getCompact(start, key)
	}

	offsets, end, err := c.indexedArrayLayout(start, d)
	if err != nil {
		return value.Value{}, false, err
	}

	if d.Sorted {
		lo, hi := 0, len(offsets)
		for lo < hi {
			mid := (lo + hi) / 2
			k, err := keyAt(c.data[start+offsets[mid] : end])
			if err != nil {
				return value.Value{}, false, err
			}
			switch {
			case k == key:
				v, ok, err := valueAfterKey(c.data, start+offsets[mid])
				return v, ok, err
			case k < key:
				lo = mid + 1
			default:
				hi = mid
			}
		}

		return value.Value{}, false, nil
	}

	for _, off := range offsets {
		k, err := keyAt(c.data[start+off : end])
		if err != nil {
			return value.Value{}, false, err
		}
		if k == key {
			return valueAfterKey(c.data, start+off)
		}
	}

	return value.Value{}, false, nil
}

func (c *Cursor) getCompact(start int, key string) (value.Value, bool, error) {
	length, n, err := vptag.ReadForwardVarint(c.data[start+1:])
	if err != nil {
		return value.Value{}, false, err
	}
	pos := start + 1 + n
	end := start + int(length)
	if end > len(c.data) {
		return value.Value{}, false, errs.ErrEOF
	}

	count, _, err := vptag.ReadReverseVarint(c.data[:end])
	if err != nil {
		return value.Value{}, false, err
	}

	for i := uint64(0); i < count; i++ {
		k, err := keyAt(c.data[pos:end])
		if err != nil {
			return value.Value{}, false, err
		}
		keyLen, err := valueByteLen(c.data[pos:end])
		if err != nil {
			return value.Value{}, false, err
		}
		valOff := pos + keyLen
		if k == key {
			return valueAfterKey(c.data, pos)
		}

		valLen, err := valueByteLen(c.data[valOff:end])
		if err != nil {
			return value.Value{}, false, err
		}
		pos = valOff + valLen
	}

	return value.Value{}, false, nil
}

func keyAt(data []byte) (string, error) {
	c, err := NewCursor(data)
	if err != nil {
		return "", err
	}

	return c.readStringRaw()
}

func valueAfterKey(data []byte, keyOff int) (value.Value, bool, error) {
	keyLen, err := valueByteLen(data[keyOff:])
	if err != nil {
		return value.Value{}, false, err
	}

	v, _, err := Value(data[keyOff+keyLen:])
	if err != nil {
		return value.Value{}, false, err
	}

	return v, true, nil
}
