package vptag

import "github.com/arloliu/velocypack/errs"

// maxVarintBytes bounds a 64-bit varint to at most 10 septets, mirroring
// binary.MaxVarintLen64 for the unsigned, non-zigzag encoding VelocyPack
// uses for compact byte-lengths and item counts (spec §4.7).
const maxVarintBytes = 10

// AppendForwardVarint appends the forward-varint encoding of v to buf:
// 7-bit payload per byte, least-significant first, continuation bit (0x80)
// set on every byte but the last.
func AppendForwardVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

// ReadForwardVarint decodes a forward varint from the head of data.
// It returns the value and the number of bytes consumed.
func ReadForwardVarint(data []byte) (value uint64, n int, err error) {
	var shift uint

	for n < maxVarintBytes {
		if n >= len(data) {
			return 0, 0, errs.ErrEOF
		}

		b := data[n]
		n++
		value |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, n, nil
		}
		shift += 7
	}

	return 0, 0, errs.ErrEOF
}

// AppendReverseVarint appends the reverse-varint encoding of v to buf.
// The bytes are the forward-varint septets in reverse order, so that a
// decoder walking buf's tail backward (ReadReverseVarint) recovers v using
// the same 7-bit-chunk algorithm as the forward codec.
func AppendReverseVarint(buf []byte, v uint64) []byte {
	var tmp [maxVarintBytes]byte

	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			tmp[n] = b | 0x80
			n++

			continue
		}
		tmp[n] = b
		n++

		break
	}

	for i := n - 1; i >= 0; i-- {
		buf = append(buf, tmp[i])
	}

	return buf
}

// ReadReverseVarint decodes a reverse varint ending at the last byte of
// data, walking backward. It returns the value and the number of bytes
// consumed (counted from the tail).
func ReadReverseVarint(data []byte) (value uint64, n int, err error) {
	var shift uint

	pos := len(data) - 1
	for n < maxVarintBytes {
		if pos < 0 {
			return 0, 0, errs.ErrEOF
		}

		b := data[pos]
		pos--
		n++
		value |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, n, nil
		}
		shift += 7
	}

	return 0, 0, errs.ErrEOF
}
