package encode

import (
	"github.com/arloliu/velocypack/endian"
	"github.com/arloliu/velocypack/internal/pool"
	"github.com/arloliu/velocypack/vptag"
)

// buildArray renders a closed array's child encodings into the minimal
// container representation (spec §4.5). Arrays whose children all
// encode to the same byte length skip the index table entirely (spec
// §3: "For same-width homogeneous arrays the index table is omitted").
func buildArray(elems [][]byte, engine endian.EndianEngine) []byte {
	if len(elems) == 0 {
		return []byte{vptag.TagArrayEmpty}
	}

	if equalLength(elems) {
		return buildEqualLengthArray(elems, engine)
	}

	return buildIndexedArray(elems, engine)
}

func equalLength(elems [][]byte) bool {
	n := len(elems[0])
	for _, e := range elems[1:] {
		if len(e) != n {
			return false
		}
	}

	return true
}

func buildEqualLengthArray(elems [][]byte, engine endian.EndianEngine) []byte {
	payload := concat(elems)
	w := chooseWidth(1, len(payload), false, 0)
	total := 1 + w + len(payload)

	buf := make([]byte, 0, total)
	buf = append(buf, equalLengthArrayTag(w))
	buf = appendWidth(buf, uint64(total), w, engine)
	buf = append(buf, payload...)

	return buf
}

// equalLengthArrayTag returns the 0x02..0x05 tag for width w. w == 8
// selects 0x05 directly rather than going through widthIndex, which
// only covers the head-count tag families' 1/2/4 range indices.
func equalLengthArrayTag(w int) byte {
	if w == 8 {
		return vptag.TagArrayEqualBase + 3
	}

	return vptag.TagArrayEqualBase + byte(widthIndex(w))
}

// buildIndexedArray handles arrays whose children differ in length
// (spec §4.5: "indexed variant 0x06..0x09 using the smallest W that
// admits both the total size and the largest offset"). The payload
// keeps insertion order; so does the index table — unlike objects,
// array indexes are not sorted (spec §4.5).
func buildIndexedArray(elems [][]byte, engine endian.EndianEngine) []byte {
	count := len(elems)
	payload := concat(elems)
	w := chooseWidth(2, len(payload), true, count)

	var tag byte
	var baseline int
	if w == 8 {
		tag = vptag.TagArrayIndexedBase + 3
		baseline = 1 + w
	} else {
		tag = vptag.TagArrayIndexedBase + byte(widthIndex(w))
		baseline = 1 + 2*w
	}

	offsets := make([]int, count)
	off := baseline
	for i, e := range elems {
		offsets[i] = off
		off += len(e)
	}

	total := baseline + len(payload) + count*w
	if w == 8 {
		total += w // tail count field, outside baseline for this layout
	}

	buf := make([]byte, 0, total)
	buf = append(buf, tag)
	buf = appendWidth(buf, uint64(total), w, engine)
	if w != 8 {
		buf = appendWidth(buf, uint64(count), w, engine)
	}
	for _, e := range elems {
		buf = append(buf, e...)
	}
	for _, o := range offsets {
		buf = appendWidth(buf, uint64(o), w, engine)
	}
	if w == 8 {
		buf = appendWidth(buf, uint64(count), w, engine)
	}

	return buf
}

// concat joins a container's child encodings using a pooled scratch
// buffer (the same pool.ByteBuffer the Builder's frames would otherwise
// allocate fresh), returning a freshly-sized copy so the pooled buffer
// can be reused immediately.
func concat(elems [][]byte) []byte {
	bb := pool.GetChildBuffer()
	defer pool.PutChildBuffer(bb)

	for _, e := range elems {
		bb.MustWrite(e)
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out
}

// appendWidth appends the w-byte little-endian encoding of v, routing
// through endian.EndianEngine for the power-of-two widths it supports
// directly and appending the single byte itself for w == 1.
func appendWidth(buf []byte, v uint64, w int, engine endian.EndianEngine) []byte {
	switch w {
	case 1:
		return append(buf, byte(v))
	case 2:
		return engine.AppendUint16(buf, uint16(v))
	case 4:
		return engine.AppendUint32(buf, uint32(v))
	default:
		return engine.AppendUint64(buf, v)
	}
}
