package encode

import (
	"bytes"
	"sort"

	"github.com/arloliu/velocypack/endian"
	"github.com/arloliu/velocypack/vptag"
)

// buildObject renders a closed object's (key, value) pairs into the
// minimal container representation (spec §4.5). This builder always
// emits the sorted-index tags (0x0b..0x0e): spec §4.5 requires the
// index table in lexicographic key order regardless of insertion order,
// so there is never a reason to produce the unsorted tags (0x0f..0x12)
// — those exist in vptag/decode only to accept objects from other
// encoders that chose not to sort.
func buildObject(entries []objEntry, engine endian.EndianEngine) []byte {
	if len(entries) == 0 {
		return []byte{vptag.TagObjectEmpty}
	}

	count := len(entries)
	payloadLen := 0
	for _, e := range entries {
		payloadLen += len(e.key) + len(e.val)
	}

	w := chooseWidth(2, payloadLen, true, count)

	var tag byte
	var baseline int
	if w == 8 {
		tag = vptag.TagObjectSortedBase + 3
		baseline = 1 + w
	} else {
		tag = vptag.TagObjectSortedBase + byte(widthIndex(w))
		baseline = 1 + 2*w
	}

	offsets := make([]int, count)
	off := baseline
	for i, e := range entries {
		offsets[i] = off
		off += len(e.key) + len(e.val)
	}

	order := make([]int, count)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return bytes.Compare(entries[order[a]].key, entries[order[b]].key) < 0
	})

	total := baseline + payloadLen + count*w
	if w == 8 {
		total += w
	}

	buf := make([]byte, 0, total)
	buf = append(buf, tag)
	buf = appendWidth(buf, uint64(total), w, engine)
	if w != 8 {
		buf = appendWidth(buf, uint64(count), w, engine)
	}
	for _, e := range entries {
		buf = append(buf, e.key...)
		buf = append(buf, e.val...)
	}
	for _, i := range order {
		buf = appendWidth(buf, uint64(offsets[i]), w, engine)
	}
	if w == 8 {
		buf = appendWidth(buf, uint64(count), w, engine)
	}

	return buf
}
