package encode

// containerWidths is the set of header/index field widths a container
// may use, in ascending order (spec §4.5: "iterate W ∈ {1, 2, 4, 8}").
var containerWidths = [4]int{1, 2, 4, 8}

// chooseWidth returns the smallest W in {1, 2, 4, 8} such that a
// container with numLenFields fixed-width header fields (length alone
// for an equal-length array; length+count for an indexed array or
// object), payloadBytes of child data, and — when hasIndex — an index
// table of count entries each W bytes, has a declared total size that
// fits in W bytes (spec §4.5: "accept the first W for which 1 + 2W +
// payload_bytes + count·W < 2^(8W)"). W = 8 always satisfies the bound.
func chooseWidth(numLenFields int, payloadBytes int, hasIndex bool, count int) int {
	for _, w := range containerWidths {
		if w == 8 {
			return w
		}

		total := 1 + numLenFields*w + payloadBytes
		if hasIndex {
			total += count * w
		}

		if uint64(total) < uint64(1)<<uint(8*w) {
			return w
		}
	}

	return 8
}

// widthIndex maps a container width (1, 2, or 4) to the 0-based range
// index used by the head-count tag families (0x06..0x08, 0x0b..0x0d).
// It must never be called with w == 8, which always selects the
// tail-count variant of its family instead.
func widthIndex(w int) int {
	switch w {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		panic("encode: widthIndex called with a tail-count width")
	}
}
