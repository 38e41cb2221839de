// Package vptag holds the VelocyPack type-byte dispatch table and the
// forward/reverse varint codec the compact container variants use.
//
// It is the single place that knows how a tag byte maps to a value shape
// (spec §4.1); decode.Cursor and encode.Builder both depend on it instead
// of re-deriving tag ranges themselves.
package vptag

// Kind is the coarse value shape a tag byte selects.
type Kind uint8

const (
	KindUnsupported Kind = iota
	KindNull
	KindBool
	KindDouble
	KindSmallInt
	KindSignedInt
	KindUnsignedInt
	KindShortString
	KindLongString
	KindArray
	KindObject
)

// CountLocation describes where a container's item count is found.
type CountLocation uint8

const (
	// CountNone applies to empty containers, which carry no count field.
	CountNone CountLocation = iota
	// CountImplicit means the count isn't stored; it must be derived by
	// decoding the first element and dividing the remaining payload by
	// its stride (spec §4.3, equal-length arrays).
	CountImplicit
	// CountHead means the count is a fixed W-byte field immediately
	// after the byte-length field.
	CountHead
	// CountTail means the count occupies the final W bytes of the
	// container (tags 0x09, 0x0e, 0x12).
	CountTail
	// CountVarintTail means the count is a reverse varint read from the
	// tail of the container (compact tags 0x13, 0x14).
	CountVarintTail
)

// Scalar and marker tags with no range.
const (
	TagArrayEmpty  byte = 0x01
	TagObjectEmpty byte = 0x0a
	TagArrayCompact byte = 0x13
	TagObjectCompact byte = 0x14
	TagNull  byte = 0x18
	TagFalse byte = 0x19
	TagTrue  byte = 0x1a
	TagDouble byte = 0x1b
	TagLongString byte = 0xbf
)

// Base tags for the ranged families; the concrete tag is base+i.
const (
	TagArrayEqualBase    byte = 0x02 // 0x02..0x05, i selects width index
	TagArrayIndexedBase  byte = 0x06 // 0x06..0x09
	TagObjectSortedBase  byte = 0x0b // 0x0b..0x0e
	TagObjectUnsortedBase byte = 0x0f // 0x0f..0x12
	TagSignedIntBase     byte = 0x20 // 0x20..0x27, width = tag-0x1f
	TagUnsignedIntBase   byte = 0x28 // 0x28..0x2f, width = tag-0x27
	TagSmallUintBase     byte = 0x30 // 0x30..0x39, value = tag-0x30
	TagSmallNegIntBase   byte = 0x3a // 0x3a..0x3f, value = tag-0x40
	TagShortStringBase   byte = 0x40 // 0x40..0xbe, length = tag-0x40
)

// widths maps a 2-bit width index (as used by the array/object range
// families) to the byte width W it selects.
var widths = [4]int{1, 2, 4, 8}

// WidthForIndex returns the byte width for range index i (0..3), i.e. the
// W that tags base+0..base+3 select.
func WidthForIndex(i int) int { return widths[i] }

// Descriptor is everything the decoder/encoder need to know about one tag.
type Descriptor struct {
	Tag      byte
	Kind     Kind
	Width    int // byte width of length/count/index fields; payload bytes for ints; length for short strings; else 0
	CountLoc CountLocation
	HasIndex bool
	Sorted   bool // only meaningful when HasIndex is true
	Empty    bool
	Compact  bool
}

// Classify maps a type byte to its Descriptor, reproducing the table in
// spec §4.1 exactly.
func Classify(tag byte) Descriptor {
	switch {
	case tag == TagArrayEmpty:
		return Descriptor{Tag: tag, Kind: KindArray, Empty: true, CountLoc: CountNone}

	case tag >= TagArrayEqualBase && tag <= TagArrayEqualBase+3:
		i := int(tag - TagArrayEqualBase)
		return Descriptor{Tag: tag, Kind: KindArray, Width: widths[i], CountLoc: CountImplicit}

	case tag >= TagArrayIndexedBase && tag <= TagArrayIndexedBase+3:
		i := int(tag - TagArrayIndexedBase)
		loc := CountHead
		if i == 3 {
			loc = CountTail
		}
		return Descriptor{Tag: tag, Kind: KindArray, Width: widths[i], CountLoc: loc, HasIndex: true}

	case tag == TagObjectEmpty:
		return Descriptor{Tag: tag, Kind: KindObject, Empty: true, CountLoc: CountNone}

	case tag >= TagObjectSortedBase && tag <= TagObjectSortedBase+3:
		i := int(tag - TagObjectSortedBase)
		loc := CountHead
		if i == 3 {
			loc = CountTail
		}
		return Descriptor{Tag: tag, Kind: KindObject, Width: widths[i], CountLoc: loc, HasIndex: true, Sorted: true}

	case tag >= TagObjectUnsortedBase && tag <= TagObjectUnsortedBase+3:
		i := int(tag - TagObjectUnsortedBase)
		loc := CountHead
		if i == 3 {
			loc = CountTail
		}
		return Descriptor{Tag: tag, Kind: KindObject, Width: widths[i], CountLoc: loc, HasIndex: true, Sorted: false}

	case tag == TagArrayCompact:
		return Descriptor{Tag: tag, Kind: KindArray, CountLoc: CountVarintTail, Compact: true}

	case tag == TagObjectCompact:
		return Descriptor{Tag: tag, Kind: KindObject, CountLoc: CountVarintTail, Compact: true}

	case tag == TagNull:
		return Descriptor{Tag: tag, Kind: KindNull}
	case tag == TagFalse || tag == TagTrue:
		return Descriptor{Tag: tag, Kind: KindBool}
	case tag == TagDouble:
		return Descriptor{Tag: tag, Kind: KindDouble}

	case tag >= TagSignedIntBase && tag <= TagSignedIntBase+7:
		return Descriptor{Tag: tag, Kind: KindSignedInt, Width: int(tag-TagSignedIntBase) + 1}
	case tag >= TagUnsignedIntBase && tag <= TagUnsignedIntBase+7:
		return Descriptor{Tag: tag, Kind: KindUnsignedInt, Width: int(tag-TagUnsignedIntBase) + 1}

	case tag >= TagSmallUintBase && tag <= TagSmallUintBase+9:
		return Descriptor{Tag: tag, Kind: KindSmallInt}
	case tag >= TagSmallNegIntBase && tag <= TagSmallNegIntBase+5:
		return Descriptor{Tag: tag, Kind: KindSmallInt}

	case tag >= TagShortStringBase && tag <= 0xbe:
		return Descriptor{Tag: tag, Kind: KindShortString, Width: int(tag - TagShortStringBase)}
	case tag == TagLongString:
		return Descriptor{Tag: tag, Kind: KindLongString}

	default:
		return Descriptor{Tag: tag, Kind: KindUnsupported}
	}
}

// SmallIntValue returns the embedded value of a KindSmallInt tag: 0..9 for
// 0x30..0x39, -6..-1 for 0x3a..0x3f.
func SmallIntValue(tag byte) int64 {
	if tag >= TagSmallUintBase && tag <= TagSmallUintBase+9 {
		return int64(tag - TagSmallUintBase)
	}

	return int64(tag) - 0x40
}

// TagForSmallInt returns the tag byte for v if v is in the small-integer
// range (-6..9), and ok=false otherwise.
func TagForSmallInt(v int64) (tag byte, ok bool) {
	switch {
	case v >= 0 && v <= 9:
		return TagSmallUintBase + byte(v), true
	case v >= -6 && v <= -1:
		return byte(0x40 + v), true
	default:
		return 0, false
	}
}

// TagForSignedWidth returns the tag for an n-byte (1..8) signed integer.
func TagForSignedWidth(n int) byte { return TagSignedIntBase + byte(n-1) }

// TagForUnsignedWidth returns the tag for an n-byte (1..8) unsigned integer.
func TagForUnsignedWidth(n int) byte { return TagUnsignedIntBase + byte(n-1) }

// TagForShortString returns the tag for a short string of length n (0..126).
func TagForShortString(n int) byte { return TagShortStringBase + byte(n) }
