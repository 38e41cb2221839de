// Package endian provides the byte-order abstraction used by the codec to
// read and write multibyte fields.
//
// VelocyPack's wire format is little-endian only (spec §3: "Multibyte
// integers are little-endian"), so this package has a single concrete
// engine. The interface-based plumbing is kept anyway: decode.Cursor and
// encode.Builder each hold the EndianEngine returned by
// GetLittleEndianEngine, and the encode helpers receive it as a
// parameter, rather than calling binary.LittleEndian directly.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte-order operations.
//
// binary.LittleEndian satisfies this interface, so GetLittleEndianEngine
// below allocates nothing.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine VelocyPack's wire format requires.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
