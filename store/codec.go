// Package store provides a content-addressed blob store for encoded
// VelocyPack values, the domain-stack component that exercises this
// module's hashing and compression dependencies (go.mod's
// cespare/xxhash, klauspost/compress, pierrec/lz4, valyala/gozstd) the
// way ArangoDB itself uses VelocyPack as an on-disk document format:
// encoded values are hashed for dedup and optionally compressed at rest.
package store

import (
	"fmt"

	"github.com/arloliu/velocypack/errs"
)

// passthroughThreshold is the payload size, in bytes, below which a real
// codec skips its algorithm entirely and stores the blob raw. BlobStore's
// workload is dominated by small encoded VelocyPack documents (a handful of
// scalars, a short object) where a general-purpose compressor's own framing
// overhead can exceed anything it saves — the same reasoning NoOpCodec
// documents for callers who know their values are already small, applied
// automatically inside the real codecs instead of left to the caller to
// opt into. A one-byte marker records which path a given blob took so
// Decompress can reverse it without sniffing the payload itself.
const passthroughThreshold = 64

const (
	markerRaw byte = iota
	markerCompressed
)

// wrapPassthrough applies the shared small-blob convention described by
// passthroughThreshold: data under the threshold is stored behind a raw
// marker; everything else is run through compress and stored behind a
// compressed marker. algo names the codec for CodecError.
func wrapPassthrough(algo string, data []byte, compress func([]byte) ([]byte, error)) ([]byte, error) {
	if len(data) < passthroughThreshold {
		out := make([]byte, 1+len(data))
		out[0] = markerRaw
		copy(out[1:], data)

		return out, nil
	}

	compressed, err := compress(data)
	if err != nil {
		return nil, &errs.CodecError{Op: "compress", Algo: algo, Err: err}
	}

	out := make([]byte, 1+len(compressed))
	out[0] = markerCompressed
	copy(out[1:], compressed)

	return out, nil
}

// unwrapPassthrough reverses wrapPassthrough, routing through decompress
// only for blobs marked compressed.
func unwrapPassthrough(algo string, data []byte, decompress func([]byte) ([]byte, error)) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	marker, payload := data[0], data[1:]

	switch marker {
	case markerRaw:
		return append([]byte(nil), payload...), nil
	case markerCompressed:
		out, err := decompress(payload)
		if err != nil {
			return nil, &errs.CodecError{Op: "decompress", Algo: algo, Err: err}
		}

		return out, nil
	default:
		return nil, &errs.CodecError{Op: "decompress", Algo: algo, Err: fmt.Errorf("unrecognized blob marker 0x%02x", marker)}
	}
}

// CompressionType selects the at-rest compression algorithm a BlobStore
// applies to encoded VelocyPack bytes before storing them.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses a byte slice, returning a newly allocated result.
// The input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transform.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory that returns the Codec for compressionType.
func CreateCodec(compressionType CompressionType) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCodec(), nil
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionS2:
		return NewS2Codec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("store: unsupported compression type: %s", compressionType)
	}
}
