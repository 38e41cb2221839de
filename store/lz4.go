package store

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; they carry internal
// state worth reusing across Compress calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses with LZ4, favoring fast decompression over
// compression ratio — a reasonable default for blobs read far more often
// than written.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4 codec.
func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	return wrapPassthrough("lz4", data, c.compressBlock)
}

func (c LZ4Codec) compressBlock(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress reverses Compress's small-blob passthrough, then, for blobs
// that were actually compressed, uses an adaptive buffer sizing strategy
// since LZ4 block decompression needs a destination sized for the
// uncompressed data: it starts at 4x the compressed size and doubles on a
// short-buffer error, up to a 128MiB safety limit.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	return unwrapPassthrough("lz4", data, c.decompressBlock)
}

func (c LZ4Codec) decompressBlock(data []byte) ([]byte, error) {
	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2

				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
