package store

import (
	"testing"

	"github.com/arloliu/velocypack/errs"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, repeated: " +
		"the quick brown fox jumps over the lazy dog")

	codecs := map[string]Codec{
		"noop": NewNoOpCodec(),
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	}

	for name, c := range codecs {
		compressed, err := c.Compress(payload)
		require.NoError(t, err, name)

		decompressed, err := c.Decompress(compressed)
		require.NoError(t, err, name)
		require.Equal(t, payload, decompressed, name)
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, c := range []Codec{NewZstdCodec(), NewS2Codec(), NewLZ4Codec()} {
		out, err := c.Compress(nil)
		require.NoError(t, err)
		_ = out
	}
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "none", CompressionNone.String())
	require.Equal(t, "zstd", CompressionZstd.String())
	require.Equal(t, "s2", CompressionS2.String())
	require.Equal(t, "lz4", CompressionLZ4.String())
}

// TestCodecSkipsCompressionBelowThreshold guards the small-blob convention
// shared by the three real codecs: a payload under passthroughThreshold
// round-trips through the raw marker path rather than the algorithm, and
// the compressed form is exactly one byte longer than the input.
func TestCodecSkipsCompressionBelowThreshold(t *testing.T) {
	payload := []byte("short")
	require.Less(t, len(payload), passthroughThreshold)

	for name, c := range map[string]Codec{
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	} {
		compressed, err := c.Compress(payload)
		require.NoError(t, err, name)
		require.Equal(t, len(payload)+1, len(compressed), name)
		require.Equal(t, byte(markerRaw), compressed[0], name)

		decompressed, err := c.Decompress(compressed)
		require.NoError(t, err, name)
		require.Equal(t, payload, decompressed, name)
	}
}

// TestCodecCompressesAboveThreshold guards the other side of the same
// convention: a payload at or above passthroughThreshold is actually run
// through the algorithm, not just tagged raw.
func TestCodecCompressesAboveThreshold(t *testing.T) {
	payload := make([]byte, passthroughThreshold*4)
	for i := range payload {
		payload[i] = byte(i % 7)
	}

	for name, c := range map[string]Codec{
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	} {
		compressed, err := c.Compress(payload)
		require.NoError(t, err, name)
		require.Equal(t, byte(markerCompressed), compressed[0], name)

		decompressed, err := c.Decompress(compressed)
		require.NoError(t, err, name)
		require.Equal(t, payload, decompressed, name)
	}
}

// TestCodecDecompressRejectsUnknownMarker guards unwrapPassthrough's
// default case: a leading byte that is neither marker is reported as a
// CodecError rather than passed on to the underlying algorithm.
func TestCodecDecompressRejectsUnknownMarker(t *testing.T) {
	for name, c := range map[string]Codec{
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	} {
		_, err := c.Decompress([]byte{0xff, 0x01, 0x02})
		require.Error(t, err, name)

		var codecErr *errs.CodecError
		require.ErrorAs(t, err, &codecErr, name)
		require.Equal(t, name, codecErr.Algo)
		require.Equal(t, "decompress", codecErr.Op)
	}
}
