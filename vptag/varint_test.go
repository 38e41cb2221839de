package vptag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwardVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 20, 1<<56 - 1, 1<<63 + 5}
	for _, v := range values {
		buf := AppendForwardVarint(nil, v)
		got, n, err := ReadForwardVarint(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestForwardVarintSingleByteRange(t *testing.T) {
	buf := AppendForwardVarint(nil, 100)
	require.Len(t, buf, 1)
	require.Equal(t, byte(100), buf[0])
}

func TestForwardVarintEOF(t *testing.T) {
	_, _, err := ReadForwardVarint([]byte{0x80})
	require.Error(t, err)
}

func TestReverseVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 20, 1<<56 - 1}
	for _, v := range values {
		buf := AppendReverseVarint(nil, v)
		got, n, err := ReadReverseVarint(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestReverseVarintWithinContainer(t *testing.T) {
	// Reverse varint decoded from the tail of a larger region, as it
	// appears inside a compact container.
	region := append([]byte{0xaa, 0xbb, 0xcc}, AppendReverseVarint(nil, 300)...)
	got, n, err := ReadReverseVarint(region)
	require.NoError(t, err)
	require.Equal(t, uint64(300), got)
	require.Equal(t, 2, n)
}

func TestReverseVarintEOF(t *testing.T) {
	_, _, err := ReadReverseVarint([]byte{0x80})
	require.Error(t, err)
}
