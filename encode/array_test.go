package encode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeEmptyArray(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.OpenArray())
	require.NoError(t, b.CloseArray())
	require.Equal(t, []byte{0x01}, b.Bytes())
}

func TestEncodeEqualLengthArray(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.OpenArray())
	for _, v := range []int64{1, 2, 3} {
		require.NoError(t, b.Int(v))
	}
	require.NoError(t, b.CloseArray())

	require.Equal(t, []byte{0x02, 0x05, 0x31, 0x32, 0x33}, b.Bytes())
}

func TestEncodeIndexedArray(t *testing.T) {
	// Mixed scalar widths force different child lengths, so the builder
	// must fall back to an indexed (0x06..0x09) variant.
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.OpenArray())
	require.NoError(t, b.Int(1))
	require.NoError(t, b.String("foo"))
	require.NoError(t, b.CloseArray())

	got := b.Bytes()
	require.Equal(t, byte(0x06), got[0])
	require.False(t, equalLength([][]byte{{0x31}, {0x43, 'f', 'o', 'o'}}))
}

func TestEncodeNestedArray(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.OpenArray())
	require.NoError(t, b.OpenArray())
	require.NoError(t, b.Int(1))
	require.NoError(t, b.CloseArray())
	require.NoError(t, b.OpenArray())
	require.NoError(t, b.Int(2))
	require.NoError(t, b.CloseArray())
	require.NoError(t, b.CloseArray())

	// Two equal-length one-element arrays are themselves equal-length
	// children, so the outer array should also skip its index table.
	got := b.Bytes()
	require.Equal(t, byte(0x02), got[0])
}

func TestChooseWidthPicksNarrowest(t *testing.T) {
	require.Equal(t, 1, chooseWidth(1, 10, false, 0))
	require.Equal(t, 2, chooseWidth(1, 1<<8, false, 0))
}

// TestEqualLengthArrayTagWidth8 guards against buildEqualLengthArray
// panicking on a payload wide enough that chooseWidth legitimately
// returns 8 — widthIndex only covers 1/2/4, so the w == 8 case must be
// special-cased rather than routed through it.
func TestEqualLengthArrayTagWidth8(t *testing.T) {
	require.Equal(t, byte(0x05), equalLengthArrayTag(8))
	require.Equal(t, byte(0x02), equalLengthArrayTag(1))
	require.Equal(t, byte(0x03), equalLengthArrayTag(2))
	require.Equal(t, byte(0x04), equalLengthArrayTag(4))
	require.NotPanics(t, func() { equalLengthArrayTag(8) })
}
