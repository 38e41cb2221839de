package decode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorAtEqualLengthArray(t *testing.T) {
	c := mustCursor(t, []byte{0x02, 0x05, 0x31, 0x32, 0x33})

	v, err := c.At(1)
	require.NoError(t, err)
	require.Equal(t, uint64(2), v.AsUint())
}

func TestCursorAtIndexedArray(t *testing.T) {
	c := mustCursor(t, []byte{0x06, 0x09, 0x03, 0x31, 0x32, 0x33, 0x03, 0x04, 0x05})

	v, err := c.At(2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), v.AsUint())
}

func TestCursorAtCompactArray(t *testing.T) {
	c := mustCursor(t, []byte{0x13, 0x06, 0x31, 0x32, 0x33, 0x03})

	v, err := c.At(0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v.AsUint())
}

func TestCursorAtOutOfRange(t *testing.T) {
	c := mustCursor(t, []byte{0x02, 0x05, 0x31, 0x32, 0x33})

	_, err := c.At(5)
	require.Error(t, err)
}

func TestCursorGetSortedObject(t *testing.T) {
	c := mustCursor(t, []byte{0x0b, 0x0b, 0x02, 0x41, 0x61, 0x31, 0x41, 0x62, 0x32, 0x03, 0x06})

	v, ok, err := c.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(2), v.AsUint())

	_, ok, err = c.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCursorGetCompactObject(t *testing.T) {
	payload := []byte{0x41, 0x61, 0x31, 0x41, 0x62, 0x32}
	data := append([]byte{0x14}, byte(2+len(payload)+1))
	data = append(data, payload...)
	data = append(data, 0x02)

	c := mustCursor(t, data)

	v, ok, err := c.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(1), v.AsUint())
}

func TestCursorGetEmptyObject(t *testing.T) {
	c := mustCursor(t, []byte{0x0a})

	_, ok, err := c.Get("anything")
	require.NoError(t, err)
	require.False(t, ok)
}
