package decode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type arrayVisitor struct {
	noopVisitor
	depth   int
	counts  []int
	uints   []uint64
}

func (a *arrayVisitor) BeginArray(count int) error {
	a.depth++
	a.counts = append(a.counts, count)
	return nil
}
func (a *arrayVisitor) EndArray() error { a.depth--; return nil }
func (a *arrayVisitor) VisitUint(u uint64) error {
	a.uints = append(a.uints, u)
	return nil
}

func TestDecodeEmptyArray(t *testing.T) {
	var v arrayVisitor
	_, err := mustCursor(t, []byte{0x01}).Decode(&v)
	require.NoError(t, err)
	require.Equal(t, []int{0}, v.counts)
	require.Empty(t, v.uints)
}

func TestDecodeEqualLengthArray(t *testing.T) {
	var v arrayVisitor
	_, err := mustCursor(t, []byte{0x02, 0x05, 0x31, 0x32, 0x33}).Decode(&v)
	require.NoError(t, err)
	require.Equal(t, []int{3}, v.counts)
	require.Equal(t, []uint64{1, 2, 3}, v.uints)
}

func TestDecodeIndexedArrayHeadCount(t *testing.T) {
	var v arrayVisitor
	_, err := mustCursor(t, []byte{0x06, 0x09, 0x03, 0x31, 0x32, 0x33, 0x03, 0x04, 0x05}).Decode(&v)
	require.NoError(t, err)
	require.Equal(t, []int{3}, v.counts)
	require.Equal(t, []uint64{1, 2, 3}, v.uints)
}

func TestDecodeCompactArray(t *testing.T) {
	var v arrayVisitor
	_, err := mustCursor(t, []byte{0x13, 0x06, 0x31, 0x32, 0x33, 0x03}).Decode(&v)
	require.NoError(t, err)
	require.Equal(t, []int{3}, v.counts)
	require.Equal(t, []uint64{1, 2, 3}, v.uints)
}

func TestDecodeNestedArray(t *testing.T) {
	// [ [1, 2, 3] ]
	inner := []byte{0x02, 0x05, 0x31, 0x32, 0x33}
	outer := append([]byte{0x02, byte(2 + len(inner))}, inner...)

	var v arrayVisitor
	_, err := mustCursor(t, outer).Decode(&v)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, v.counts)
	require.Equal(t, []uint64{1, 2, 3}, v.uints)
}
