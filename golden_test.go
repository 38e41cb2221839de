package velocypack

import (
	"encoding/hex"
	"testing"

	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/value"
	"github.com/stretchr/testify/require"
)

// mustHex decodes a space-separated hex string into bytes, for readable
// golden vectors.
func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	clean := make([]byte, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			continue
		}
		clean = append(clean, byte(r))
	}
	b, err := hex.DecodeString(string(clean))
	require.NoError(t, err)

	return b
}

// goldenCase pairs one spec §8 hex vector with the value.Value it
// represents, both directions.
type goldenCase struct {
	name string
	hex  string
	want value.Value
}

func goldenCases() []goldenCase {
	return []goldenCase{
		{"false", "19", value.Bool(false)},
		{"true", "1a", value.Bool(true)},
		{"null", "18", value.Null()},
		{"double-1.0", "1b 00 00 00 00 00 00 f0 3f", value.Double(1.0)},
		{"uint-255", "28 ff", value.Uint(255)},
		{"uint-max64", "2f ff ff ff ff ff ff ff ff", value.Uint(1<<64 - 1)},
		{"int--128", "20 80", value.Int(-128)},
		{"int--32768", "21 00 80", value.Int(-32768)},
		{"int--1", "3f", value.Int(-1)},
		{"string-foo", "43 66 6f 6f", value.String("foo")},
		{"string-empty", "40", value.String("")},
		{"array-equal-length", "02 05 31 32 33", value.Array(value.Uint(1), value.Uint(2), value.Uint(3))},
		{"object-empty", "0a", value.Object()},
	}
}

func TestGoldenDecode(t *testing.T) {
	for _, c := range goldenCases() {
		t.Run(c.name, func(t *testing.T) {
			got, remaining, err := Decode(mustHex(t, c.hex))
			require.NoError(t, err)
			require.Empty(t, remaining)
			requireValueEqual(t, c.want, got)
		})
	}
}

func TestGoldenEncode(t *testing.T) {
	for _, c := range goldenCases() {
		t.Run(c.name, func(t *testing.T) {
			got, err := Encode(c.want)
			require.NoError(t, err)
			require.Equal(t, mustHex(t, c.hex), got)
		})
	}
}

// TestGoldenIndexedArray covers the indexed (0x06-family) encoding of
// the same logical array spec §8 gives in equal-length form, verifying
// the decoder accepts both representations of [1, 2, 3].
func TestGoldenIndexedArray(t *testing.T) {
	got, _, err := Decode(mustHex(t, "06 09 03 31 32 33 03 04 05"))
	require.NoError(t, err)
	requireValueEqual(t, value.Array(value.Uint(1), value.Uint(2), value.Uint(3)), got)
}

func TestGoldenCompactArray(t *testing.T) {
	got, _, err := Decode(mustHex(t, "13 06 31 32 33 03"))
	require.NoError(t, err)
	requireValueEqual(t, value.Array(value.Uint(1), value.Uint(2), value.Uint(3)), got)
}

func TestGoldenObject(t *testing.T) {
	got, _, err := Decode(mustHex(t, "0b 0b 02 41 61 31 41 62 32 03 06"))
	require.NoError(t, err)

	a, ok := got.Get("a")
	require.True(t, ok)
	require.Equal(t, uint64(1), a.AsUint())

	b, ok := got.Get("b")
	require.True(t, ok)
	require.Equal(t, uint64(2), b.AsUint())
}

func TestGoldenObjectEncode(t *testing.T) {
	got, err := Encode(value.Object(value.P("a", value.Uint(1)), value.P("b", value.Uint(2))))
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "0b 0b 02 41 61 31 41 62 32 03 06"), got)
}

func TestTrailingBytes(t *testing.T) {
	data := append(mustHex(t, "18"), 0x00, 0x00)
	_, err := DecodeAll(data)
	require.Error(t, err)

	var trailing *errs.TrailingBytesError
	require.ErrorAs(t, err, &trailing)
	require.Equal(t, 2, trailing.N)
}

// requireValueEqual compares two value.Value trees structurally, since
// value.Value is not a simple comparable struct (it may hold slices).
func requireValueEqual(t *testing.T, want, got value.Value) {
	t.Helper()
	require.Equal(t, want.Kind(), got.Kind())

	switch want.Kind() {
	case value.KindNull:
	case value.KindBool:
		require.Equal(t, want.AsBool(), got.AsBool())
	case value.KindDouble:
		require.Equal(t, want.AsDouble(), got.AsDouble())
	case value.KindInt:
		require.Equal(t, want.AsInt(), got.AsInt())
	case value.KindUint:
		require.Equal(t, want.AsUint(), got.AsUint())
	case value.KindString:
		require.Equal(t, want.AsString(), got.AsString())
	case value.KindArray:
		require.Equal(t, want.Len(), got.Len())
		for i := range want.Items() {
			requireValueEqual(t, want.Items()[i], got.Items()[i])
		}
	case value.KindObject:
		require.Equal(t, want.Len(), got.Len())
		for _, p := range want.Pairs() {
			gv, ok := got.Get(p.Key)
			require.True(t, ok, "missing key %q", p.Key)
			requireValueEqual(t, p.Value, gv)
		}
	}
}
