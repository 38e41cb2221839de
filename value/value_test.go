package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarConstructors(t *testing.T) {
	require.Equal(t, KindNull, Null().Kind())
	require.True(t, Bool(true).AsBool())
	require.Equal(t, 1.5, Double(1.5).AsDouble())
	require.Equal(t, int64(-5), Int(-5).AsInt())
	require.Equal(t, uint64(5), Uint(5).AsUint())
	require.Equal(t, "foo", String("foo").AsString())
}

func TestArray(t *testing.T) {
	arr := Array(Int(1), Int(2), Int(3))
	require.Equal(t, KindArray, arr.Kind())
	require.Equal(t, 3, arr.Len())
	require.Equal(t, int64(2), arr.Items()[1].AsInt())
}

func TestObject(t *testing.T) {
	obj := Object(P("a", Int(1)), P("b", Int(2)))
	require.Equal(t, 2, obj.Len())

	got, ok := obj.Get("b")
	require.True(t, ok)
	require.Equal(t, int64(2), got.AsInt())

	_, ok = obj.Get("missing")
	require.False(t, ok)

	// Pairs preserve insertion order, independent of any later sorting
	// the encoder's index table applies.
	pairs := obj.Pairs()
	require.Equal(t, "a", pairs[0].Key)
	require.Equal(t, "b", pairs[1].Key)
}

func TestAccessorPanicsOnWrongKind(t *testing.T) {
	require.Panics(t, func() { Null().AsBool() })
	require.Panics(t, func() { Int(1).Items() })
}

func TestKindString(t *testing.T) {
	require.Equal(t, "object", KindObject.String())
	require.Equal(t, "unknown", Kind(255).String())
}
