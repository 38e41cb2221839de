package store

import (
	"testing"

	"github.com/arloliu/velocypack/value"
	"github.com/stretchr/testify/require"
)

func TestBlobStorePutGetRoundTrip(t *testing.T) {
	s := NewBlobStore(NewNoOpCodec())

	v := value.Object(
		value.P("name", value.String("vpack")),
		value.P("count", value.Uint(3)),
	)

	id, err := s.Put(v)
	require.NoError(t, err)

	got, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, value.KindObject, got.Kind())

	name, ok := got.Get("name")
	require.True(t, ok)
	require.Equal(t, "vpack", name.AsString())
}

func TestBlobStoreDedupsIdenticalEncodings(t *testing.T) {
	s := NewBlobStore(NewNoOpCodec())

	v1 := value.Array(value.Int(1), value.Int(2), value.Int(3))
	v2 := value.Array(value.Int(1), value.Int(2), value.Int(3))

	id1, err := s.Put(v1)
	require.NoError(t, err)
	id2, err := s.Put(v2)
	require.NoError(t, err)

	require.Equal(t, id1, id2)
	require.Equal(t, 1, s.Len())
	require.False(t, s.HasCollision())
}

func TestBlobStoreGetMissing(t *testing.T) {
	s := NewBlobStore(NewNoOpCodec())
	_, err := s.Get(12345)
	require.Error(t, err)
}

func TestBlobStoreWithZstdCodec(t *testing.T) {
	s := NewBlobStore(NewZstdCodec())

	v := value.Array(value.String("hello world, this is a test payload for compression"))
	id, err := s.Put(v)
	require.NoError(t, err)

	got, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, "hello world, this is a test payload for compression", got.Items()[0].AsString())
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		c, err := CreateCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, c)
	}

	_, err := CreateCodec(CompressionType(99))
	require.Error(t, err)
}
