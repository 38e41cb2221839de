package store

import "github.com/klauspost/compress/s2"

// S2Codec balances compression ratio and speed — a middle ground between
// LZ4Codec and ZstdCodec for blobs on a latency-sensitive read path.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec { return S2Codec{} }

func (c S2Codec) Compress(data []byte) ([]byte, error) {
	return wrapPassthrough("s2", data, func(data []byte) ([]byte, error) {
		return s2.Encode(nil, data), nil
	})
}

func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	return unwrapPassthrough("s2", data, func(data []byte) ([]byte, error) {
		return s2.Decode(nil, data)
	})
}
