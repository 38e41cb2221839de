package store

// NoOpCodec bypasses compression unconditionally, returning the input
// unchanged with no marker byte. Useful when the caller already knows its
// values are small or incompressible (e.g. short scalar documents, where
// compression overhead outweighs any saving) — the other three codecs
// reach the same outcome automatically, per blob, via passthroughThreshold.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a no-op codec.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (c NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (c NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
