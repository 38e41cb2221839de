package store

// ZstdCodec compresses with Zstandard, trading compression/decompression
// speed for the best ratio of the four codecs — the right choice for
// cold-storage blobs that are written once and read rarely. Compress skips
// the algorithm entirely for payloads under passthroughThreshold, the same
// small-blob convention LZ4Codec and S2Codec apply.
//
// Compress/Decompress are implemented in zstd_pure.go (pure-Go,
// klauspost/compress/zstd) under the default build. A cgo-backed
// valyala/gozstd path exists in zstd_cgo.go behind a build tag this repo
// doesn't enable by default — see DESIGN.md.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstd codec with default settings.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
