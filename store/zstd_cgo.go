//go:build nobuild

package store

import "github.com/valyala/gozstd"

// Compress/Decompress under the cgo-backed gozstd binding. Kept for
// parity with the teacher repo's compress/zstd_cgo.go but not built by
// default (see DESIGN.md): gozstd requires a C toolchain and a vendored
// libzstd, which this module's default build does not assume.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return wrapPassthrough("zstd", data, func(data []byte) ([]byte, error) {
		return gozstd.CompressLevel(nil, data, 3), nil
	})
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	return unwrapPassthrough("zstd", data, func(data []byte) ([]byte, error) {
		return gozstd.Decompress(nil, data)
	})
}
