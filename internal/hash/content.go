// Package hash provides the content-hashing primitive used to
// content-address encoded VelocyPack blobs.
package hash

import "github.com/cespare/xxhash/v2"

// Content computes the xxHash64 of an encoded VelocyPack value.
//
// Two byte-identical encodings always hash to the same id; two
// different encodings hash to the same id only on a genuine (and
// vanishingly unlikely) xxHash64 collision, which collision.Tracker
// is responsible for catching.
func Content(data []byte) uint64 {
	return xxhash.Sum64(data)
}
