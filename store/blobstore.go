package store

import (
	"fmt"
	"sync"

	"github.com/arloliu/velocypack/decode"
	"github.com/arloliu/velocypack/encode"
	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/internal/collision"
	"github.com/arloliu/velocypack/internal/hash"
	"github.com/arloliu/velocypack/internal/pool"
	"github.com/arloliu/velocypack/value"
)

// BlobStore content-addresses encoded VelocyPack values: Put encodes and
// hashes a value.Value, returning an id any later Get can use to recover
// it. Two Puts of byte-identical encodings dedup to the same id; a
// genuine xxHash64 collision between different encodings is reported as
// an error rather than silently merging two distinct documents.
type BlobStore struct {
	mu         sync.RWMutex
	codec      Codec
	collisions *collision.Tracker
	records    map[uint64][]byte
}

// NewBlobStore creates a BlobStore that compresses stored blobs with
// codec. Pass store.NewNoOpCodec() to store values uncompressed.
func NewBlobStore(codec Codec) *BlobStore {
	return &BlobStore{
		codec:      codec,
		collisions: collision.NewTracker(),
		records:    make(map[uint64][]byte),
	}
}

// Put encodes v, compresses the result with the store's codec, and
// stores it under a content hash of the uncompressed encoding. It
// returns the existing id without re-storing if v's canonical encoding
// was already present.
func (s *BlobStore) Put(v value.Value) (uint64, error) {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	b, err := encode.NewBuilder()
	if err != nil {
		return 0, err
	}
	if err := encode.FromValue(b, v); err != nil {
		return 0, err
	}

	encoded := b.Bytes()
	id := hash.Content(encoded)

	s.mu.Lock()
	defer s.mu.Unlock()

	dup, err := s.collisions.Check(id, encoded)
	if err != nil {
		return 0, fmt.Errorf("store: put: %w", err)
	}
	if dup {
		return id, nil
	}

	compressed, err := s.codec.Compress(encoded)
	if err != nil {
		return 0, fmt.Errorf("store: compress: %w", err)
	}

	buf.MustWrite(compressed)
	s.records[id] = append([]byte(nil), buf.Bytes()...)

	return id, nil
}

// Get decodes the value stored under id.
func (s *BlobStore) Get(id uint64) (value.Value, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		return value.Value{}, errs.ErrBlobNotFound
	}

	raw, err := s.codec.Decompress(rec)
	if err != nil {
		return value.Value{}, fmt.Errorf("store: decompress: %w", err)
	}

	v, err := decode.ValueAll(raw)
	if err != nil {
		return value.Value{}, fmt.Errorf("store: decode: %w", err)
	}

	return v, nil
}

// Len returns the number of distinct blobs currently stored.
func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// HasCollision reports whether this store ever observed two different
// encodings hashing to the same id.
func (s *BlobStore) HasCollision() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collisions.HasCollision()
}
