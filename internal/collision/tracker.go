// Package collision tracks content-hash collisions for a content-addressed
// blob store, distinguishing a dedup hit (same hash, same bytes) from a
// genuine hash collision (same hash, different bytes).
package collision

import (
	"bytes"

	"github.com/arloliu/velocypack/errs"
)

// Tracker maps content hashes to the byte content that produced them, so a
// store can tell a repeat Put of identical content apart from two different
// values that happen to share an xxHash64 sum.
type Tracker struct {
	contents     map[uint64][]byte
	hasCollision bool
}

// NewTracker creates a new empty collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		contents: make(map[uint64][]byte),
	}
}

// Check records data under hash and reports how it relates to anything
// already tracked under that hash.
//
//   - dup is true when hash was already associated with byte-identical data
//     (a dedup hit; the caller should reuse the existing entry).
//   - err is errs.ErrHashCollision when hash was already associated with
//     different data.
func (t *Tracker) Check(hash uint64, data []byte) (dup bool, err error) {
	existing, ok := t.contents[hash]
	if !ok {
		t.contents[hash] = append([]byte(nil), data...)
		return false, nil
	}

	if bytes.Equal(existing, data) {
		return true, nil
	}

	t.hasCollision = true

	return false, errs.ErrHashCollision
}

// HasCollision reports whether a genuine hash collision was ever observed.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of distinct hashes tracked.
func (t *Tracker) Count() int {
	return len(t.contents)
}

// Reset clears all tracked hashes and the collision flag, allowing the
// tracker to be reused.
func (t *Tracker) Reset() {
	for k := range t.contents {
		delete(t.contents, k)
	}
	t.hasCollision = false
}
