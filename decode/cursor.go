// Package decode implements the VelocyPack cursor: a position in a byte
// slice plus the dispatch logic that drives a Visitor through one value.
//
// Cursor reads directly out of the caller's slice; string payloads are
// copied out into Go strings. Nested containers are tracked with a stack
// of start offsets (pushed on open, popped on close), whose depth is
// checked against the configured nesting limit. The random-access helpers
// (Cursor.At, Cursor.Get) work from the cursor's current position and
// read the index tables directly, without re-walking the whole value.
package decode

import (
	"github.com/arloliu/velocypack/endian"
	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/internal/options"
)

// defaultMaxDepth bounds container nesting so a crafted or corrupt input
// with an index table pointing into itself cannot recurse forever.
const defaultMaxDepth = 128

// Cursor walks a VelocyPack-encoded byte slice, dispatching each value it
// finds to a Visitor.
type Cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine

	containerStarts []int

	maxDepth     int
	validateUTF8 bool
}

// Option configures a Cursor at construction time.
type Option = options.Option[*Cursor]

// WithMaxDepth overrides the default container nesting limit.
func WithMaxDepth(n int) Option {
	return options.NoError[*Cursor](func(c *Cursor) { c.maxDepth = n })
}

// WithUTF8Validation toggles strict UTF-8 validation of string payloads.
// Enabled by default.
func WithUTF8Validation(enabled bool) Option {
	return options.NoError[*Cursor](func(c *Cursor) { c.validateUTF8 = enabled })
}

// NewCursor creates a Cursor positioned at the start of data.
func NewCursor(data []byte, opts ...Option) (*Cursor, error) {
	c := &Cursor{
		data:         data,
		engine:       endian.GetLittleEndianEngine(),
		maxDepth:     defaultMaxDepth,
		validateUTF8: true,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Pos returns the cursor's current byte offset into its input.
func (c *Cursor) Pos() int { return c.pos }

// Decode dispatches the value at the cursor's current position to v and
// returns the unconsumed remainder of the input.
func (c *Cursor) Decode(v Visitor) ([]byte, error) {
	if err := c.decodeValue(v); err != nil {
		return nil, err
	}

	return c.data[c.pos:], nil
}

// DecodeAll decodes exactly one value from data and reports an error if
// any bytes remain afterward.
func DecodeAll(data []byte, v Visitor) error {
	c, err := NewCursor(data)
	if err != nil {
		return err
	}

	remaining, err := c.Decode(v)
	if err != nil {
		return err
	}

	if len(remaining) > 0 {
		return &errs.TrailingBytesError{N: len(remaining)}
	}

	return nil
}

func (c *Cursor) need(n int) error {
	if len(c.data)-c.pos < n {
		return errs.ErrEOF
	}

	return nil
}

func (c *Cursor) pushContainer(start int) error {
	if c.maxDepth > 0 && len(c.containerStarts) >= c.maxDepth {
		return errs.ErrMaxDepthExceeded
	}

	c.containerStarts = append(c.containerStarts, start)

	return nil
}

func (c *Cursor) popContainer() {
	c.containerStarts = c.containerStarts[:len(c.containerStarts)-1]
}

// skipPadding advances past a run of 0x00 bytes. 0x00 is not a valid type
// byte (spec §4.1), so a run of it between a length field and the first
// element can never be mistaken for the start of a value.
func (c *Cursor) skipPadding() {
	for c.pos < len(c.data) && c.data[c.pos] == 0x00 {
		c.pos++
	}
}

// readUintWidth zero-extends the w little-endian bytes at the front of b
// into a uint64. Callers must bounds-check len(b) >= w first.
func readUintWidth(b []byte, w int) uint64 {
	var u uint64
	for i := 0; i < w; i++ {
		u |= uint64(b[i]) << (8 * i)
	}

	return u
}

// readSignedLE sign-extends the little-endian bytes in b (1..8 of them)
// into an int64.
func readSignedLE(b []byte) int64 {
	var u uint64
	for i, bb := range b {
		u |= uint64(bb) << (8 * i)
	}

	shift := uint(64 - 8*len(b))

	return int64(u<<shift) >> shift
}
