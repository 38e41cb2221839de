package encode

import (
	"github.com/arloliu/velocypack/endian"
	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/internal/options"
)

// defaultMaxDepth bounds container nesting the same way decode.Cursor does.
const defaultMaxDepth = 128

// objEntry is one pending object member: its encoded key and value bytes.
type objEntry struct {
	key []byte
	val []byte
}

// frame is one open container on the builder's stack.
type frame struct {
	isObject      bool
	elems         [][]byte
	entries       []objEntry
	pendingKey    []byte
	hasPendingKey bool
}

// Builder accumulates VelocyPack-encoded values. A Builder produces exactly
// one top-level value; construct a new Builder for each value encoded.
type Builder struct {
	engine endian.EndianEngine
	stack  []*frame
	result []byte
	done   bool

	maxDepth int
}

// Option configures a Builder at construction time.
type Option = options.Option[*Builder]

// WithMaxDepth overrides the default container nesting limit.
func WithMaxDepth(n int) Option {
	return options.NoError[*Builder](func(b *Builder) { b.maxDepth = n })
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		engine:   endian.GetLittleEndianEngine(),
		maxDepth: defaultMaxDepth,
	}

	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Bytes returns the completed top-level value's encoded bytes. It panics if
// no value has been completed yet (Open* left unclosed, or nothing was
// encoded at all) — a programmer error, not a data error.
func (b *Builder) Bytes() []byte {
	if !b.done {
		panic("encode: builder has no completed value")
	}

	return b.result
}

// Null appends a null value.
func (b *Builder) Null() error { return b.emit(encodeNull()) }

// Bool appends a boolean value.
func (b *Builder) Bool(v bool) error { return b.emit(encodeBool(v)) }

// Double appends an IEEE-754 binary64 value.
func (b *Builder) Double(v float64) error { return b.emit(encodeDouble(v, b.engine)) }

// Int appends a signed-integer value, using the small-integer tag or the
// narrowest multi-byte width that represents v.
func (b *Builder) Int(v int64) error { return b.emit(encodeInt(v)) }

// Uint appends an unsigned-integer value, using the small-integer tag or
// the narrowest multi-byte width that represents v.
func (b *Builder) Uint(v uint64) error { return b.emit(encodeUint(v)) }

// String appends a string value, using the short-string tag when the
// UTF-8 byte length fits (0..126 bytes) and the long-string tag otherwise.
func (b *Builder) String(v string) error { return b.emit(encodeString(v, b.engine)) }

// OpenArray begins a new array. Elements are added with the scalar
// methods and nested Open*/Close* calls until the matching CloseArray.
func (b *Builder) OpenArray() error {
	return b.push(&frame{})
}

// CloseArray finishes the innermost open array and appends its encoded
// bytes to whatever container (or top level) is next on the stack.
func (b *Builder) CloseArray() error {
	f, err := b.pop(false)
	if err != nil {
		return err
	}

	return b.emit(buildArray(f.elems, b.engine))
}

// OpenObject begins a new object. Members are added with Key followed by
// one value-producing call, repeated until the matching CloseObject.
func (b *Builder) OpenObject() error {
	return b.push(&frame{isObject: true})
}

// Key sets the key for the next member of the innermost open object. It
// must be followed by exactly one value-producing call before the next
// Key or CloseObject.
func (b *Builder) Key(key string) error {
	top := b.top()
	if top == nil || !top.isObject {
		panic("encode: Key called with no open object")
	}
	if top.hasPendingKey {
		panic("encode: Key called twice with no intervening value")
	}

	top.pendingKey = encodeString(key, b.engine)
	top.hasPendingKey = true

	return nil
}

// CloseObject finishes the innermost open object and appends its encoded
// bytes to whatever container (or top level) is next on the stack. The
// index table is emitted in lexicographic order of key bytes (spec §4.5);
// the payload stays in the order Key/value calls were made.
func (b *Builder) CloseObject() error {
	f, err := b.pop(true)
	if err != nil {
		return err
	}
	if f.hasPendingKey {
		panic("encode: CloseObject called with a key but no value")
	}

	return b.emit(buildObject(f.entries, b.engine))
}

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}

	return b.stack[len(b.stack)-1]
}

func (b *Builder) push(f *frame) error {
	if b.maxDepth > 0 && len(b.stack) >= b.maxDepth {
		return errs.ErrMaxDepthExceeded
	}

	b.stack = append(b.stack, f)

	return nil
}

func (b *Builder) pop(wantObject bool) (*frame, error) {
	if len(b.stack) == 0 {
		panic("encode: Close called with no matching Open")
	}

	f := b.stack[len(b.stack)-1]
	if f.isObject != wantObject {
		panic("encode: Close called on the wrong container kind")
	}

	b.stack = b.stack[:len(b.stack)-1]

	return f, nil
}

// emit delivers one fully-encoded value (scalar or just-closed container)
// to whatever is waiting for it: the enclosing array, the enclosing
// object's pending key, or — if the stack is empty — the builder's final
// result.
func (b *Builder) emit(data []byte) error {
	top := b.top()
	if top == nil {
		if b.done {
			panic("encode: builder already has a completed top-level value")
		}

		b.result = data
		b.done = true

		return nil
	}

	if top.isObject {
		if !top.hasPendingKey {
			panic("encode: object value with no preceding key")
		}

		top.entries = append(top.entries, objEntry{key: top.pendingKey, val: data})
		top.pendingKey = nil
		top.hasPendingKey = false
	} else {
		top.elems = append(top.elems, data)
	}

	return nil
}
