// Package value provides the in-memory value tree the codec decodes into
// and encodes from.
//
// spec §9 calls out two valid designs for the decode side: a polymorphic
// visitor interface, or an emitted value-tree variant. This core has no
// external data-binding layer (spec §1 places that out of scope), so the
// value tree is the simpler of the two and is what the top-level
// convenience API (velocypack.Decode/Encode) works with; decode.Cursor
// still drives the lower-level Visitor interface underneath it.
package value

import "fmt"

// Kind identifies which field of a Value is meaningful.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindDouble
	KindInt
	KindUint
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindDouble:
		return "double"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Pair is one key/value member of an object, in the order it was added.
type Pair struct {
	Key   string
	Value Value
}

// Value is a tagged union holding one decoded (or to-be-encoded)
// VelocyPack value.
type Value struct {
	kind   Kind
	b      bool
	f      float64
	i      int64
	u      uint64
	s      string
	items  []Value
	pairs  []Pair
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Double returns a double value.
func Double(f float64) Value { return Value{kind: KindDouble, f: f} }

// Int returns a signed-integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Uint returns an unsigned-integer value.
func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array value containing items, in order.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// Object returns an object value containing pairs, in insertion order.
func Object(pairs ...Pair) Value {
	return Value{kind: KindObject, pairs: pairs}
}

// P is a convenience constructor for an object Pair.
func P(key string, v Value) Pair { return Pair{Key: key, Value: v} }

// AsBool returns the boolean payload. Panics if Kind() != KindBool.
func (v Value) AsBool() bool { v.mustBe(KindBool); return v.b }

// AsDouble returns the double payload. Panics if Kind() != KindDouble.
func (v Value) AsDouble() float64 { v.mustBe(KindDouble); return v.f }

// AsInt returns the signed-integer payload. Panics if Kind() != KindInt.
func (v Value) AsInt() int64 { v.mustBe(KindInt); return v.i }

// AsUint returns the unsigned-integer payload. Panics if Kind() != KindUint.
func (v Value) AsUint() uint64 { v.mustBe(KindUint); return v.u }

// AsString returns the string payload. Panics if Kind() != KindString.
func (v Value) AsString() string { v.mustBe(KindString); return v.s }

// Items returns an array's elements. Panics if Kind() != KindArray.
func (v Value) Items() []Value { v.mustBe(KindArray); return v.items }

// Pairs returns an object's members, in insertion order. Panics if
// Kind() != KindObject.
func (v Value) Pairs() []Pair { v.mustBe(KindObject); return v.pairs }

// Get returns the value stored under key and true, or the zero Value and
// false if key is absent. Panics if Kind() != KindObject.
func (v Value) Get(key string) (Value, bool) {
	v.mustBe(KindObject)
	for _, p := range v.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}

	return Value{}, false
}

// Len returns the number of elements (array) or members (object). Panics
// for any other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.pairs)
	default:
		panic(fmt.Sprintf("value: Len called on %s", v.kind))
	}
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("value: expected %s, got %s", k, v.kind))
	}
}
