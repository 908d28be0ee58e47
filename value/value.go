// Package value provides the dynamically shaped values produced by decoding a
// binary layout and consumed when encoding one. A Value is a closed tagged
// union: fixed-width signed and unsigned integers, raw bytes, text, ordered
// lists and ordered name/value maps. Accessors convert with explicit rules and
// return errors instead of panicking, so schema expressions can operate on
// decoded data without type assertions.
package value

import (
	"fmt"
	"math"
)

//go:generate stringer -type=Kind -linecomment

// Kind is the type of value held in a Value.
type Kind uint8

const (
	// KindInvalid is the neutral value. Skipped conditionals and no-op
	// fields register it.
	KindInvalid Kind = 0 // Invalid
	// KindInt is a signed integer of 1, 2, 4 or 8 bytes.
	KindInt Kind = 1 // Int
	// KindUint is an unsigned integer of 1, 2, 4 or 8 bytes.
	KindUint Kind = 2 // Uint
	// KindBytes is a raw byte sequence.
	KindBytes Kind = 3 // Bytes
	// KindString is decoded text.
	KindString Kind = 4 // String
	// KindList is an ordered list of Value.
	KindList Kind = 5 // List
	// KindMap is an ordered name to Value mapping.
	KindMap Kind = 6 // Map
)

// List is an ordered list of Value. Homogeneous in practice, but that is the
// schema author's business, not enforced here.
type List []Value

// Value is a single decoded or to-be-encoded value.
type Value struct {
	kind  Kind
	width uint8  // scalar byte width: 1, 2, 4 or 8
	num   uint64 // scalar storage, two's complement for KindInt
	bs    []byte
	str   string
	list  List
	m     *Map
}

// Null returns the neutral Value.
func Null() Value {
	return Value{}
}

// Int8 returns a 1 byte signed integer Value.
func Int8(v int8) Value {
	return Value{kind: KindInt, width: 1, num: uint64(int64(v))}
}

// Int16 returns a 2 byte signed integer Value.
func Int16(v int16) Value {
	return Value{kind: KindInt, width: 2, num: uint64(int64(v))}
}

// Int32 returns a 4 byte signed integer Value.
func Int32(v int32) Value {
	return Value{kind: KindInt, width: 4, num: uint64(int64(v))}
}

// Int64 returns an 8 byte signed integer Value.
func Int64(v int64) Value {
	return Value{kind: KindInt, width: 8, num: uint64(v)}
}

// Uint8 returns a 1 byte unsigned integer Value.
func Uint8(v uint8) Value {
	return Value{kind: KindUint, width: 1, num: uint64(v)}
}

// Uint16 returns a 2 byte unsigned integer Value.
func Uint16(v uint16) Value {
	return Value{kind: KindUint, width: 2, num: uint64(v)}
}

// Uint32 returns a 4 byte unsigned integer Value.
func Uint32(v uint32) Value {
	return Value{kind: KindUint, width: 4, num: uint64(v)}
}

// Uint64 returns an 8 byte unsigned integer Value.
func Uint64(v uint64) Value {
	return Value{kind: KindUint, width: 8, num: v}
}

// Bytes returns a raw byte sequence Value. The slice is not copied.
func Bytes(b []byte) Value {
	return Value{kind: KindBytes, bs: b}
}

// String returns a text Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// ListValue wraps l in a Value.
func ListValue(l List) Value {
	return Value{kind: KindList, list: l}
}

// MapValue wraps m in a Value.
func MapValue(m *Map) Value {
	return Value{kind: KindMap, m: m}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports if v is the neutral value.
func (v Value) IsNull() bool {
	return v.kind == KindInvalid
}

// Width reports the byte width of an integer Value (1, 2, 4 or 8) and 0 for
// every other kind.
func (v Value) Width() int {
	switch v.kind {
	case KindInt, KindUint:
		return int(v.width)
	}
	return 0
}

// AsInt64 converts an integer Value to int64. Any signed width converts
// directly; an unsigned value converts when it fits. This is the coercion all
// expression arithmetic goes through: lengths, counts, tags and conditions
// see 64 bit signed integers.
func (v Value) AsInt64() (int64, error) {
	switch v.kind {
	case KindInt:
		return int64(v.num), nil
	case KindUint:
		if v.num > math.MaxInt64 {
			return 0, fmt.Errorf("uint value %d overflows int64", v.num)
		}
		return int64(v.num), nil
	}
	return 0, fmt.Errorf("cannot convert %v to int64", v.kind)
}

// AsUint64 converts an integer Value to uint64. Negative signed values are an
// error.
func (v Value) AsUint64() (uint64, error) {
	switch v.kind {
	case KindUint:
		return v.num, nil
	case KindInt:
		if int64(v.num) < 0 {
			return 0, fmt.Errorf("int value %d is negative, cannot convert to uint64", int64(v.num))
		}
		return v.num, nil
	}
	return 0, fmt.Errorf("cannot convert %v to uint64", v.kind)
}

// AsBool converts an integer Value to a condition: true for any nonzero
// value. There is no boolean kind; conditions in schemas are integers.
func (v Value) AsBool() (bool, error) {
	switch v.kind {
	case KindInt, KindUint:
		return v.num != 0, nil
	}
	return false, fmt.Errorf("cannot convert %v to bool", v.kind)
}

// AsBytes returns the byte content of v. A String converts to its UTF-8
// bytes.
func (v Value) AsBytes() ([]byte, error) {
	switch v.kind {
	case KindBytes:
		return v.bs, nil
	case KindString:
		return []byte(v.str), nil
	}
	return nil, fmt.Errorf("cannot convert %v to bytes", v.kind)
}

// AsString returns the text content of v. Bytes convert assuming UTF-8.
func (v Value) AsString() (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindBytes:
		return string(v.bs), nil
	}
	return "", fmt.Errorf("cannot convert %v to string", v.kind)
}

// AsList returns the list held by v.
func (v Value) AsList() (List, error) {
	if v.kind != KindList {
		return nil, fmt.Errorf("cannot convert %v to list", v.kind)
	}
	return v.list, nil
}

// AsMap returns the mapping held by v.
func (v Value) AsMap() (*Map, error) {
	if v.kind != KindMap {
		return nil, fmt.Errorf("cannot convert %v to map", v.kind)
	}
	return v.m, nil
}

// Interface returns the native Go projection of v: int64, uint64, []byte,
// string, []any, map[string]any or nil. Map key order is lost; use Map
// directly when order matters.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return int64(v.num)
	case KindUint:
		return v.num
	case KindBytes:
		return v.bs
	case KindString:
		return v.str
	case KindList:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			out[i] = e.Interface()
		}
		return out
	case KindMap:
		return v.m.Interface()
	}
	return nil
}
