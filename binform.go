// Package binform assembles declarative binary layouts and runs them in
// both directions: Parse turns bytes into an ordered field mapping, Build
// turns such a mapping back into bytes, bit for bit. The package re-exports
// the layout engine's types and adds the factory layer schemas are written
// in; values inside mappings live in the value package.
package binform

import (
	"github.com/bytefield/binform/compress"
	"github.com/bytefield/binform/layout"
	"github.com/bytefield/binform/value"
)

// Core engine types.
type (
	// Struct is a named, ordered field sequence: the schema unit.
	Struct = layout.Struct
	// Field is one node of a schema.
	Field = layout.Field
	// Context is the flat per-call mapping fields register results in.
	Context = layout.Context
	// View is the read-only Context window expressions evaluate against.
	View = layout.View
	// Expr is a deferred computation over the Context.
	Expr = layout.Expr
	// ExprFunc adapts a function to the Expr interface.
	ExprFunc = layout.ExprFunc
	// Selector maps a switch discriminant to the handling field.
	Selector = layout.Selector
	// Error is the failure type for decode and encode operations.
	Error = layout.Error
	// ErrKind classifies a failure.
	ErrKind = layout.ErrKind
	// ByteOrder selects a scalar field's wire byte order.
	ByteOrder = layout.ByteOrder
	// TextEncoding selects a text field's character encoding.
	TextEncoding = layout.TextEncoding
	// Alg identifies a compression algorithm for compressed sections.
	Alg = compress.Alg
	// Value is the closed union mappings and expressions trade in.
	Value = value.Value
	// Map is an ordered name to Value mapping.
	Map = value.Map
	// List is an ordered sequence of Values.
	List = value.List
)

const (
	LittleEndian = layout.LittleEndian
	BigEndian    = layout.BigEndian

	ASCII   = layout.ASCII
	UTF8    = layout.UTF8
	UTF16LE = layout.UTF16LE
	UTF16BE = layout.UTF16BE

	AlgNone   = compress.AlgNone
	AlgGzip   = compress.AlgGzip
	AlgSnappy = compress.AlgSnappy
	AlgZstd   = compress.AlgZstd

	ErrUnknown          = layout.ErrUnknown
	ErrTruncated        = layout.ErrTruncated
	ErrConstantMismatch = layout.ErrConstantMismatch
	ErrLengthMismatch   = layout.ErrLengthMismatch
	ErrCountMismatch    = layout.ErrCountMismatch
	ErrTooFewElements   = layout.ErrTooFewElements
	ErrCountOutOfRange  = layout.ErrCountOutOfRange
	ErrMissingKey       = layout.ErrMissingKey
	ErrMissingValue     = layout.ErrMissingValue
	ErrNoMatchingCase   = layout.ErrNoMatchingCase
	ErrValueOutOfRange  = layout.ErrValueOutOfRange
	ErrTextEncoding     = layout.ErrTextEncoding
	ErrBadParam         = layout.ErrBadParam
)

// New assembles a schema Struct from fields in wire order.
func New(name string, fields ...Field) *Struct {
	return layout.New(name, fields...)
}

// NewContext returns an empty Context, for driving single fields directly.
func NewContext() *Context {
	return layout.NewContext()
}

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k ErrKind) bool {
	return layout.IsKind(err, k)
}

// Lit returns an Expr that always yields n.
func Lit(n int64) Expr {
	return layout.Lit(n)
}

// LitValue returns an Expr that always yields v.
func LitValue(v Value) Expr {
	return layout.LitValue(v)
}

// Ref returns an Expr that yields whatever the Context holds under name at
// evaluation time.
func Ref(name string) Expr {
	return layout.Ref(name)
}

// Cases builds a Selector from a map keyed by the discriminant's integer
// form.
func Cases(m map[int64]Field) Selector {
	return layout.Cases(m)
}

// Unsigned scalar fields. The one byte form has no byte order; wider forms
// come in little and big endian variants.

func UInt8(name string) Field    { return layout.NewScalar(name, 1, layout.LittleEndian, false) }
func UInt16LE(name string) Field { return layout.NewScalar(name, 2, layout.LittleEndian, false) }
func UInt16BE(name string) Field { return layout.NewScalar(name, 2, layout.BigEndian, false) }
func UInt32LE(name string) Field { return layout.NewScalar(name, 4, layout.LittleEndian, false) }
func UInt32BE(name string) Field { return layout.NewScalar(name, 4, layout.BigEndian, false) }
func UInt64LE(name string) Field { return layout.NewScalar(name, 8, layout.LittleEndian, false) }
func UInt64BE(name string) Field { return layout.NewScalar(name, 8, layout.BigEndian, false) }

// Signed scalar fields, two's complement.

func Int8(name string) Field    { return layout.NewScalar(name, 1, layout.LittleEndian, true) }
func Int16LE(name string) Field { return layout.NewScalar(name, 2, layout.LittleEndian, true) }
func Int16BE(name string) Field { return layout.NewScalar(name, 2, layout.BigEndian, true) }
func Int32LE(name string) Field { return layout.NewScalar(name, 4, layout.LittleEndian, true) }
func Int32BE(name string) Field { return layout.NewScalar(name, 4, layout.BigEndian, true) }
func Int64LE(name string) Field { return layout.NewScalar(name, 8, layout.LittleEndian, true) }
func Int64BE(name string) Field { return layout.NewScalar(name, 8, layout.BigEndian, true) }

// Scalar is the fully parameterized scalar constructor behind the width
// specific factories above.
func Scalar(name string, width int, order ByteOrder, signed bool) Field {
	return layout.NewScalar(name, width, order, signed)
}

// Bytes returns a raw byte run field sized by length.
func Bytes(name string, length Expr) Field {
	return layout.NewBytes(name, length)
}

// Text returns a text field occupying exactly the bytes length resolves to.
func Text(name string, length Expr, enc TextEncoding) Field {
	return layout.NewText(name, length, enc)
}

// Const returns a field pinned to a fixed byte sequence.
func Const(name string, expected []byte) Field {
	return layout.NewConst(name, expected)
}

// Magic is an anonymous Const, the usual form for format markers.
func Magic(expected []byte) Field {
	return layout.NewConst("", expected)
}

// Array returns a field repeating elem exactly count times.
func Array(name string, elem Field, count Expr) Field {
	return layout.NewArray(name, elem, count)
}

// Child embeds a full Struct as one field.
func Child(name string, s *Struct) Field {
	return layout.NewChild(name, s)
}

// Deferred embeds a Struct supplied by a function resolved at the moment of
// use, which is how a schema refers back to itself.
func Deferred(name string, supplier func() *Struct) Field {
	return layout.NewDeferredChild(name, supplier)
}

// Switch returns a field that resolves a discriminant and delegates to the
// field the selector picks.
func Switch(name string, on Expr, sel Selector) Field {
	return layout.NewSwitch(name, on, sel)
}

// IfElse returns a field running one of two branches on a condition.
func IfElse(name string, cond Expr, then, els Field) Field {
	return layout.NewIfElse(name, cond, then, els)
}

// If is the single branch conditional: condition false moves no bytes and
// registers the neutral value.
func If(name string, cond Expr, then Field) Field {
	return layout.NewIf(name, cond, then)
}

// Pass returns the no-op field.
func Pass(name string) Field {
	return layout.NewPass(name)
}

// Range returns a field repeating elem between min and max times, the real
// count discovered from the data. A nil max means unbounded.
func Range(name string, elem Field, min, max Expr) Field {
	return layout.NewRange(name, elem, min, max)
}

// GreedyRange repeats elem until it stops parsing, zero times included.
func GreedyRange(name string, elem Field) Field {
	return layout.NewGreedyRange(name, elem)
}

// Compressed wraps inner in a compressed section; length sizes the
// compressed bytes on the wire.
func Compressed(name string, length Expr, alg Alg, inner Field) Field {
	return layout.NewCompressed(name, length, alg, inner)
}
