package layout

import (
	"bytes"
	"io"

	"github.com/bytefield/binform/value"
)

type bytesField struct {
	name   string
	length Expr
}

// NewBytes returns a field for a raw byte run. length is resolved against the
// live Context when the field runs, so a sibling size field can drive it.
func NewBytes(name string, length Expr) Field {
	if length == nil {
		panic("layout.NewBytes(" + name + "): nil length")
	}
	return bytesField{name: name, length: length}
}

func (f bytesField) Name() string {
	return f.name
}

func (f bytesField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	n, err := evalSize(f.length, ctx, f.name, "length")
	if err != nil {
		return value.Value{}, err
	}
	buf := make([]byte, n)
	if err := readFull(r, buf, f.name); err != nil {
		return value.Value{}, err
	}
	return value.Bytes(buf), nil
}

func (f bytesField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	// Re-derive the expected length the same way decode would, then take
	// the supplied bytes verbatim. A size/content disagreement is a build
	// integrity failure, not something to quietly pad or clip.
	n, err := evalSize(f.length, ctx, f.name, "length")
	if err != nil {
		return value.Value{}, err
	}
	b, err := v.AsBytes()
	if err != nil {
		return value.Value{}, errWrap(ErrBadParam, f.name, err, "byte run")
	}
	if len(b) != n {
		return value.Value{}, errf(ErrLengthMismatch, f.name, "have %d bytes, expected length resolved to %d", len(b), n)
	}
	if err := writeFull(w, b, f.name); err != nil {
		return value.Value{}, err
	}
	return value.Bytes(b), nil
}

type constField struct {
	name     string
	expected []byte
}

// NewConst returns a field pinned to a fixed byte sequence, for magic numbers
// and format markers. Decode fails unless exactly those bytes are next;
// encode writes them and rejects any supplied value that disagrees. A Null
// supplied value means "use the expected bytes", which lets hand-built
// mappings skip constants entirely.
func NewConst(name string, expected []byte) Field {
	if len(expected) == 0 {
		panic("layout.NewConst(" + name + "): empty expected sequence")
	}
	e := make([]byte, len(expected))
	copy(e, expected)
	return constField{name: name, expected: e}
}

func (f constField) Name() string {
	return f.name
}

func (f constField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	buf := make([]byte, len(f.expected))
	if err := readFull(r, buf, f.name); err != nil {
		return value.Value{}, err
	}
	if !bytes.Equal(buf, f.expected) {
		return value.Value{}, errf(ErrConstantMismatch, f.name, "read % x, expected % x", buf, f.expected)
	}
	return value.Bytes(buf), nil
}

func (f constField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	if !v.IsNull() {
		b, err := v.AsBytes()
		if err != nil {
			return value.Value{}, errWrap(ErrBadParam, f.name, err, "constant")
		}
		if !bytes.Equal(b, f.expected) {
			return value.Value{}, errf(ErrConstantMismatch, f.name, "supplied % x, expected % x", b, f.expected)
		}
	}
	if err := writeFull(w, f.expected, f.name); err != nil {
		return value.Value{}, err
	}
	return value.Bytes(f.expected), nil
}
