package layout

import (
	"io"

	"github.com/bytefield/binform/value"
)

type childField struct {
	name     string
	st       *Struct
	deferred func() *Struct
}

// NewChild returns a field embedding a full Struct. The child's pass shares
// the caller's Context, so its fields can reference anything registered
// earlier in the same top level call, and later siblings can reference the
// child's fields.
func NewChild(name string, s *Struct) Field {
	if s == nil {
		panic("layout.NewChild(" + name + "): nil struct")
	}
	return childField{name: name, st: s}
}

// NewDeferredChild is NewChild with the Struct supplied by a function that is
// called at the moment of use, never at construction. That is what lets a
// struct embed a field referring back to the struct being defined: the
// supplier only runs once the outer definition is complete.
func NewDeferredChild(name string, supplier func() *Struct) Field {
	if supplier == nil {
		panic("layout.NewDeferredChild(" + name + "): nil supplier")
	}
	return childField{name: name, deferred: supplier}
}

func (f childField) Name() string {
	return f.name
}

func (f childField) resolve() (*Struct, error) {
	if f.st != nil {
		return f.st, nil
	}
	s := f.deferred()
	if s == nil {
		return nil, errf(ErrBadParam, f.name, "deferred struct supplier returned nil")
	}
	return s, nil
}

func (f childField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	s, err := f.resolve()
	if err != nil {
		return value.Value{}, err
	}
	m, err := s.decodePass(r, ctx)
	if err != nil {
		return value.Value{}, err
	}
	return value.MapValue(m), nil
}

func (f childField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	s, err := f.resolve()
	if err != nil {
		return value.Value{}, err
	}
	m, err := v.AsMap()
	if err != nil {
		return value.Value{}, errWrap(ErrBadParam, f.name, err, "child struct")
	}
	if err := s.encodePass(w, ctx, m); err != nil {
		return value.Value{}, err
	}
	return value.MapValue(m), nil
}
