package layout

import (
	"io"

	"github.com/bytefield/binform/value"
)

type passField struct {
	name string
}

// NewPass returns the no-op field: decode produces the neutral value and
// consumes nothing, encode writes nothing regardless of the supplied value.
func NewPass(name string) Field {
	return passField{name: name}
}

func (f passField) Name() string {
	return f.name
}

func (f passField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	return value.Null(), nil
}

func (f passField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	return value.Null(), nil
}

type condField struct {
	name string
	cond Expr
	then Field
	els  Field
}

// NewIfElse returns a field that evaluates a condition and runs exactly one
// of two branch fields. Decode evaluates before reading and encode before
// writing, so the two directions stay in lock step for the same Context
// state.
func NewIfElse(name string, cond Expr, then, els Field) Field {
	if cond == nil {
		panic("layout.NewIfElse(" + name + "): nil condition")
	}
	if then == nil || els == nil {
		panic("layout.NewIfElse(" + name + "): nil branch")
	}
	return condField{name: name, cond: cond, then: then, els: els}
}

// NewIf is the single-branch form: when the condition is false no bytes move
// and the field's slot gets the neutral value, with any supplied content
// ignored on encode.
func NewIf(name string, cond Expr, then Field) Field {
	if cond == nil {
		panic("layout.NewIf(" + name + "): nil condition")
	}
	if then == nil {
		panic("layout.NewIf(" + name + "): nil field")
	}
	return condField{name: name, cond: cond, then: then, els: passField{name: name}}
}

func (f condField) Name() string {
	return f.name
}

func (f condField) branch(ctx *Context) (Field, error) {
	b, err := evalBool(f.cond, ctx, f.name)
	if err != nil {
		return nil, err
	}
	if b {
		return f.then, nil
	}
	return f.els, nil
}

func (f condField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	br, err := f.branch(ctx)
	if err != nil {
		return value.Value{}, err
	}
	return decodeField(br, r, ctx)
}

func (f condField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	br, err := f.branch(ctx)
	if err != nil {
		return value.Value{}, err
	}
	return encodeField(br, w, ctx, v)
}
