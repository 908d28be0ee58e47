package layout

import (
	"io"

	"github.com/bytefield/binform/value"
)

// Selector maps a resolved discriminant to the field that handles this
// occurrence. Returning false means no case matches; the engine supplies no
// default, so schema level fallthrough is the selector's own business.
type Selector func(tag value.Value) (Field, bool)

// Cases builds a Selector from a map keyed by the discriminant's signed
// integer form. Any discriminant that is not an integer matches nothing.
func Cases(m map[int64]Field) Selector {
	return func(tag value.Value) (Field, bool) {
		n, err := tag.AsInt64()
		if err != nil {
			return nil, false
		}
		f, ok := m[n]
		return f, ok
	}
}

type switchField struct {
	name string
	on   Expr
	sel  Selector
}

// NewSwitch returns a field that resolves a discriminant and delegates both
// directions to the field the selector picks for it.
func NewSwitch(name string, on Expr, sel Selector) Field {
	if on == nil {
		panic("layout.NewSwitch(" + name + "): nil discriminant")
	}
	if sel == nil {
		panic("layout.NewSwitch(" + name + "): nil selector")
	}
	return switchField{name: name, on: on, sel: sel}
}

func (f switchField) Name() string {
	return f.name
}

func (f switchField) pick(ctx *Context) (Field, error) {
	tag, err := f.on.Eval(ctx.View())
	if err != nil {
		return nil, err
	}
	fld, ok := f.sel(tag)
	if !ok {
		return nil, errf(ErrNoMatchingCase, f.name, "discriminant %v", tag.Interface())
	}
	return fld, nil
}

func (f switchField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	fld, err := f.pick(ctx)
	if err != nil {
		return value.Value{}, err
	}
	return decodeField(fld, r, ctx)
}

func (f switchField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	fld, err := f.pick(ctx)
	if err != nil {
		return value.Value{}, err
	}
	return encodeField(fld, w, ctx, v)
}
