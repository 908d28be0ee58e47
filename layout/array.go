package layout

import (
	"io"

	"github.com/bytefield/binform/value"
)

type arrayField struct {
	name  string
	elem  Field
	count Expr
}

// NewArray returns a field repeating one element template an exact number of
// times. The count is resolved once per pass, before the first element runs.
func NewArray(name string, elem Field, count Expr) Field {
	if elem == nil {
		panic("layout.NewArray(" + name + "): nil element")
	}
	if count == nil {
		panic("layout.NewArray(" + name + "): nil count")
	}
	return arrayField{name: name, elem: elem, count: count}
}

func (f arrayField) Name() string {
	return f.name
}

func (f arrayField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	n, err := evalSize(f.count, ctx, f.name, "count")
	if err != nil {
		return value.Value{}, err
	}
	list := make(value.List, 0, n)
	for i := 0; i < n; i++ {
		// A failed element fails the array; a short list is never returned.
		v, err := decodeField(f.elem, r, ctx)
		if err != nil {
			return value.Value{}, errWrap(ErrCountMismatch, f.name, err, "element %d of %d", i, n)
		}
		list = append(list, v)
	}
	return value.ListValue(list), nil
}

func (f arrayField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	n, err := evalSize(f.count, ctx, f.name, "count")
	if err != nil {
		return value.Value{}, err
	}
	list, err := v.AsList()
	if err != nil {
		return value.Value{}, errWrap(ErrBadParam, f.name, err, "array")
	}
	for i := 0; i < len(list) && i < n; i++ {
		if _, err := encodeField(f.elem, w, ctx, list[i]); err != nil {
			return value.Value{}, errWrap(ErrCountMismatch, f.name, err, "element %d of %d", i, n)
		}
	}
	return value.ListValue(list), nil
}
