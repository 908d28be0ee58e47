package layout

import (
	"fmt"
	"io"

	"github.com/bytefield/binform/value"
)

type rangeField struct {
	name string
	elem Field
	min  Expr
	max  Expr // nil means unbounded
}

// NewRange returns a field that repeats an element template between min and
// max times, discovering the actual repetition count from the data itself. A
// nil max means unbounded. Decoding checkpoints the stream position before
// every attempt; the first failed attempt is rolled back and treated as the
// end of the repetition, not as an error. Both bounds are resolved once per
// pass, before the first attempt.
func NewRange(name string, elem Field, min, max Expr) Field {
	if elem == nil {
		panic("layout.NewRange(" + name + "): nil element")
	}
	if min == nil {
		panic("layout.NewRange(" + name + "): nil min")
	}
	return rangeField{name: name, elem: elem, min: min, max: max}
}

// NewGreedyRange returns a range with no bounds at all: zero repetitions is
// fine and decoding continues until an element fails to parse.
func NewGreedyRange(name string, elem Field) Field {
	if elem == nil {
		panic("layout.NewGreedyRange(" + name + "): nil element")
	}
	return rangeField{name: name, elem: elem, min: Lit(0)}
}

func (f rangeField) Name() string {
	return f.name
}

// bounds resolves min and max. max < 0 reports unbounded.
func (f rangeField) bounds(ctx *Context) (min, max int, err error) {
	min, err = evalSize(f.min, ctx, f.name, "min")
	if err != nil {
		return 0, 0, err
	}
	if f.max == nil {
		return min, -1, nil
	}
	max, err = evalSize(f.max, ctx, f.name, "max")
	if err != nil {
		return 0, 0, err
	}
	if max < min {
		return 0, 0, errf(ErrBadParam, f.name, "max %d is below min %d", max, min)
	}
	return min, max, nil
}

func (f rangeField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	min, max, err := f.bounds(ctx)
	if err != nil {
		return value.Value{}, err
	}

	var list value.List
	for max < 0 || len(list) < max {
		pos, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return value.Value{}, fmt.Errorf("field %q: checkpoint: %w", f.name, err)
		}
		v, err := decodeField(f.elem, r, ctx)
		if err != nil {
			// Expected end-of-repetition signal. Roll the stream back to
			// the checkpoint so the failed attempt leaves no trace, then
			// stop. Context writes the attempt made are kept; only the
			// stream is rewound.
			if _, serr := r.Seek(pos, io.SeekStart); serr != nil {
				return value.Value{}, fmt.Errorf("field %q: rollback: %w", f.name, serr)
			}
			break
		}
		list = append(list, v)
	}

	if len(list) < min {
		return value.Value{}, errf(ErrTooFewElements, f.name, "collected %d, min is %d", len(list), min)
	}
	return value.ListValue(list), nil
}

func (f rangeField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	min, max, err := f.bounds(ctx)
	if err != nil {
		return value.Value{}, err
	}
	list, err := v.AsList()
	if err != nil {
		return value.Value{}, errWrap(ErrBadParam, f.name, err, "range")
	}
	if len(list) < min || (max >= 0 && len(list) > max) {
		if max < 0 {
			return value.Value{}, errf(ErrCountOutOfRange, f.name, "%d elements, min is %d", len(list), min)
		}
		return value.Value{}, errf(ErrCountOutOfRange, f.name, "%d elements, bounds [%d, %d]", len(list), min, max)
	}
	for i, e := range list {
		if _, err := encodeField(f.elem, w, ctx, e); err != nil {
			return value.Value{}, fmt.Errorf("field %q: element %d: %w", f.name, i, err)
		}
	}
	return value.ListValue(list), nil
}
