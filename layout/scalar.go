package layout

import (
	"fmt"
	"io"
	"math"

	"github.com/bytefield/binform/internal/binary"
	"github.com/bytefield/binform/value"
)

//go:generate stringer -type=ByteOrder -linecomment

// ByteOrder selects the wire byte order of a scalar field.
type ByteOrder uint8

const (
	// LittleEndian stores the least significant byte first.
	LittleEndian ByteOrder = 0 // LittleEndian
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = 1 // BigEndian
)

type scalarField struct {
	name   string
	width  uint8
	order  ByteOrder
	signed bool
}

// NewScalar returns a field for a fixed-width integer. width must be 1, 2, 4
// or 8 bytes. Construction panics on a bad width or order: schema shape
// errors are authoring bugs, caught where the schema is built.
func NewScalar(name string, width int, order ByteOrder, signed bool) Field {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("layout.NewScalar(%q): width %d is not 1, 2, 4 or 8", name, width))
	}
	if order != LittleEndian && order != BigEndian {
		panic(fmt.Sprintf("layout.NewScalar(%q): unknown byte order %d", name, order))
	}
	return scalarField{name: name, width: uint8(width), order: order, signed: signed}
}

func (f scalarField) Name() string {
	return f.name
}

func (f scalarField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	var buf [8]byte
	b := buf[:f.width]
	if err := readFull(r, b, f.name); err != nil {
		return value.Value{}, err
	}

	big := f.order == BigEndian
	if f.signed {
		switch f.width {
		case 1:
			return value.Int8(binary.Get[int8](b)), nil
		case 2:
			if big {
				return value.Int16(binary.GetBE[int16](b)), nil
			}
			return value.Int16(binary.Get[int16](b)), nil
		case 4:
			if big {
				return value.Int32(binary.GetBE[int32](b)), nil
			}
			return value.Int32(binary.Get[int32](b)), nil
		default:
			if big {
				return value.Int64(binary.GetBE[int64](b)), nil
			}
			return value.Int64(binary.Get[int64](b)), nil
		}
	}
	switch f.width {
	case 1:
		return value.Uint8(b[0]), nil
	case 2:
		if big {
			return value.Uint16(binary.GetBE[uint16](b)), nil
		}
		return value.Uint16(binary.Get[uint16](b)), nil
	case 4:
		if big {
			return value.Uint32(binary.GetBE[uint32](b)), nil
		}
		return value.Uint32(binary.Get[uint32](b)), nil
	default:
		if big {
			return value.Uint64(binary.GetBE[uint64](b)), nil
		}
		return value.Uint64(binary.Get[uint64](b)), nil
	}
}

func (f scalarField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	var buf [8]byte
	b := buf[:f.width]
	big := f.order == BigEndian

	var out value.Value
	if f.signed {
		n, err := v.AsInt64()
		if err != nil {
			// A uint too large for int64 is a range problem, anything
			// else is the wrong kind of value.
			if v.Kind() == value.KindUint {
				return value.Value{}, errWrap(ErrValueOutOfRange, f.name, err, "int%d", f.width*8)
			}
			return value.Value{}, errWrap(ErrBadParam, f.name, err, "int%d", f.width*8)
		}
		switch f.width {
		case 1:
			if n < math.MinInt8 || n > math.MaxInt8 {
				return value.Value{}, errf(ErrValueOutOfRange, f.name, "%d does not fit int8", n)
			}
			b[0] = byte(int8(n))
			out = value.Int8(int8(n))
		case 2:
			if n < math.MinInt16 || n > math.MaxInt16 {
				return value.Value{}, errf(ErrValueOutOfRange, f.name, "%d does not fit int16", n)
			}
			if big {
				binary.PutBE[int16](b, int16(n))
			} else {
				binary.Put[int16](b, int16(n))
			}
			out = value.Int16(int16(n))
		case 4:
			if n < math.MinInt32 || n > math.MaxInt32 {
				return value.Value{}, errf(ErrValueOutOfRange, f.name, "%d does not fit int32", n)
			}
			if big {
				binary.PutBE[int32](b, int32(n))
			} else {
				binary.Put[int32](b, int32(n))
			}
			out = value.Int32(int32(n))
		default:
			if big {
				binary.PutBE[int64](b, n)
			} else {
				binary.Put[int64](b, n)
			}
			out = value.Int64(n)
		}
	} else {
		u, err := v.AsUint64()
		if err != nil {
			if v.Kind() == value.KindInt {
				return value.Value{}, errWrap(ErrValueOutOfRange, f.name, err, "uint%d", f.width*8)
			}
			return value.Value{}, errWrap(ErrBadParam, f.name, err, "uint%d", f.width*8)
		}
		switch f.width {
		case 1:
			if u > math.MaxUint8 {
				return value.Value{}, errf(ErrValueOutOfRange, f.name, "%d does not fit uint8", u)
			}
			b[0] = byte(u)
			out = value.Uint8(uint8(u))
		case 2:
			if u > math.MaxUint16 {
				return value.Value{}, errf(ErrValueOutOfRange, f.name, "%d does not fit uint16", u)
			}
			if big {
				binary.PutBE[uint16](b, uint16(u))
			} else {
				binary.Put[uint16](b, uint16(u))
			}
			out = value.Uint16(uint16(u))
		case 4:
			if u > math.MaxUint32 {
				return value.Value{}, errf(ErrValueOutOfRange, f.name, "%d does not fit uint32", u)
			}
			if big {
				binary.PutBE[uint32](b, uint32(u))
			} else {
				binary.Put[uint32](b, uint32(u))
			}
			out = value.Uint32(uint32(u))
		default:
			if big {
				binary.PutBE[uint64](b, u)
			} else {
				binary.Put[uint64](b, u)
			}
			out = value.Uint64(u)
		}
	}

	if err := writeFull(w, b, f.name); err != nil {
		return value.Value{}, err
	}
	return out, nil
}
