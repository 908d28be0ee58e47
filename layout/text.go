package layout

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/bytefield/binform/internal/conversions"
	"github.com/bytefield/binform/value"
)

//go:generate stringer -type=TextEncoding -linecomment

// TextEncoding selects how a text field's bytes map to characters. Chosen at
// schema authoring time; the byte length, not the character count, is the
// sizing unit.
type TextEncoding uint8

const (
	// ASCII is 7-bit text. Any byte above 0x7F fails both directions.
	ASCII TextEncoding = 0 // ASCII
	// UTF8 is the 8-bit Unicode transform.
	UTF8 TextEncoding = 1 // UTF8
	// UTF16LE is the 16-bit Unicode transform, little endian, no BOM.
	UTF16LE TextEncoding = 2 // UTF16LE
	// UTF16BE is the 16-bit Unicode transform, big endian, no BOM.
	UTF16BE TextEncoding = 3 // UTF16BE
)

var (
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

type textField struct {
	name   string
	length Expr
	enc    TextEncoding
}

// NewText returns a field for encoded text occupying an exact number of
// bytes. length sizes the wire bytes, not the decoded characters.
func NewText(name string, length Expr, enc TextEncoding) Field {
	if length == nil {
		panic("layout.NewText(" + name + "): nil length")
	}
	switch enc {
	case ASCII, UTF8, UTF16LE, UTF16BE:
	default:
		panic("layout.NewText(" + name + "): unknown encoding " + enc.String())
	}
	return textField{name: name, length: length, enc: enc}
}

func (f textField) Name() string {
	return f.name
}

func (f textField) Decode(r io.ReadSeeker, ctx *Context) (value.Value, error) {
	n, err := evalSize(f.length, ctx, f.name, "length")
	if err != nil {
		return value.Value{}, err
	}
	buf := make([]byte, n)
	if err := readFull(r, buf, f.name); err != nil {
		return value.Value{}, err
	}
	s, err := decodeText(buf, f.enc, f.name)
	if err != nil {
		return value.Value{}, err
	}
	return value.String(s), nil
}

func (f textField) Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	n, err := evalSize(f.length, ctx, f.name, "length")
	if err != nil {
		return value.Value{}, err
	}
	s, err := v.AsString()
	if err != nil {
		return value.Value{}, errWrap(ErrBadParam, f.name, err, "text")
	}
	b, err := encodeText(s, f.enc, f.name)
	if err != nil {
		return value.Value{}, err
	}
	if len(b) != n {
		return value.Value{}, errf(ErrLengthMismatch, f.name, "%q encodes to %d bytes, expected length resolved to %d", s, len(b), n)
	}
	if err := writeFull(w, b, f.name); err != nil {
		return value.Value{}, err
	}
	return value.String(s), nil
}

// decodeText turns freshly read wire bytes into a string. b must not be
// reused afterward; the ASCII and UTF8 paths alias it.
func decodeText(b []byte, enc TextEncoding, field string) (string, error) {
	switch enc {
	case ASCII:
		for i, c := range b {
			if c > 0x7F {
				return "", errf(ErrTextEncoding, field, "byte %#x at offset %d is not 7-bit", c, i)
			}
		}
		return conversions.ByteSlice2String(b), nil
	case UTF8:
		if !utf8.Valid(b) {
			return "", errf(ErrTextEncoding, field, "invalid UTF-8")
		}
		return conversions.ByteSlice2String(b), nil
	case UTF16LE:
		out, err := utf16LE.NewDecoder().Bytes(b)
		if err != nil {
			return "", errWrap(ErrTextEncoding, field, err, "UTF-16LE")
		}
		return conversions.ByteSlice2String(out), nil
	default:
		out, err := utf16BE.NewDecoder().Bytes(b)
		if err != nil {
			return "", errWrap(ErrTextEncoding, field, err, "UTF-16BE")
		}
		return conversions.ByteSlice2String(out), nil
	}
}

// encodeText produces the wire bytes for s. The returned slice may alias s
// and is write-only.
func encodeText(s string, enc TextEncoding, field string) ([]byte, error) {
	switch enc {
	case ASCII:
		b := conversions.UnsafeGetBytes(s)
		for i := 0; i < len(b); i++ {
			if b[i] > 0x7F {
				return nil, errf(ErrTextEncoding, field, "rune at byte %d is not 7-bit", i)
			}
		}
		return b, nil
	case UTF8:
		if !utf8.ValidString(s) {
			return nil, errf(ErrTextEncoding, field, "invalid UTF-8")
		}
		return conversions.UnsafeGetBytes(s), nil
	case UTF16LE:
		out, err := utf16LE.NewEncoder().Bytes(conversions.UnsafeGetBytes(s))
		if err != nil {
			return nil, errWrap(ErrTextEncoding, field, err, "UTF-16LE")
		}
		return out, nil
	default:
		out, err := utf16BE.NewEncoder().Bytes(conversions.UnsafeGetBytes(s))
		if err != nil {
			return nil, errWrap(ErrTextEncoding, field, err, "UTF-16BE")
		}
		return out, nil
	}
}
