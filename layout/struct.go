package layout

import (
	"fmt"
	"io"

	"github.com/bytefield/binform/value"
)

// Struct is a named, ordered sequence of fields: the unit a schema is built
// from and the entry point for decoding and encoding. A Struct is assembled
// once and is safe for concurrent use; all per-call state lives in the
// Context and result mappings created inside each call.
type Struct struct {
	name   string
	fields []Field
}

// New assembles a Struct from fields. Field order is wire order. At most
// one field may be anonymous: the unnamed result slot can only hold a
// single field's value, and a second writer would make decode lossy and
// encode ambiguous. New panics on a nil field or a second anonymous field,
// since both are schema construction bugs, not runtime conditions.
func New(name string, fields ...Field) *Struct {
	anon := 0
	for i, f := range fields {
		if f == nil {
			panic(fmt.Sprintf("layout.New(%s): field %d is nil", name, i))
		}
		if f.Name() == "" {
			anon++
		}
	}
	if anon > 1 {
		panic(fmt.Sprintf("layout.New(%s): %d anonymous fields, only one may write the unnamed result slot", name, anon))
	}
	return &Struct{name: name, fields: fields}
}

// Name returns the struct's name.
func (s *Struct) Name() string {
	return s.name
}

// Fields returns a copy of the field list in wire order.
func (s *Struct) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Parse decodes data against the schema and returns the result mapping,
// with one entry per field in declaration order. Parsing stops at the end
// of the schema; trailing bytes in data are not an error.
func (s *Struct) Parse(data []byte) (*value.Map, error) {
	r := getReader(data)
	defer putReader(r)
	return s.ParseReader(r)
}

// ParseReader decodes one message from r, leaving r positioned after the
// last byte the schema consumed. r must be seekable because repetition
// fields checkpoint and rewind it while probing for their end.
func (s *Struct) ParseReader(r io.ReadSeeker) (*value.Map, error) {
	return s.decodePass(r, NewContext())
}

// Build encodes m against the schema and returns the wire bytes. Building
// the mapping a Parse of well formed input produced yields that input
// again, byte for byte.
func (s *Struct) Build(m *value.Map) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)
	if err := s.BuildWriter(buf, m); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// BuildWriter encodes m against the schema, writing the wire bytes to w as
// fields encode. If a field fails partway, w has received the bytes of the
// fields before it; callers that need all-or-nothing should use Build.
func (s *Struct) BuildWriter(w io.Writer, m *value.Map) error {
	if m == nil {
		return errf(ErrBadParam, s.name, "nil mapping")
	}
	return s.encodePass(w, NewContext(), m)
}

// decodePass decodes every field in declaration order into a fresh result
// mapping. Each field's value is registered in ctx the moment the field
// completes, so later expressions can reference it, and is then recorded in
// the result mapping under the field's name.
func (s *Struct) decodePass(r io.ReadSeeker, ctx *Context) (*value.Map, error) {
	m := value.NewMap()
	for _, f := range s.fields {
		v, err := decodeField(f, r, ctx)
		if err != nil {
			return nil, fmt.Errorf("struct %q: %w", s.name, err)
		}
		m.Set(f.Name(), v)
	}
	return m, nil
}

// encodePass encodes every field in declaration order, named fields from
// the mapping entry under their name and the anonymous field from the ""
// entry. A named field with no entry is a MissingValue failure. An absent
// "" entry feeds the anonymous field Null instead: anonymous fields are
// the schema determined ones, and a hand built mapping should not have to
// carry a placeholder for them.
func (s *Struct) encodePass(w io.Writer, ctx *Context, m *value.Map) error {
	for _, f := range s.fields {
		v, ok := m.Get(f.Name())
		if !ok {
			if f.Name() != "" {
				return errf(ErrMissingValue, f.Name(), "struct %q has no entry for this field", s.name)
			}
			v = value.Null()
		}
		if _, err := encodeField(f, w, ctx, v); err != nil {
			return fmt.Errorf("struct %q: %w", s.name, err)
		}
	}
	return nil
}
