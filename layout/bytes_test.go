package layout

import (
	"bytes"
	"io"
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/bytefield/binform/value"
)

func TestBytesDecode(t *testing.T) {
	tests := []struct {
		desc    string
		field   Field
		ctx     *Context
		data    []byte
		want    []byte
		wantPos int64
		err     bool
		errKind ErrKind
	}{
		{
			desc:    "Success: literal length leaves trailing bytes",
			field:   NewBytes("data", Lit(4)),
			ctx:     NewContext(),
			data:    []byte{1, 2, 3, 4, 5, 6},
			want:    []byte{1, 2, 3, 4},
			wantPos: 4,
		},
		{
			desc:    "Success: length from a sibling registration",
			field:   NewBytes("data", Ref("size")),
			ctx:     func() *Context { c := NewContext(); c.Set("size", value.Uint8(3)); return c }(),
			data:    []byte{9, 8, 7, 6},
			want:    []byte{9, 8, 7},
			wantPos: 3,
		},
		{
			desc:    "Success: zero length",
			field:   NewBytes("data", Lit(0)),
			ctx:     NewContext(),
			data:    []byte{1, 2},
			want:    []byte{},
			wantPos: 0,
		},
		{
			desc:    "Error: truncated",
			field:   NewBytes("data", Lit(8)),
			ctx:     NewContext(),
			data:    []byte{1, 2, 3},
			err:     true,
			errKind: ErrTruncated,
		},
		{
			desc:    "Error: length references nothing",
			field:   NewBytes("data", Ref("size")),
			ctx:     NewContext(),
			data:    []byte{1, 2, 3},
			err:     true,
			errKind: ErrMissingKey,
		},
		{
			desc:    "Error: negative length",
			field:   NewBytes("data", Lit(-1)),
			ctx:     NewContext(),
			data:    []byte{1, 2, 3},
			err:     true,
			errKind: ErrBadParam,
		},
	}

	for _, test := range tests {
		r := bytes.NewReader(test.data)
		got, err := test.field.Decode(r, test.ctx)
		switch {
		case err == nil && test.err:
			t.Errorf("TestBytesDecode(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestBytesDecode(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			if !IsKind(err, test.errKind) {
				t.Errorf("TestBytesDecode(%s): got err == %s, want kind %v", test.desc, err, test.errKind)
			}
			continue
		}

		b, err := got.AsBytes()
		if err != nil {
			t.Errorf("TestBytesDecode(%s): AsBytes: %s", test.desc, err)
			continue
		}
		if diff := pretty.Compare(test.want, b); diff != "" {
			t.Errorf("TestBytesDecode(%s): -want/+got:\n%s", test.desc, diff)
		}
		if pos, _ := r.Seek(0, io.SeekCurrent); pos != test.wantPos {
			t.Errorf("TestBytesDecode(%s): stream at %d, want %d", test.desc, pos, test.wantPos)
		}
	}
}

func TestBytesEncode(t *testing.T) {
	tests := []struct {
		desc    string
		field   Field
		v       value.Value
		want    []byte
		err     bool
		errKind ErrKind
	}{
		{
			desc:  "Success: exact length",
			field: NewBytes("data", Lit(3)),
			v:     value.Bytes([]byte{1, 2, 3}),
			want:  []byte{1, 2, 3},
		},
		{
			desc:  "Success: text coerces to bytes",
			field: NewBytes("data", Lit(3)),
			v:     value.String("abc"),
			want:  []byte("abc"),
		},
		{
			desc:    "Error: content shorter than resolved length",
			field:   NewBytes("data", Lit(4)),
			v:       value.Bytes([]byte{1, 2}),
			err:     true,
			errKind: ErrLengthMismatch,
		},
		{
			desc:    "Error: content longer than resolved length",
			field:   NewBytes("data", Lit(1)),
			v:       value.Bytes([]byte{1, 2}),
			err:     true,
			errKind: ErrLengthMismatch,
		},
		{
			desc:    "Error: list is not a byte run",
			field:   NewBytes("data", Lit(1)),
			v:       value.ListValue(value.List{value.Uint8(1)}),
			err:     true,
			errKind: ErrBadParam,
		},
	}

	for _, test := range tests {
		buf := &bytes.Buffer{}
		_, err := test.field.Encode(buf, NewContext(), test.v)
		switch {
		case err == nil && test.err:
			t.Errorf("TestBytesEncode(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestBytesEncode(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			if !IsKind(err, test.errKind) {
				t.Errorf("TestBytesEncode(%s): got err == %s, want kind %v", test.desc, err, test.errKind)
			}
			continue
		}

		if diff := pretty.Compare(test.want, buf.Bytes()); diff != "" {
			t.Errorf("TestBytesEncode(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestConstDecode(t *testing.T) {
	magic := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		desc    string
		data    []byte
		err     bool
		errKind ErrKind
	}{
		{
			desc: "Success: exact match",
			data: []byte{0x89, 'P', 'N', 'G', 0xAA},
		},
		{
			desc:    "Error: wrong bytes",
			data:    []byte{0x89, 'J', 'P', 'G'},
			err:     true,
			errKind: ErrConstantMismatch,
		},
		{
			// Even when the bytes that are present already disagree, a
			// short stream reports Truncated, not ConstantMismatch.
			desc:    "Error: short stream is truncation",
			data:    []byte{0xDE, 0xAD},
			err:     true,
			errKind: ErrTruncated,
		},
	}

	for _, test := range tests {
		f := NewConst("magic", magic)
		got, err := f.Decode(bytes.NewReader(test.data), NewContext())
		switch {
		case err == nil && test.err:
			t.Errorf("TestConstDecode(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestConstDecode(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			if !IsKind(err, test.errKind) {
				t.Errorf("TestConstDecode(%s): got err == %s, want kind %v", test.desc, err, test.errKind)
			}
			continue
		}

		b, _ := got.AsBytes()
		if diff := pretty.Compare(magic, b); diff != "" {
			t.Errorf("TestConstDecode(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestConstEncode(t *testing.T) {
	magic := []byte{'B', 'F'}

	tests := []struct {
		desc    string
		v       value.Value
		err     bool
		errKind ErrKind
	}{
		{
			desc: "Success: null writes the expected bytes",
			v:    value.Null(),
		},
		{
			desc: "Success: matching supplied bytes",
			v:    value.Bytes([]byte{'B', 'F'}),
		},
		{
			desc: "Success: matching supplied text",
			v:    value.String("BF"),
		},
		{
			desc:    "Error: disagreeing bytes",
			v:       value.Bytes([]byte{'X', 'F'}),
			err:     true,
			errKind: ErrConstantMismatch,
		},
		{
			desc:    "Error: integer is not a constant",
			v:       value.Uint8(1),
			err:     true,
			errKind: ErrBadParam,
		},
	}

	for _, test := range tests {
		f := NewConst("magic", magic)
		buf := &bytes.Buffer{}
		_, err := f.Encode(buf, NewContext(), test.v)
		switch {
		case err == nil && test.err:
			t.Errorf("TestConstEncode(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestConstEncode(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			if !IsKind(err, test.errKind) {
				t.Errorf("TestConstEncode(%s): got err == %s, want kind %v", test.desc, err, test.errKind)
			}
			continue
		}

		if diff := pretty.Compare(magic, buf.Bytes()); diff != "" {
			t.Errorf("TestConstEncode(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}
