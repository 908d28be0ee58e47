package value

import (
	"math"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestAsInt64(t *testing.T) {
	tests := []struct {
		desc string
		v    Value
		want int64
		err  bool
	}{
		{
			desc: "Success: signed 1 byte, negative",
			v:    Int8(-5),
			want: -5,
		},
		{
			desc: "Success: signed 8 byte",
			v:    Int64(math.MinInt64),
			want: math.MinInt64,
		},
		{
			desc: "Success: unsigned 2 byte",
			v:    Uint16(65535),
			want: 65535,
		},
		{
			desc: "Success: unsigned at the int64 boundary",
			v:    Uint64(math.MaxInt64),
			want: math.MaxInt64,
		},
		{
			desc: "Error: unsigned above the int64 boundary",
			v:    Uint64(math.MaxInt64 + 1),
			err:  true,
		},
		{
			desc: "Error: bytes are not a number",
			v:    Bytes([]byte{1}),
			err:  true,
		},
		{
			desc: "Error: null is not a number",
			v:    Null(),
			err:  true,
		},
	}

	for _, test := range tests {
		got, err := test.v.AsInt64()
		switch {
		case err == nil && test.err:
			t.Errorf("TestAsInt64(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestAsInt64(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			continue
		}
		if got != test.want {
			t.Errorf("TestAsInt64(%s): got %d, want %d", test.desc, got, test.want)
		}
	}
}

func TestAsUint64(t *testing.T) {
	tests := []struct {
		desc string
		v    Value
		want uint64
		err  bool
	}{
		{
			desc: "Success: unsigned 8 byte max",
			v:    Uint64(math.MaxUint64),
			want: math.MaxUint64,
		},
		{
			desc: "Success: signed non-negative",
			v:    Int32(42),
			want: 42,
		},
		{
			desc: "Error: signed negative",
			v:    Int16(-1),
			err:  true,
		},
		{
			desc: "Error: string is not a number",
			v:    String("42"),
			err:  true,
		},
	}

	for _, test := range tests {
		got, err := test.v.AsUint64()
		switch {
		case err == nil && test.err:
			t.Errorf("TestAsUint64(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestAsUint64(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			continue
		}
		if got != test.want {
			t.Errorf("TestAsUint64(%s): got %d, want %d", test.desc, got, test.want)
		}
	}
}

func TestAsBool(t *testing.T) {
	tests := []struct {
		desc string
		v    Value
		want bool
		err  bool
	}{
		{desc: "Success: nonzero unsigned is true", v: Uint8(1), want: true},
		{desc: "Success: zero unsigned is false", v: Uint32(0), want: false},
		{desc: "Success: negative signed is true", v: Int8(-1), want: true},
		{desc: "Error: list is not a condition", v: ListValue(List{}), err: true},
	}

	for _, test := range tests {
		got, err := test.v.AsBool()
		switch {
		case err == nil && test.err:
			t.Errorf("TestAsBool(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestAsBool(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			continue
		}
		if got != test.want {
			t.Errorf("TestAsBool(%s): got %v, want %v", test.desc, got, test.want)
		}
	}
}

func TestBytesStringCoercion(t *testing.T) {
	b, err := String("hello").AsBytes()
	if err != nil {
		t.Fatalf("TestBytesStringCoercion: AsBytes on String: %s", err)
	}
	if string(b) != "hello" {
		t.Errorf("TestBytesStringCoercion: got %q, want %q", b, "hello")
	}

	s, err := Bytes([]byte("world")).AsString()
	if err != nil {
		t.Fatalf("TestBytesStringCoercion: AsString on Bytes: %s", err)
	}
	if s != "world" {
		t.Errorf("TestBytesStringCoercion: got %q, want %q", s, "world")
	}

	if _, err := Uint8(1).AsBytes(); err == nil {
		t.Errorf("TestBytesStringCoercion: AsBytes on Uint: got err == nil, want err != nil")
	}
}

func TestKindAndWidth(t *testing.T) {
	tests := []struct {
		desc      string
		v         Value
		wantKind  Kind
		wantWidth int
	}{
		{desc: "null", v: Null(), wantKind: KindInvalid, wantWidth: 0},
		{desc: "int 2 byte", v: Int16(3), wantKind: KindInt, wantWidth: 2},
		{desc: "uint 4 byte", v: Uint32(3), wantKind: KindUint, wantWidth: 4},
		{desc: "bytes", v: Bytes(nil), wantKind: KindBytes, wantWidth: 0},
		{desc: "string", v: String(""), wantKind: KindString, wantWidth: 0},
		{desc: "list", v: ListValue(nil), wantKind: KindList, wantWidth: 0},
		{desc: "map", v: MapValue(NewMap()), wantKind: KindMap, wantWidth: 0},
	}

	for _, test := range tests {
		if got := test.v.Kind(); got != test.wantKind {
			t.Errorf("TestKindAndWidth(%s): Kind: got %v, want %v", test.desc, got, test.wantKind)
		}
		if got := test.v.Width(); got != test.wantWidth {
			t.Errorf("TestKindAndWidth(%s): Width: got %d, want %d", test.desc, got, test.wantWidth)
		}
	}
}

func TestInterface(t *testing.T) {
	m := NewMap()
	m.Set("id", Uint16(7))
	m.Set("tags", ListValue(List{String("a"), String("b")}))

	want := map[string]any{
		"id":   uint64(7),
		"tags": []any{"a", "b"},
	}

	if diff := pretty.Compare(want, m.Interface()); diff != "" {
		t.Errorf("TestInterface: -want/+got:\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	if got := KindBytes.String(); got != "Bytes" {
		t.Errorf("TestKindString: got %q, want %q", got, "Bytes")
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("TestKindString: got %q, want %q", got, "Kind(99)")
	}
}
