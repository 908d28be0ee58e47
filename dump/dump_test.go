package dump

import (
	"bytes"
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bytefield/binform/value"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		desc    string
		m       *value.Map
		options []MarshalOption
		want    string
	}{
		{
			desc: "Success: scalars keep field order",
			m: value.NewMap().
				Set("z", value.Uint8(1)).
				Set("a", value.Int16(-2)).
				Set("m", value.String("hi")),
			want: `{"z":1,"a":-2,"m":"hi"}`,
		},
		{
			desc: "Success: bytes render base64 by default",
			m:    value.NewMap().Set("data", value.Bytes([]byte{0xAB, 0xCD})),
			want: `{"data":"q80="}`,
		},
		{
			desc:    "Success: bytes render hex on request",
			m:       value.NewMap().Set("data", value.Bytes([]byte{0xAB, 0xCD})),
			options: []MarshalOption{WithHexBytes(true)},
			want:    `{"data":"abcd"}`,
		},
		{
			desc: "Success: nested mapping and list",
			m: value.NewMap().
				Set("body", value.MapValue(value.NewMap().Set("x", value.Uint8(5)))).
				Set("items", value.ListValue(value.List{value.Uint16(1), value.Uint16(2)})),
			want: `{"body":{"x":5},"items":[1,2]}`,
		},
		{
			desc: "Success: null and empty key",
			m: value.NewMap().
				Set("", value.Bytes([]byte{0xFF})).
				Set("gap", value.Null()),
			want: `{"":"/w==","gap":null}`,
		},
	}

	for _, test := range tests {
		got, err := JSON(test.m, test.options...)
		if err != nil {
			t.Errorf("TestJSON(%s): got err == %s, want err == nil", test.desc, err)
			continue
		}
		if diff := pretty.Compare(test.want, string(bytes.TrimSpace(got))); diff != "" {
			t.Errorf("TestJSON(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestJSONIndent(t *testing.T) {
	m := value.NewMap().Set("v", value.Uint8(1))
	got, err := JSON(m, WithIndent("  "))
	if err != nil {
		t.Fatalf("TestJSONIndent: got err == %s, want err == nil", err)
	}
	want := "{\n  \"v\": 1\n}"
	if diff := pretty.Compare(want, string(bytes.TrimSpace(got))); diff != "" {
		t.Errorf("TestJSONIndent: -want/+got:\n%s", diff)
	}
}

func TestArray(t *testing.T) {
	buf := &bytes.Buffer{}
	a, err := NewArray(buf)
	if err != nil {
		t.Fatalf("TestArray: NewArray got err == %s, want err == nil", err)
	}

	for i := uint8(1); i <= 2; i++ {
		if err := a.Write(value.NewMap().Set("v", value.Uint8(i))); err != nil {
			t.Fatalf("TestArray: Write got err == %s, want err == nil", err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("TestArray: Close got err == %s, want err == nil", err)
	}

	want := `[{"v":1},{"v":2}]`
	if diff := pretty.Compare(want, string(bytes.TrimSpace(buf.Bytes()))); diff != "" {
		t.Errorf("TestArray: -want/+got:\n%s", diff)
	}
}

func TestArrayEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	a, err := NewArray(buf)
	if err != nil {
		t.Fatalf("TestArrayEmpty: NewArray got err == %s, want err == nil", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("TestArrayEmpty: Close got err == %s, want err == nil", err)
	}
	if got := string(bytes.TrimSpace(buf.Bytes())); got != "[]" {
		t.Errorf("TestArrayEmpty: got %q, want %q", got, "[]")
	}
}

func TestArrayReset(t *testing.T) {
	first := &bytes.Buffer{}
	a, err := NewArray(first)
	if err != nil {
		t.Fatalf("TestArrayReset: NewArray got err == %s, want err == nil", err)
	}
	if err := a.Write(value.NewMap().Set("v", value.Uint8(1))); err != nil {
		t.Fatalf("TestArrayReset: Write got err == %s, want err == nil", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("TestArrayReset: Close got err == %s, want err == nil", err)
	}

	second := &bytes.Buffer{}
	a.Reset(second)
	if err := a.Write(value.NewMap().Set("v", value.Uint8(2))); err != nil {
		t.Fatalf("TestArrayReset: Write after Reset got err == %s, want err == nil", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("TestArrayReset: Close after Reset got err == %s, want err == nil", err)
	}

	if got := string(bytes.TrimSpace(second.Bytes())); got != `[{"v":2}]` {
		t.Errorf("TestArrayReset: got %q, want %q", got, `[{"v":2}]`)
	}
}

func TestText(t *testing.T) {
	m := value.NewMap().
		Set("size", value.Uint16(3)).
		Set("data", value.Bytes([]byte{0xAB, 0xCD})).
		Set("body", value.MapValue(value.NewMap().Set("x", value.Uint8(1)))).
		Set("items", value.ListValue(value.List{value.Uint8(1), value.Uint8(2)})).
		Set("name", value.String("hi")).
		Set("gap", value.Null())

	buf, err := Text(m)
	if err != nil {
		t.Fatalf("TestText: got err == %s, want err == nil", err)
	}
	defer buf.Release(context.Background())

	want := "size: 3\n" +
		"data: 0xabcd\n" +
		"body: {\n" +
		"    x: 1\n" +
		"}\n" +
		"items: [\n" +
		"    1\n" +
		"    2\n" +
		"]\n" +
		"name: \"hi\"\n" +
		"gap: null\n"
	if diff := pretty.Compare(want, buf.String()); diff != "" {
		t.Errorf("TestText: -want/+got:\n%s", diff)
	}
}

func TestTextOptions(t *testing.T) {
	tests := []struct {
		desc    string
		m       *value.Map
		options []MarshalOption
		want    string
	}{
		{
			desc:    "Success: bytes limit truncates",
			m:       value.NewMap().Set("data", value.Bytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})),
			options: []MarshalOption{WithBytesLimit(4)},
			want:    "data: 0x01020304... (8 bytes)\n",
		},
		{
			desc:    "Success: limit at size leaves bytes whole",
			m:       value.NewMap().Set("data", value.Bytes([]byte{1, 2})),
			options: []MarshalOption{WithBytesLimit(2)},
			want:    "data: 0x0102\n",
		},
		{
			desc:    "Success: custom indent",
			m:       value.NewMap().Set("body", value.MapValue(value.NewMap().Set("x", value.Uint8(1)))),
			options: []MarshalOption{WithIndent("\t")},
			want:    "body: {\n\tx: 1\n}\n",
		},
		{
			desc: "Success: empty key renders quoted",
			m:    value.NewMap().Set("", value.Bytes([]byte{0xFF})),
			want: "\"\": 0xff\n",
		},
	}

	for _, test := range tests {
		buf := &bytes.Buffer{}
		if err := TextWriter(buf, test.m, test.options...); err != nil {
			t.Errorf("TestTextOptions(%s): got err == %s, want err == nil", test.desc, err)
			continue
		}
		if diff := pretty.Compare(test.want, buf.String()); diff != "" {
			t.Errorf("TestTextOptions(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestTextRelease(t *testing.T) {
	m := value.NewMap().Set("v", value.Uint8(1))
	buf, err := Text(m)
	if err != nil {
		t.Fatalf("TestTextRelease: got err == %s, want err == nil", err)
	}
	if buf.Len() == 0 {
		t.Errorf("TestTextRelease: got empty buffer, want content")
	}
	buf.Release(context.Background())
}
