// Package dump renders parsed result mappings for humans and machines: JSON
// with the mapping's field order preserved, and an indented text form for
// terminals. Rendering is one way. A JSON string cannot say whether it was
// a text field or base64 of a byte run, so there is no JSON to mapping
// parser; to go back to bytes, build from the mapping a parse produced.
package dump

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/bytefield/binform/value"
)

// marshalOptions provides options for rendering a mapping.
type marshalOptions struct {
	indent     string
	hexBytes   bool
	bytesLimit int
}

// MarshalOption provides options for rendering a mapping.
type MarshalOption func(marshalOptions) (marshalOptions, error)

// WithIndent configures multi-line JSON using indent per nesting level, and
// overrides the text form's default four spaces. The JSON default is
// compact single-line output.
func WithIndent(indent string) MarshalOption {
	return func(m marshalOptions) (marshalOptions, error) {
		m.indent = indent
		return m, nil
	}
}

// WithHexBytes configures byte runs in JSON to render as lowercase hex
// strings instead of base64. The text form is always hex.
func WithHexBytes(use bool) MarshalOption {
	return func(m marshalOptions) (marshalOptions, error) {
		m.hexBytes = use
		return m, nil
	}
}

// JSON renders the mapping to JSON.
func JSON(m *value.Map, options ...MarshalOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := JSONWriter(&buf, m, options...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONWriter renders the mapping to JSON, writing to the provided io.Writer.
func JSONWriter(w io.Writer, m *value.Map, options ...MarshalOption) error {
	opts := marshalOptions{}
	for _, opt := range options {
		var err error
		opts, err = opt(opts)
		if err != nil {
			return err
		}
	}
	enc := jsontext.NewEncoder(w, jsonOpts(opts)...)
	return writeMap(enc, m, opts)
}

func jsonOpts(opts marshalOptions) []jsontext.Options {
	if opts.indent == "" {
		return nil
	}
	return []jsontext.Options{jsontext.WithIndent(opts.indent)}
}

// writeMap writes one mapping as a JSON object, keys in mapping order.
func writeMap(enc *jsontext.Encoder, m *value.Map, opts marshalOptions) error {
	if m == nil {
		return enc.WriteToken(jsontext.Null)
	}
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, k := range m.Keys() {
		if err := enc.WriteToken(jsontext.String(k)); err != nil {
			return err
		}
		v, _ := m.Get(k)
		if err := writeValue(enc, v, opts); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

// writeValue writes the JSON value for one field value.
func writeValue(enc *jsontext.Encoder, v value.Value, opts marshalOptions) error {
	switch v.Kind() {
	case value.KindInvalid:
		return enc.WriteToken(jsontext.Null)

	case value.KindInt:
		n, err := v.AsInt64()
		if err != nil {
			return err
		}
		return enc.WriteToken(jsontext.Int(n))

	case value.KindUint:
		u, err := v.AsUint64()
		if err != nil {
			return err
		}
		return enc.WriteToken(jsontext.Uint(u))

	case value.KindBytes:
		b, err := v.AsBytes()
		if err != nil {
			return err
		}
		if opts.hexBytes {
			return enc.WriteToken(jsontext.String(hex.EncodeToString(b)))
		}
		return enc.WriteToken(jsontext.String(base64.StdEncoding.EncodeToString(b)))

	case value.KindString:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		return enc.WriteToken(jsontext.String(s))

	case value.KindList:
		list, err := v.AsList()
		if err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, e := range list {
			if err := writeValue(enc, e, opts); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)

	case value.KindMap:
		sub, err := v.AsMap()
		if err != nil {
			return err
		}
		return writeMap(enc, sub, opts)
	}

	return fmt.Errorf("unsupported value kind: %v", v.Kind())
}

// Array is used to write out an array of JSON objects, one mapping at a
// time, without holding them all in memory.
type Array struct {
	writer  io.Writer
	enc     *jsontext.Encoder
	opts    marshalOptions
	written bool
}

// NewArray creates a new Array for streaming JSON array output to w.
func NewArray(w io.Writer, options ...MarshalOption) (*Array, error) {
	opts := marshalOptions{}
	for _, opt := range options {
		var err error
		opts, err = opt(opts)
		if err != nil {
			return nil, err
		}
	}
	return &Array{writer: w, enc: jsontext.NewEncoder(w, jsonOpts(opts)...), opts: opts}, nil
}

// Write writes one mapping as the array's next element.
func (a *Array) Write(m *value.Map) error {
	if !a.written {
		if err := a.enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		a.written = true
	}
	return writeMap(a.enc, m, a.opts)
}

// Close finishes writing the JSON array. An Array that never saw a Write
// emits an empty array.
func (a *Array) Close() error {
	if !a.written {
		if err := a.enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
	}
	return a.enc.WriteToken(jsontext.EndArray)
}

// Reset resets the Array to write a fresh array to a new io.Writer.
func (a *Array) Reset(w io.Writer) {
	a.writer = w
	a.enc = jsontext.NewEncoder(w, jsonOpts(a.opts)...)
	a.written = false
}
