package dump

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/values/sizes"

	"github.com/bytefield/binform/value"
)

// Pre-allocated byte slices for common text tokens.
var (
	textOpenBrace    = []byte("{")
	textCloseBrace   = []byte("}")
	textOpenBracket  = []byte("[")
	textCloseBracket = []byte("]")
	textColon        = []byte(": ")
	textNull         = []byte("null")
	textNewline      = []byte("\n")
	textIndent       = []byte("    ") // 4 spaces default
)

var textPool = &bufferPool{
	pool: sync.NewPool[*bytes.Buffer](
		context.Background(),
		"dump.textPool",
		func() *bytes.Buffer {
			b := &bytes.Buffer{}
			b.Grow(256)
			return b
		},
	),
}

// Buffer is a bytes.Buffer with a Release method to return it to the pool.
type Buffer struct {
	*bytes.Buffer
}

// Release returns the Buffer to the pool. Only use this once you are done
// with it.
func (b Buffer) Release(ctx context.Context) {
	textPool.put(ctx, b.Buffer)
}

type bufferPool struct {
	pool *sync.Pool[*bytes.Buffer]
}

func (p *bufferPool) get(ctx context.Context) *bytes.Buffer {
	return p.pool.Get(ctx)
}

func (p *bufferPool) put(ctx context.Context, b *bytes.Buffer) {
	if b.Cap() > 10*sizes.MiB {
		return
	}
	b.Reset()
	p.pool.Put(ctx, b)
}

// WithBytesLimit truncates byte runs in text output to the first n bytes,
// with the total size noted after. Zero means no truncation. JSON output is
// never truncated.
func WithBytesLimit(n int) MarshalOption {
	return func(m marshalOptions) (marshalOptions, error) {
		if n < 0 {
			return m, fmt.Errorf("bytes limit cannot be negative, got %d", n)
		}
		m.bytesLimit = n
		return m, nil
	}
}

// Text renders the mapping to the indented text form, top level fields
// unbraced, nested mappings in braces. The returned Buffer is pooled; call
// Release once done with it.
func Text(m *value.Map, options ...MarshalOption) (Buffer, error) {
	ctx := context.Background()
	buf := textPool.get(ctx)
	if err := TextWriter(buf, m, options...); err != nil {
		textPool.put(ctx, buf)
		return Buffer{}, err
	}
	return Buffer{buf}, nil
}

// TextWriter renders the mapping to the text form, writing to the provided
// io.Writer.
func TextWriter(w io.Writer, m *value.Map, options ...MarshalOption) error {
	opts := marshalOptions{}
	for _, opt := range options {
		var err error
		opts, err = opt(opts)
		if err != nil {
			return err
		}
	}
	indent := textIndent
	if opts.indent != "" {
		indent = []byte(opts.indent)
	}
	return writeTextMap(w, m, opts, indent, 0, true)
}

func writeTextMap(w io.Writer, m *value.Map, opts marshalOptions, indent []byte, depth int, top bool) error {
	if m == nil {
		_, err := w.Write(textNull)
		return err
	}
	if !top {
		if _, err := w.Write(textOpenBrace); err != nil {
			return err
		}
		if _, err := w.Write(textNewline); err != nil {
			return err
		}
	}
	for _, k := range m.Keys() {
		if err := writeTextIndent(w, indent, depth); err != nil {
			return err
		}
		name := k
		if name == "" {
			name = `""`
		}
		if _, err := io.WriteString(w, name); err != nil {
			return err
		}
		if _, err := w.Write(textColon); err != nil {
			return err
		}
		v, _ := m.Get(k)
		if err := writeTextValue(w, v, opts, indent, depth); err != nil {
			return err
		}
		if _, err := w.Write(textNewline); err != nil {
			return err
		}
	}
	if !top {
		if err := writeTextIndent(w, indent, depth-1); err != nil {
			return err
		}
		if _, err := w.Write(textCloseBrace); err != nil {
			return err
		}
	}
	return nil
}

// writeTextValue writes one value at depth. Containers indent their
// contents one level deeper and close at the current level.
func writeTextValue(w io.Writer, v value.Value, opts marshalOptions, indent []byte, depth int) error {
	switch v.Kind() {
	case value.KindInvalid:
		_, err := w.Write(textNull)
		return err

	case value.KindInt:
		n, err := v.AsInt64()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, strconv.FormatInt(n, 10))
		return err

	case value.KindUint:
		u, err := v.AsUint64()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, strconv.FormatUint(u, 10))
		return err

	case value.KindBytes:
		b, err := v.AsBytes()
		if err != nil {
			return err
		}
		if opts.bytesLimit > 0 && len(b) > opts.bytesLimit {
			_, err = fmt.Fprintf(w, "0x%x... (%d bytes)", b[:opts.bytesLimit], len(b))
			return err
		}
		_, err = fmt.Fprintf(w, "0x%x", b)
		return err

	case value.KindString:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, strconv.Quote(s))
		return err

	case value.KindList:
		list, err := v.AsList()
		if err != nil {
			return err
		}
		if _, err := w.Write(textOpenBracket); err != nil {
			return err
		}
		if _, err := w.Write(textNewline); err != nil {
			return err
		}
		for _, e := range list {
			if err := writeTextIndent(w, indent, depth+1); err != nil {
				return err
			}
			if err := writeTextValue(w, e, opts, indent, depth+1); err != nil {
				return err
			}
			if _, err := w.Write(textNewline); err != nil {
				return err
			}
		}
		if err := writeTextIndent(w, indent, depth); err != nil {
			return err
		}
		_, err = w.Write(textCloseBracket)
		return err

	case value.KindMap:
		sub, err := v.AsMap()
		if err != nil {
			return err
		}
		return writeTextMap(w, sub, opts, indent, depth+1, false)
	}

	return fmt.Errorf("unsupported value kind: %v", v.Kind())
}

func writeTextIndent(w io.Writer, indent []byte, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := w.Write(indent); err != nil {
			return err
		}
	}
	return nil
}
