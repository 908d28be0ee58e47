package compress

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Gzip implements Codec using RFC 1952 gzip.
type Gzip struct {
	// Level is the gzip compression level. If 0, defaults to
	// gzip.DefaultCompression.
	Level int
}

// Type implements Codec.Type().
func (g *Gzip) Type() Alg {
	return AlgGzip
}

// Compress implements Codec.Compress().
func (g *Gzip) Compress(data []byte) ([]byte, error) {
	level := g.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	buf := &bytes.Buffer{}
	w, err := gzip.NewWriterLevel(buf, level)
	if err != nil {
		return nil, fmt.Errorf("gzip writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress implements Codec.Decompress().
func (g *Gzip) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip read: %w", err)
	}
	return out, nil
}

// Snappy implements Codec using Google's snappy block format. Snappy
// trades ratio for speed, which suits layouts decoded on a hot path.
type Snappy struct{}

// Type implements Codec.Type().
func (s *Snappy) Type() Alg {
	return AlgSnappy
}

// Compress implements Codec.Compress().
func (s *Snappy) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

// Decompress implements Codec.Decompress().
func (s *Snappy) Decompress(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decode: %w", err)
	}
	return out, nil
}

// Zstd implements Codec using Zstandard.
type Zstd struct {
	// Level is the encoder level, one of zstd.SpeedFastest, zstd.SpeedDefault,
	// zstd.SpeedBetterCompression or zstd.SpeedBestCompression. If 0,
	// defaults to zstd.SpeedDefault.
	Level zstd.EncoderLevel
}

// Type implements Codec.Type().
func (z *Zstd) Type() Alg {
	return AlgZstd
}

// Compress implements Codec.Compress().
func (z *Zstd) Compress(data []byte) ([]byte, error) {
	level := z.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// Decompress implements Codec.Decompress().
func (z *Zstd) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
