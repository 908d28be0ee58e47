// Package compress provides the compression codecs used by compressed
// sections of a binary layout. Codecs are kept in a package level registry
// keyed by algorithm so that schemas can name an algorithm without holding
// a codec instance, and so that applications can register their own.
//
// The zero algorithm AlgNone is a passthrough and never consults the
// registry.
package compress

import (
	"fmt"

	"github.com/gostdlib/base/concurrency/sync"
)

//go:generate stringer -type=Alg -linecomment

// Alg identifies a compression algorithm.
type Alg uint8

const (
	// AlgNone stores data uncompressed.
	AlgNone Alg = 0 // None
	// AlgGzip is RFC 1952 gzip.
	AlgGzip Alg = 1 // Gzip
	// AlgSnappy is Google's snappy block format.
	AlgSnappy Alg = 2 // Snappy
	// AlgZstd is Zstandard.
	AlgZstd Alg = 3 // Zstd
)

// Codec compresses and decompresses byte sections.
type Codec interface {
	// Compress compresses data.
	Compress(data []byte) ([]byte, error)
	// Decompress decompresses data.
	Decompress(data []byte) ([]byte, error)
	// Type returns the algorithm this Codec handles.
	Type() Alg
}

var (
	mu     sync.RWMutex
	codecs = map[Alg]Codec{}
)

// Register registers a Codec for its algorithm, replacing any previous
// Codec registered for the same algorithm. Layouts look the Codec up at
// each use, so a replacement takes effect everywhere at once.
func Register(c Codec) {
	mu.Lock()
	defer mu.Unlock()
	codecs[c.Type()] = c
}

// Get returns the Codec registered for the algorithm, or nil. AlgNone has
// no Codec and always returns nil.
func Get(a Alg) Codec {
	mu.RLock()
	defer mu.RUnlock()
	return codecs[a]
}

// Compress compresses data with the named algorithm. AlgNone and empty
// data pass through unchanged.
func Compress(a Alg, data []byte) ([]byte, error) {
	if a == AlgNone || len(data) == 0 {
		return data, nil
	}
	c := Get(a)
	if c == nil {
		return nil, fmt.Errorf("no codec registered for algorithm %v", a)
	}
	return c.Compress(data)
}

// Decompress decompresses data with the named algorithm. AlgNone and empty
// data pass through unchanged.
func Decompress(a Alg, data []byte) ([]byte, error) {
	if a == AlgNone || len(data) == 0 {
		return data, nil
	}
	c := Get(a)
	if c == nil {
		return nil, fmt.Errorf("no codec registered for algorithm %v", a)
	}
	return c.Decompress(data)
}

func init() {
	Register(&Gzip{})
	Register(&Snappy{})
	Register(&Zstd{})
}
