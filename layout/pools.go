package layout

import (
	"bytes"

	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/values/sizes"
)

// readers pools the bytes.Reader that Parse wraps byte slices in.
var readers = sync.NewPool[*bytes.Reader](
	context.Background(),
	"readersPool",
	func() *bytes.Reader {
		return &bytes.Reader{}
	},
	sync.WithBuffer(100),
)

// buffers pools the scratch buffers used by Build and by compressed
// sections.
var buffers = sync.NewPool[*bytes.Buffer](
	context.Background(),
	"buffersPool",
	func() *bytes.Buffer {
		return &bytes.Buffer{}
	},
	sync.WithBuffer(100),
)

func getReader(data []byte) *bytes.Reader {
	r := readers.Get(context.Background())
	r.Reset(data)
	return r
}

func putReader(r *bytes.Reader) {
	r.Reset(nil)
	readers.Put(context.Background(), r)
}

func getBuffer() *bytes.Buffer {
	b := buffers.Get(context.Background())
	b.Reset() // Reset in case the buffer was reused from the pool.
	return b
}

// putBuffer returns a buffer to the pool unless it has grown past 10MiB,
// in which case it is dropped so one oversized message cannot pin memory.
func putBuffer(b *bytes.Buffer) {
	if b.Cap() > 10*sizes.MiB {
		return
	}
	buffers.Put(context.Background(), b)
}
