// Package pool provides pooled byte buffers for the wire-format writer.
//
// Encoding a value allocates one working buffer; pooling the buffers keeps
// steady-state encoding allocation-free for typical blob sizes.
package pool

import "sync"

const (
	// BufferDefaultSize is the initial capacity of pooled buffers. Most
	// encoded parameter values are well under 4KiB.
	BufferDefaultSize = 4 * 1024

	// BufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers (huge time series or maps) are dropped so one
	// outlier does not pin memory for the whole process.
	BufferMaxThreshold = 256 * 1024
)

// ByteBuffer is a minimal growable byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a buffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the capacity of the underlying slice.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Reset empties the buffer but keeps the allocated memory for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Grow ensures capacity for at least n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	grown := make([]byte, len(bb.B), 2*cap(bb.B)+n)
	copy(grown, bb.B)
	bb.B = grown
}

// MustWrite appends data, growing the buffer as needed.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte.
func (bb *ByteBuffer) MustWriteByte(c byte) {
	bb.B = append(bb.B, c)
}

var bufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(BufferDefaultSize)
	},
}

// GetBuffer obtains an empty buffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a buffer to the pool. Buffers that grew past
// BufferMaxThreshold are dropped.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > BufferMaxThreshold {
		return
	}

	bufferPool.Put(bb)
}
