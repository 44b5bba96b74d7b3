package pool

import "sync"

// Default sizing for pooled marshal buffers. Containers for a full 16384-row
// chunk run to a few hundred KiB before compression, so the pool keeps
// mid-sized buffers and discards outliers.
const (
	MarshalBufferDefaultSize  = 64 * 1024       // 64KiB
	MarshalBufferMaxThreshold = 4 * 1024 * 1024 // 4MiB
)

// ByteBuffer is a growable byte slice with explicit capacity management.
// The underlying slice is exported so encoders can append into it directly.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by the pool default size, larger ones by
// 25% of capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := MarshalBufferDefaultSize
	if cap(bb.B) > 4*MarshalBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// MustWrite appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Write implements io.Writer; it never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool. Buffers whose
// capacity exceeds maxThreshold are dropped on Put to bound pool memory.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize
// capacity and discarding returned buffers larger than maxThreshold.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)

	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var marshalDefaultPool = NewByteBufferPool(MarshalBufferDefaultSize, MarshalBufferMaxThreshold)

// GetMarshalBuffer retrieves a ByteBuffer from the default marshal pool.
func GetMarshalBuffer() *ByteBuffer {
	return marshalDefaultPool.Get()
}

// PutMarshalBuffer returns a ByteBuffer to the default marshal pool.
func PutMarshalBuffer(bb *ByteBuffer) {
	marshalDefaultPool.Put(bb)
}
