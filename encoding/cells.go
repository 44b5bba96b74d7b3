// Package encoding converts cell payloads between their in-memory []uint16
// form and the container's byte representation.
//
// Cells are stored back to back in the byte order named by the container
// header. When that order matches the host's, encoding and decoding
// reinterpret the slice memory directly instead of converting cell by cell;
// the two paths produce identical bytes.
package encoding

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/stridx/endian"
	"github.com/arloliu/stridx/errs"
)

// CellSize is the encoded size of one cell in bytes.
const CellSize = 2

// AppendCells appends the byte representation of cells to dst and returns
// the extended slice.
func AppendCells(dst []byte, cells []uint16, engine endian.EndianEngine) []byte {
	if len(cells) == 0 {
		return dst
	}

	if endian.IsNative(engine) {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&cells[0])), len(cells)*CellSize)

		return append(dst, raw...)
	}

	for _, cell := range cells {
		dst = engine.AppendUint16(dst, cell)
	}

	return dst
}

// DecodeCells decodes data into a freshly allocated cell slice. The data
// length must be a whole number of cells.
func DecodeCells(data []byte, engine endian.EndianEngine) ([]uint16, error) {
	if len(data)%CellSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of cells", errs.ErrInvalidPayloadSize, len(data))
	}

	cells := make([]uint16, len(data)/CellSize)
	if len(cells) == 0 {
		return cells, nil
	}

	if endian.IsNative(engine) {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&cells[0])), len(data))
		copy(raw, data)

		return cells, nil
	}

	for i := range cells {
		cells[i] = engine.Uint16(data[i*CellSize:])
	}

	return cells, nil
}
