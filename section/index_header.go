package section

import (
	"github.com/arloliu/stridx/endian"
	"github.com/arloliu/stridx/errs"
)

// IndexHeader is the fixed-size header of a serialized string index.
// It is 32 bytes and describes everything needed to locate and verify the
// chunk directory and the cell payload that follow it.
type IndexHeader struct {
	// Flag is the packed flag field including the magic number (0xEC10).
	Flag IndexFlag // 4 bytes, offset 0-3

	// KeyCount is the total number of keys across all chunks.
	KeyCount uint32 // 4 bytes, offset 4-7
	// ChunkCount is the number of trie chunks in the payload.
	ChunkCount uint32 // 4 bytes, offset 8-11
	// PayloadSize is the uncompressed size of the cell payload in bytes.
	PayloadSize uint32 // 4 bytes, offset 12-15
	// Checksum is the xxHash64 digest of the uncompressed cell payload.
	Checksum uint64 // 8 bytes, offset 16-23

	Reserved [8]byte // Reserved for future use, must be zero, offset 24-31
}

// NewIndexHeader creates an IndexHeader with default flags for the given key
// and chunk counts.
//
// Chunk counts are validated only structurally here: an empty index has zero
// chunks, a non-empty one has at least one and no more than one per key.
func NewIndexHeader(keyCount, chunkCount int) (*IndexHeader, error) {
	if keyCount < 0 || chunkCount < 0 {
		return nil, errs.ErrInvalidChunkCount
	}

	if (keyCount == 0) != (chunkCount == 0) || chunkCount > keyCount {
		return nil, errs.ErrInvalidChunkCount
	}

	return &IndexHeader{
		Flag:       NewIndexFlag(),
		KeyCount:   uint32(keyCount),   //nolint:gosec
		ChunkCount: uint32(chunkCount), //nolint:gosec
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or the flags are
// invalid.
func (h *IndexHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field is always little-endian; its endianness bit selects
	// the engine for everything after it.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Flag.Reserved = data[3]

	engine := h.GetEndianEngine()

	h.KeyCount = engine.Uint32(data[4:8])
	h.ChunkCount = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])
	copy(h.Reserved[:], data[24:32])

	return h.Validate()
}

// Bytes serializes the IndexHeader into a byte slice.
func (h *IndexHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.GetEndianEngine()

	// Options is written little-endian regardless of the engine so readers
	// can bootstrap the endianness bit.
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Flag.Reserved

	engine.PutUint32(b[4:8], h.KeyCount)
	engine.PutUint32(b[8:12], h.ChunkCount)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.Checksum)
	copy(b[24:32], h.Reserved[:])

	return b
}

// GetEndianEngine returns the endian engine selected by the header flags.
func (h *IndexHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the flag field and structural count invariants.
func (h *IndexHeader) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if (h.KeyCount == 0) != (h.ChunkCount == 0) || h.ChunkCount > h.KeyCount {
		return errs.ErrInvalidChunkCount
	}

	for _, b := range h.Reserved {
		if b != 0 {
			return errs.ErrInvalidHeaderFlags
		}
	}

	return nil
}
