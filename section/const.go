package section

const (
	// Bit masks for the Options field
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1): 0=little, 1=big
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicIndexV1Opt = 0xEC10 // MagicIndexV1Opt is the version 1 magic number for the string index container.
)

// Offsets and section sizes in the container.
const (
	HeaderSize      = 32         // fixed header size in bytes
	ChunkEntrySize  = 4          // chunk directory entry size in bytes (cell count, uint32)
	BoundEntrySize  = 2          // boundary directory entry size in bytes (unit count, uint16)
	DirectoryOffset = HeaderSize // byte offset where the chunk directory starts
)

// DirectorySize returns the byte size of the chunk directory for the given
// chunk count: one cell count per chunk plus one boundary length per chunk
// transition.
func DirectorySize(chunkCount int) int {
	if chunkCount <= 0 {
		return 0
	}

	return chunkCount*ChunkEntrySize + (chunkCount-1)*BoundEntrySize
}
