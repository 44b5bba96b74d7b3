// Package section defines the low-level binary structures and constants of
// the stridx container format.
//
// A serialized index consists of a fixed-size header, a chunk directory, and
// a (possibly compressed) cell payload:
//
//	┌────────────────────────────────────────────────────────────┐
//	│ IndexHeader (32 bytes)                                     │
//	│   flags + magic, compression, key count, chunk count,      │
//	│   uncompressed payload size, xxHash64 payload checksum     │
//	├────────────────────────────────────────────────────────────┤
//	│ Chunk directory (uncompressed)                             │
//	│   cell count per chunk   (ChunkCount × uint32)             │
//	│   boundary unit counts   ((ChunkCount-1) × uint16)         │
//	├────────────────────────────────────────────────────────────┤
//	│ Cell payload (compressed per the header flag)              │
//	│   chunk cells in order, then boundary key units            │
//	└────────────────────────────────────────────────────────────┘
//
// The header's Options field is always parsed little-endian; its endianness
// bit then selects the byte order for every other field, the directory, and
// the payload.
//
// Types here perform structural validation only (sizes, magic, flag bits).
// Semantic validation of the trie cells themselves is the trie package's job.
package section
