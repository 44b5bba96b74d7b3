// Package trie implements a succinct immutable index from the strings of a
// sorted table to their positions in it.
//
// The index answers one question: given a key, at which row of the original
// table does it live? It stores no strings and no pointers; each trie is a
// single flat []uint16 whose cells interleave branch characters, packed
// records, and relative jumps. The result is far smaller than a pointer
// based trie and cheap to serialize, at the price of an inexact miss
// contract (see Lookup).
//
// # Cell Layout
//
// A node distinguishing n branches occupies 3n cells, or 2n+1 when every
// branch ends in a leaf:
//
//	+--------+----------------+------------------+------------------+
//	| count  | chars (n)      | records (n)      | jumps (n-1)      |
//	| n      | ascending      | leaf/bud/skip    | omitted if all   |
//	|        | UTF-16 units   |                  | records are leaf |
//	+--------+----------------+------------------+------------------+
//
// Child nodes follow depth-first in branch order. The first branch's child
// starts right after the jump section; branch i's child starts jumps[i-1]
// cells later.
//
// A record cell is one of three kinds, distinguished by its top bits:
//
//   - leaf (0x8000 | row): the key ends here; return row.
//   - bud (0x4000 | row): return row if the key has exactly one character
//     left, otherwise consume it and descend (the key is a strict prefix of
//     the branch's longer keys).
//   - skip (plain count): the branch shares the next count characters;
//     consume them without storing them and descend.
//
// Keys are compared as UTF-16 code units, matching the table order that
// codeunit.Sort produces.
//
// # Capacity and Chaining
//
// Row indices share their cell with two tag bits, so one packed trie
// addresses at most MaxBlobRows rows. Build splits larger tables into a
// chain of tries plus the boundary key starting each later trie; lookups
// route by comparing against the boundaries and offset the matched row by
// MaxBlobRows per skipped trie.
//
// # Serialization
//
// Marshal writes an index as a 32-byte header, a chunk directory, and the
// cell payload compressed with a configurable codec (zstd by default).
// Parse reverses it, verifying the header, the directory, and an xxHash64
// checksum of the uncompressed payload before accepting any cell. Lookups
// tolerate arbitrary cell content without panicking, so a corrupt container
// that slips past these checks degrades to wrong answers, never to a crash.
//
// # Concurrency
//
// An Index is immutable after Build or Parse. Sharing one across goroutines
// requires no synchronization.
package trie
