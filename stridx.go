// Package stridx provides a succinct, immutable index from the strings of a
// sorted table to their positions in it.
//
// Stridx is optimized for large read-only string tables (method registries,
// symbol tables, dictionary keys) where a full hash map or a pointer-based
// trie costs too much memory. The index packs its entire structure into flat
// 16-bit cell arrays: no stored strings, no pointers, cheap to serialize,
// and safe to share across goroutines without locks.
//
// # Core Features
//
//   - Succinct storage: a few cells per key instead of the key itself
//   - UTF-16 code unit ordering with full supplementary-plane support
//   - Transparent chaining for tables past 16384 keys
//   - Binary container with xxHash64 integrity checking
//   - Optional payload compression (None, Zstd, S2, LZ4)
//   - Immutable, lock-free concurrent lookups
//
// # Basic Usage
//
// Building and querying an index:
//
//	import "github.com/arloliu/stridx"
//
//	table := []string{"getVersion", "getName", "getValue"}
//	stridx.Sort(table) // ascending code unit order
//
//	idx, _ := stridx.Build(table)
//	row := idx.Lookup("getName")
//	if row != stridx.NotFound {
//	    fmt.Println(table[row]) // "getName"
//	}
//
// Serializing an index:
//
//	data, _ := stridx.Marshal(idx)
//	restored, _ := stridx.Parse(data)
//
// # Lookup Contract
//
// Lookups are succinct rather than exact: a key that is in the table always
// resolves to its row, but a key that is not may resolve to an arbitrary
// row instead of NotFound. Callers probing with unverified keys compare the
// returned table entry against the key. This trade is what lets the index
// drop the stored strings.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the trie and
// codeunit packages, simplifying the most common use cases. For advanced
// usage such as pre-encoded code unit keys, use those packages directly.
package stridx

import (
	"github.com/arloliu/stridx/codeunit"
	"github.com/arloliu/stridx/trie"
)

// NotFound is returned by lookups when the key diverges from every indexed
// key at a decision point.
const NotFound = trie.NotFound

// Build constructs an immutable index mapping table[i] to i.
//
// The table must be sorted in ascending UTF-16 code unit order (use Sort)
// with no duplicates, no empty keys, and no key longer than
// trie.MaxKeyUnits code units. Build validates the table by default;
// callers that already guarantee the contract can pass
// trie.WithValidation(false) to skip the verification pass.
//
// Parameters:
//   - table: The sorted string table to index
//   - opts: Optional configuration functions (see trie.BuilderOption)
//
// Returns:
//   - *trie.Index: The built index.
//   - error: An error if the table violates the build contract.
//
// Example:
//
//	table := []string{"delta", "alpha", "gamma"}
//	stridx.Sort(table)
//	idx, err := stridx.Build(table)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Build(table []string, opts ...trie.BuilderOption) (*trie.Index, error) {
	return trie.Build(table, opts...)
}

// Marshal serializes an index into its binary container form: a fixed
// header, a chunk directory, and the compressed cell payload.
//
// Defaults are little-endian byte order and zstd compression. Override with
// trie.WithCompression, trie.WithLittleEndian, or trie.WithBigEndian.
//
// Parameters:
//   - idx: The index to serialize
//   - opts: Optional configuration functions (see trie.MarshalOption)
//
// Returns:
//   - []byte: The container bytes.
//   - error: An error if an option is invalid or compression fails.
//
// Example:
//
//	data, err := stridx.Marshal(idx,
//	    trie.WithCompression(format.CompressionS2),
//	)
func Marshal(idx *trie.Index, opts ...trie.MarshalOption) ([]byte, error) {
	return trie.Marshal(idx, opts...)
}

// Parse reconstructs an index from container bytes produced by Marshal.
//
// The container's header, chunk directory, payload size, and xxHash64
// checksum are all verified before any cell is accepted; failures return
// sentinel errors from the errs package.
//
// Parameters:
//   - data: The container bytes
//
// Returns:
//   - *trie.Index: The reconstructed index.
//   - error: An error if the container is malformed or corrupt.
//
// Example:
//
//	idx, err := stridx.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	row := idx.Lookup("getName")
func Parse(data []byte) (*trie.Index, error) {
	return trie.Parse(data)
}

// Sort sorts a table in place into ascending UTF-16 code unit order, the
// order Build requires.
//
// This differs from sort.Strings for strings containing supplementary
// characters: a code point above U+FFFF encodes as a surrogate pair whose
// lead unit sorts below U+E000..U+FFFF, while native byte order sorts it
// above. Tables sorted any other way fail Build's validation.
//
// Example:
//
//	table := []string{"zebra", "\U0001F600", "￿", "alpha"}
//	stridx.Sort(table)
//	// table is now in the order Build expects
func Sort(table []string) {
	codeunit.Sort(table)
}

// Compare reports the code unit order of two strings: -1 if a sorts before
// b, 0 if equal, +1 if after. It is the comparison Sort and Build use.
func Compare(a, b string) int {
	return codeunit.Compare(a, b)
}

// IsSorted reports whether a table is already in ascending code unit order
// as required by Build. It does not check for duplicates.
func IsSorted(table []string) bool {
	return codeunit.IsSorted(table)
}
