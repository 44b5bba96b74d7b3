package trie

import (
	"slices"

	"github.com/arloliu/stridx/codeunit"
	"github.com/arloliu/stridx/internal/pool"
)

// NotFound is returned by lookups when the key diverges from every indexed
// key at a decision point.
const NotFound = -1

// Index is an immutable map from the strings of a sorted table to their
// positions in it, packed into flat cell arrays.
//
// An Index is built once by Build or Parse and never mutated afterwards, so
// any number of goroutines may share one without synchronization.
type Index struct {
	blobs    []blob
	bounds   [][]uint16 // bounds[k] is the first key of blobs[k+1]
	keyCount int
}

// blob is one packed trie covering up to MaxBlobRows consecutive table rows.
type blob struct {
	cells []uint16
}

// Len returns the number of keys the index was built over.
func (idx *Index) Len() int {
	return idx.keyCount
}

// Lookup returns the table position of key.
//
// Lookup is succinct rather than exact: a key that was in the table always
// resolves to its position, but a key that was not may map onto an
// arbitrary position instead of NotFound. Only a key that diverges from
// every indexed key at a decision character reliably reports NotFound.
// Callers that probe with unverified keys compare the returned table entry
// against the key.
func (idx *Index) Lookup(key string) int {
	units, release := pool.GetUnitSlice(len(key))
	defer release()

	return idx.LookupUnits(codeunit.AppendString(units[:0], key))
}

// LookupUnits is Lookup for a key already in UTF-16 code unit form.
func (idx *Index) LookupUnits(key []uint16) int {
	if len(idx.blobs) == 0 {
		return NotFound
	}

	// Route to the first blob whose upper bound exceeds the key. The chain
	// is short (one entry per MaxBlobRows keys), so a linear scan beats a
	// binary search's bookkeeping.
	chunk := 0
	for chunk < len(idx.bounds) && slices.Compare(key, idx.bounds[chunk]) >= 0 {
		chunk++
	}

	row := lookupCells(idx.blobs[chunk].cells, key)
	if row == NotFound {
		return NotFound
	}

	return chunk*MaxBlobRows + row
}
