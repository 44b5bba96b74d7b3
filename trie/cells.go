package trie

import "slices"

// Cell tag bits and capacity limits of the packed record encoding.
const (
	// leafBit marks a record whose low bits hold a final row index.
	leafBit = 0x8000

	// budBit marks a record whose low bits hold the row index of a key that
	// is a strict prefix of later keys in the same branch.
	budBit = 0x4000

	// rowMask extracts the row index from leaf and bud records.
	rowMask = budBit - 1

	// MaxBlobRows is the maximum number of rows one packed trie can index:
	// row indices must fit in the 14 bits below the tag bits. Larger tables
	// are split into a chain of blobs of this size.
	MaxBlobRows = 0x4000

	// MaxKeyUnits is the maximum key length in UTF-16 code units. Skip
	// records store a character distance in a plain cell, and no distance
	// may reach the tag bits.
	MaxKeyUnits = 0x3FFF
)

// recordKind classifies a record cell.
type recordKind uint8

const (
	recordSkip recordKind = iota
	recordLeaf
	recordBud
)

// record is the decoded form of a record cell. value holds the row index
// for leaf and bud records and the character distance to the next decision
// point for skip records.
type record struct {
	kind  recordKind
	value int
}

// pack encodes the record into its cell form.
func (r record) pack() uint16 {
	switch r.kind {
	case recordLeaf:
		return uint16(r.value&rowMask) | leafBit
	case recordBud:
		return uint16(r.value&rowMask) | budBit
	default:
		return uint16(r.value)
	}
}

// unpackRecord decodes a record cell. The leaf bit wins when both tag bits
// are set, mirroring the order lookups test them.
func unpackRecord(cell uint16) record {
	if cell&leafBit != 0 {
		return record{kind: recordLeaf, value: int(cell &^ leafBit)}
	}

	if cell&budBit != 0 {
		return record{kind: recordBud, value: int(cell &^ budBit)}
	}

	return record{kind: recordSkip, value: int(cell)}
}

// nodeView is a bounds-checked view of one node in a cell image.
//
// Node layout: the cell before base holds the branch count n, the branch
// characters occupy [base, base+n) in ascending order, records occupy
// [base+n, base+2n), and when any branch is a non-leaf a jump section
// occupies [base+2n, base+3n-1). Children follow depth-first in branch
// order.
type nodeView struct {
	cells    []uint16
	base     int
	branches int
}

// readNode reads the node starting at pos. It reports failure when pos is
// out of range or the chars and records would run past the cells, so walks
// over corrupt images stop cleanly instead of panicking.
func readNode(cells []uint16, pos int) (nodeView, bool) {
	if pos < 0 || pos >= len(cells) {
		return nodeView{}, false
	}

	n := int(cells[pos])
	base := pos + 1
	if n == 0 || base+2*n > len(cells) {
		return nodeView{}, false
	}

	return nodeView{cells: cells, base: base, branches: n}, true
}

// findBranch binary-searches the node's characters for unit.
func (n nodeView) findBranch(unit uint16) (int, bool) {
	return slices.BinarySearch(n.cells[n.base:n.base+n.branches], unit)
}

// record returns branch i's decoded record.
func (n nodeView) record(i int) record {
	return unpackRecord(n.cells[n.base+n.branches+i])
}

// childPos returns the cell position of branch i's subtree. It is meaningful
// only for non-leaf records; a node carrying one always has a jump section.
func (n nodeView) childPos(i int) int {
	pos := n.base + 3*n.branches - 1
	if pos > len(n.cells) {
		// Truncated jump section in a corrupt image: push the walk off the
		// end so the next readNode fails.
		return len(n.cells)
	}

	if i > 0 {
		return pos + int(n.cells[n.base+2*n.branches+i-1])
	}

	return pos
}
