package trie

// lookupCells walks one blob's cell image with the key's code units and
// returns the matched row, or NotFound when a decision character is absent.
//
// The walk is total: for any cell content and any key it either returns a
// row or NotFound, never panics, and always terminates, because the node
// position strictly increases and readNode rejects positions past the end.
// That keeps lookups over a parsed container safe even if the container was
// corrupted in a way its checksum cannot see.
func lookupCells(cells []uint16, key []uint16) int {
	pos := 0
	for keyPos := 0; keyPos < len(key); {
		node, ok := readNode(cells, pos)
		if !ok {
			return NotFound
		}

		branch, ok := node.findBranch(key[keyPos])
		if !ok {
			return NotFound
		}

		switch rec := node.record(branch); rec.kind {
		case recordLeaf:
			// The remaining characters are not stored; the caller verifies
			// them against its table if the key may be a non-member.
			return rec.value
		case recordBud:
			if keyPos == len(key)-1 {
				return rec.value
			}
			keyPos++
		case recordSkip:
			keyPos += rec.value
		}

		pos = node.childPos(branch)
	}

	return NotFound
}
