package trie

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/stridx/codeunit"
	"github.com/arloliu/stridx/errs"
	"github.com/arloliu/stridx/internal/options"
)

// BuilderOption configures Build.
type BuilderOption = options.Option[*builderConfig]

type builderConfig struct {
	validate bool
}

// WithValidation controls the table verification pass. Validation is on by
// default; callers that already guarantee a sorted, distinct table of
// in-range keys can disable it so Build is a pure encoding pass. With
// validation off, a table violating the contract produces an unspecified
// index.
func WithValidation(enabled bool) BuilderOption {
	return options.NoError(func(cfg *builderConfig) {
		cfg.validate = enabled
	})
}

// Build constructs an immutable Index mapping table[i] to i.
//
// The table must be sorted in ascending UTF-16 code unit order with no
// duplicates (see codeunit.Sort and codeunit.Compare; this differs from
// Go's native string order for supplementary characters). Keys must be
// non-empty and at most MaxKeyUnits code units long. Tables larger than
// MaxBlobRows are split transparently into a chain of packed tries.
//
// Build fails with a sentinel from the errs package when validation
// rejects the table, and with errs.ErrBlobTooLarge in the rare case that a
// packed trie outgrows its 16-bit jump cells.
func Build(table []string, opts ...BuilderOption) (*Index, error) {
	cfg := builderConfig{validate: true}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	rows := make([][]uint16, len(table))
	for i, key := range table {
		rows[i] = codeunit.Encode(key)
	}

	if cfg.validate {
		if err := validateRows(rows); err != nil {
			return nil, err
		}
	}

	idx := &Index{keyCount: len(table)}
	for start := 0; start < len(rows); start += MaxBlobRows {
		end := min(start+MaxBlobRows, len(rows))
		chunk := rows[start:end]

		cells, err := buildNode(chunk, 0, 0, len(chunk))
		if err != nil {
			return nil, err
		}

		if start > 0 {
			idx.bounds = append(idx.bounds, rows[start])
		}
		idx.blobs = append(idx.blobs, blob{cells: cells})
	}

	return idx, nil
}

// validateRows checks the build contract on the encoded table: non-empty
// keys within MaxKeyUnits, in ascending code unit order, no duplicates.
func validateRows(rows [][]uint16) error {
	for i, row := range rows {
		if len(row) == 0 {
			return fmt.Errorf("%w: row %d", errs.ErrEmptyKey, i)
		}
		if len(row) > MaxKeyUnits {
			return fmt.Errorf("%w: row %d has %d units", errs.ErrKeyTooLong, i, len(row))
		}
		if i == 0 {
			continue
		}

		switch cmp := slices.Compare(rows[i-1], row); {
		case cmp == 0:
			return fmt.Errorf("%w: rows %d and %d", errs.ErrDuplicateKey, i-1, i)
		case cmp > 0:
			return fmt.Errorf("%w: row %d sorts before row %d", errs.ErrTableNotSorted, i, i-1)
		}
	}

	return nil
}

// branchPlan is one branch of a node awaiting assembly: its character, its
// record, and its already-encoded subtree (nil for leaves).
type branchPlan struct {
	char  uint16
	rec   record
	child []uint16
}

// buildNode encodes the subtree distinguishing rows[row:rowLimit) from
// column onward and returns its cells, nil when the row range is empty.
//
// Children are encoded before the parent header is assembled, so every
// jump value is an exact subtree size rather than a patched offset.
func buildNode(rows [][]uint16, column, row, rowLimit int) ([]uint16, error) {
	var branches []branchPlan
	allLeaves := true

	for row < rowLimit {
		cells := rows[row]
		columnLimit := len(cells)
		char := cells[column]
		nextRow := branchEnd(rows, char, column, row, rowLimit)
		nextColumn := nextDecisionColumn(rows, column, row, nextRow)

		// When the first row runs out exactly where the branch stops
		// diverging, back up one column so that row ends on a bud record one
		// character before its last.
		if nextColumn == columnLimit && nextColumn-column > 1 && nextRow-row > 1 {
			nextColumn--
		}

		plan := branchPlan{char: char}
		if nextColumn < columnLimit {
			child, err := buildNode(rows, nextColumn, row, nextRow)
			if err != nil {
				return nil, err
			}
			plan.rec = record{kind: recordSkip, value: nextColumn - column}
			plan.child = child
			allLeaves = false
		} else {
			child, err := buildNode(rows, nextColumn, row+1, nextRow)
			if err != nil {
				return nil, err
			}
			if child == nil {
				plan.rec = record{kind: recordLeaf, value: row}
			} else {
				plan.rec = record{kind: recordBud, value: row}
				plan.child = child
				allLeaves = false
			}
		}

		branches = append(branches, plan)
		row = nextRow
	}

	return assembleNode(branches, allLeaves)
}

// assembleNode lays out a node: branch count, characters, records, the jump
// section when any branch has a subtree, then the subtrees in branch order.
func assembleNode(branches []branchPlan, allLeaves bool) ([]uint16, error) {
	n := len(branches)
	if n == 0 {
		return nil, nil
	}

	size := 1 + 2*n
	if !allLeaves {
		size += n - 1
	}
	for i := range branches {
		size += len(branches[i].child)
	}

	out := make([]uint16, 0, size)
	out = append(out, uint16(n))
	for i := range branches {
		out = append(out, branches[i].char)
	}
	for i := range branches {
		out = append(out, branches[i].rec.pack())
	}

	if !allLeaves {
		jump := 0
		for i := 0; i < n-1; i++ {
			jump += len(branches[i].child)
			if jump > math.MaxUint16 {
				return nil, fmt.Errorf("%w: node jump spans %d cells", errs.ErrBlobTooLarge, jump)
			}
			out = append(out, uint16(jump))
		}
	}

	for i := range branches {
		out = append(out, branches[i].child...)
	}

	return out, nil
}

// branchEnd returns the first row past row whose character at column
// differs from char or that is too short to have one; rows[row:branchEnd)
// form a single branch.
func branchEnd(rows [][]uint16, char uint16, column, row, rowLimit int) int {
	for row++; row < rowLimit; row++ {
		cells := rows[row]
		if column >= len(cells) || cells[column] != char {
			break
		}
	}

	return row
}

// nextDecisionColumn returns the first column past column at which the
// branch rows[row:rowLimit) stop agreeing with the first row, or the first
// row's length when they never do.
func nextDecisionColumn(rows [][]uint16, column, row, rowLimit int) int {
	cells := rows[row]
	columnLimit := len(cells)
	for c := column + 1; c < columnLimit; c++ {
		if branchEnd(rows, cells[c], c, row, rowLimit) < rowLimit {
			return c
		}
	}

	return columnLimit
}
