package trie

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stridx/codeunit"
)

// sequentialTable returns n distinct keys already in code unit order.
func sequentialTable(n int) []string {
	table := make([]string, n)
	for i := range table {
		table[i] = fmt.Sprintf("key%08d", i)
	}

	return table
}

// randomTable returns n distinct random keys of 1 to 100 runes, drawn from
// the BMP and the first supplementary plane, in code unit order.
func randomTable(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[string]struct{}, n)
	table := make([]string, 0, n)

	var sb strings.Builder
	for len(table) < n {
		sb.Reset()
		for c, runes := 0, rng.Intn(100)+1; c < runes; c++ {
			r := rune(rng.Intn(0x2FFFF-0x21) + 0x21)
			if r >= 0xD800 && r <= 0xDFFF {
				// Surrogate code points cannot appear in a string.
				r -= 0x800
			}
			sb.WriteRune(r)
		}

		key := sb.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		table = append(table, key)
	}

	codeunit.Sort(table)

	return table
}

func requireRoundTrip(t *testing.T, idx *Index, table []string) {
	t.Helper()
	for i, key := range table {
		require.Equal(t, i, idx.Lookup(key), "key %q", key)
	}
}

func TestLookup_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		table []string
	}{
		{
			name:  "method names",
			table: []string{"getName", "getNameAndValue", "getValue", "getVersion", "setName", "setValue"},
		},
		{
			name:  "prefix chain",
			table: []string{"a", "ab", "abc", "abcd", "abcde"},
		},
		{
			name:  "shared and diverging prefixes",
			table: []string{"ab", "abc", "abd", "b", "ba", "bab"},
		},
		{
			name:  "mixed scripts",
			table: []string{"Zürich", "café", "naïve", "Ελληνικά", "русский", "हिन्दी", "日本語", "한국어"},
		},
		{
			name:  "supplementary plane",
			table: []string{"chess\U0001FA00", "chess\U0001FA01", "math\U0001D400", "math\U0001D401x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := append([]string(nil), tt.table...)
			codeunit.Sort(table)

			idx, err := Build(table)
			require.NoError(t, err)
			require.Equal(t, len(table), idx.Len())
			requireRoundTrip(t, idx, table)
		})
	}
}

func TestLookup_Misses(t *testing.T) {
	idx, err := Build([]string{"apple", "application", "banana"})
	require.NoError(t, err)

	tests := []struct {
		name string
		key  string
	}{
		{name: "absent first character", key: "cherry"},
		{name: "diverges mid key", key: "apricot"},
		{name: "skip runs past the key", key: "az"},
		{name: "empty key", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, NotFound, idx.Lookup(tt.key))
		})
	}
}

func TestLookup_NonMemberMayCollide(t *testing.T) {
	idx, err := Build([]string{"getName", "getValue", "getVersion"})
	require.NoError(t, err)

	// Characters after the last decision point are not stored, so a
	// non-member sharing the decision characters resolves to a member's
	// row. Callers verify the row against their table.
	require.Equal(t, 0, idx.Lookup("getNose"))
	require.Equal(t, 1, idx.Lookup("getVacuum"))
}

func TestLookupUnits_MatchesLookup(t *testing.T) {
	table := []string{"alpha", "beta", "delta", "gamma"}
	idx, err := Build(table)
	require.NoError(t, err)

	for i, key := range table {
		require.Equal(t, i, idx.LookupUnits(codeunit.Encode(key)))
		require.Equal(t, idx.Lookup(key), idx.LookupUnits(codeunit.Encode(key)))
	}

	require.Equal(t, NotFound, idx.LookupUnits(codeunit.Encode("omega")))
	require.Equal(t, NotFound, idx.LookupUnits(nil))
}

func TestBuild_SingleChunkAtCapacity(t *testing.T) {
	table := sequentialTable(MaxBlobRows)

	idx, err := Build(table)
	require.NoError(t, err)
	require.Len(t, idx.blobs, 1)
	require.Empty(t, idx.bounds)

	requireRoundTrip(t, idx, table)
}

func TestBuild_ChainsPastCapacity(t *testing.T) {
	table := sequentialTable(MaxBlobRows + 1)

	idx, err := Build(table)
	require.NoError(t, err)
	require.Len(t, idx.blobs, 2)
	require.Len(t, idx.bounds, 1)
	require.Equal(t, codeunit.Encode(table[MaxBlobRows]), idx.bounds[0])

	// The key right past the boundary routes to the second chunk and gets
	// the chain-wide row back.
	require.Equal(t, MaxBlobRows, idx.Lookup(table[MaxBlobRows]))
	requireRoundTrip(t, idx, table)
}

func TestLookup_RandomTableAcrossChunks(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 65536-key table in short mode")
	}

	table := randomTable(4*MaxBlobRows, 42)

	idx, err := Build(table)
	require.NoError(t, err)
	require.Len(t, idx.blobs, 4)
	require.Equal(t, 4*MaxBlobRows, idx.Len())

	requireRoundTrip(t, idx, table)
}

func TestLookup_Concurrent(t *testing.T) {
	table := randomTable(2000, 7)
	idx, err := Build(table)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, key := range table {
				if idx.Lookup(key) != i {
					t.Errorf("key %q resolved to %d, want %d", key, idx.Lookup(key), i)

					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLookupCells_CorruptImagesDoNotPanic(t *testing.T) {
	tests := []struct {
		name  string
		cells []uint16
	}{
		{name: "empty image", cells: nil},
		{name: "zero branch count", cells: []uint16{0}},
		{name: "count past the end", cells: []uint16{5, 'a'}},
		{name: "skip of zero", cells: []uint16{1, 'a', 0}},
		{name: "skip past key end", cells: []uint16{1, 'a', 0x3000}},
		{name: "truncated jump section", cells: []uint16{2, 'a', 'b', 1, 1}},
		{name: "jump off the end", cells: []uint16{2, 'A', 'a', 1, 1, 0x7FFF}},
		{name: "both tag bits set", cells: []uint16{1, 'a', 0xC005}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				lookupCells(tt.cells, codeunit.Encode("aaaaaaaa"))
			})
		})
	}
}
