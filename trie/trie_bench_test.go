package trie

import (
	"fmt"
	"testing"

	"github.com/arloliu/stridx/codeunit"
	"github.com/arloliu/stridx/format"
)

func BenchmarkBuild(b *testing.B) {
	tables := []struct {
		name  string
		table []string
	}{
		{name: "random_1000", table: randomTable(1000, 1)},
		{name: "sequential_16384", table: sequentialTable(MaxBlobRows)},
		{name: "sequential_65536", table: sequentialTable(4 * MaxBlobRows)},
	}

	for _, tt := range tables {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Build(tt.table, WithValidation(false)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuild_Validation(b *testing.B) {
	table := randomTable(10000, 2)

	b.Run("enabled", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Build(table); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("disabled", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Build(table, WithValidation(false)); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkLookup(b *testing.B) {
	table := randomTable(4*MaxBlobRows, 3)
	idx, err := Build(table)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("hit", func(b *testing.B) {
		i := 0
		for n := 0; n < b.N; n++ {
			if idx.Lookup(table[i]) != i {
				b.Fatalf("key %q missed", table[i])
			}
			i = (i + 1) % len(table)
		}
	})

	b.Run("miss", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			idx.Lookup("\x01definitely absent")
		}
	})

	b.Run("units", func(b *testing.B) {
		keys := make([][]uint16, len(table))
		for i, key := range table {
			keys[i] = codeunit.Encode(key)
		}
		i := 0
		for n := 0; n < b.N; n++ {
			if idx.LookupUnits(keys[i]) != i {
				b.Fatalf("key %d missed", i)
			}
			i = (i + 1) % len(keys)
		}
	})
}

func BenchmarkMarshal(b *testing.B) {
	table := randomTable(MaxBlobRows, 4)
	idx, err := Build(table)
	if err != nil {
		b.Fatal(err)
	}

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		b.Run(compression.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Marshal(idx, WithCompression(compression)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	table := randomTable(MaxBlobRows, 5)
	idx, err := Build(table)
	if err != nil {
		b.Fatal(err)
	}

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
	} {
		data, err := Marshal(idx, WithCompression(compression))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%s_%dB", compression, len(data)), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := Parse(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
