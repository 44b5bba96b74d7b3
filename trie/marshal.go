package trie

import (
	"fmt"
	"math"

	"github.com/arloliu/stridx/compress"
	"github.com/arloliu/stridx/encoding"
	"github.com/arloliu/stridx/errs"
	"github.com/arloliu/stridx/format"
	"github.com/arloliu/stridx/internal/hash"
	"github.com/arloliu/stridx/internal/options"
	"github.com/arloliu/stridx/internal/pool"
	"github.com/arloliu/stridx/section"
)

// MarshalOption configures Marshal.
type MarshalOption = options.Option[*marshalConfig]

type marshalConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// WithCompression selects the codec applied to the cell payload. The
// default is format.CompressionZstd.
func WithCompression(compression format.CompressionType) MarshalOption {
	return options.New(func(cfg *marshalConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("invalid compression type: %s", compression)
		}
		cfg.compression = compression

		return nil
	})
}

// WithLittleEndian stores multi-byte container fields little-endian. This
// is the default.
func WithLittleEndian() MarshalOption {
	return options.NoError(func(cfg *marshalConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian stores multi-byte container fields big-endian.
func WithBigEndian() MarshalOption {
	return options.NoError(func(cfg *marshalConfig) {
		cfg.bigEndian = true
	})
}

// Marshal serializes the index into its container form: a fixed header, an
// uncompressed chunk directory, and the compressed cell payload. The
// payload holds each blob's cells in chain order followed by the chain's
// boundary keys; the directory records their lengths.
//
// The header checksum covers the uncompressed payload, so Parse detects
// corruption regardless of codec.
func Marshal(idx *Index, opts ...MarshalOption) ([]byte, error) {
	cfg := marshalConfig{compression: format.CompressionZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.NewIndexHeader(idx.Len(), len(idx.blobs))
	if err != nil {
		return nil, err
	}
	header.Flag.SetCompression(cfg.compression)
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	engine := header.GetEndianEngine()

	payload := pool.GetMarshalBuffer()
	defer pool.PutMarshalBuffer(payload)

	for i := range idx.blobs {
		payload.B = encoding.AppendCells(payload.B, idx.blobs[i].cells, engine)
	}
	for _, bound := range idx.bounds {
		payload.B = encoding.AppendCells(payload.B, bound, engine)
	}
	if int64(payload.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes overflows the header field",
			errs.ErrInvalidPayloadSize, payload.Len())
	}

	header.PayloadSize = uint32(payload.Len())
	header.Checksum = hash.Checksum(payload.Bytes())

	codec, err := compress.CreateCodec(cfg.compression, "cell payload")
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress cell payload: %w", err)
	}

	out := make([]byte, 0, section.HeaderSize+section.DirectorySize(len(idx.blobs))+len(compressed))
	out = append(out, header.Bytes()...)
	for i := range idx.blobs {
		out = engine.AppendUint32(out, uint32(len(idx.blobs[i].cells))) //nolint:gosec
	}
	for _, bound := range idx.bounds {
		out = engine.AppendUint16(out, uint16(len(bound))) //nolint:gosec
	}
	out = append(out, compressed...)

	return out, nil
}

// Parse reconstructs an Index from container bytes produced by Marshal.
//
// Validation is layered: header structure and flags first, then directory
// presence, then payload size and checksum against the decompressed bytes,
// and finally directory totals against the payload. Each layer fails with a
// sentinel from the errs package. The returned index does not reference
// data; the caller may reuse the slice.
func Parse(data []byte) (*Index, error) {
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	var header section.IndexHeader
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	keyCount := int(header.KeyCount)
	chunkCount := int(header.ChunkCount)
	if chunkCount != (keyCount+MaxBlobRows-1)/MaxBlobRows {
		return nil, fmt.Errorf("%w: %d chunks cannot hold %d keys",
			errs.ErrInvalidChunkCount, chunkCount, keyCount)
	}

	engine := header.GetEndianEngine()
	payloadOffset := section.DirectoryOffset + section.DirectorySize(chunkCount)
	if len(data) < payloadOffset {
		return nil, fmt.Errorf("%w: truncated at %d of %d bytes",
			errs.ErrInvalidIndexSection, len(data), payloadOffset)
	}

	offset := section.DirectoryOffset
	var totalCells int64

	cellCounts := make([]int, chunkCount)
	for i := range cellCounts {
		cellCounts[i] = int(engine.Uint32(data[offset:]))
		totalCells += int64(cellCounts[i])
		offset += section.ChunkEntrySize
	}

	var boundCounts []int
	if chunkCount > 1 {
		boundCounts = make([]int, chunkCount-1)
		for i := range boundCounts {
			boundCounts[i] = int(engine.Uint16(data[offset:]))
			totalCells += int64(boundCounts[i])
			offset += section.BoundEntrySize
		}
	}

	codec, err := compress.CreateCodec(header.Flag.GetCompression(), "cell payload")
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[payloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress cell payload: %w", err)
	}

	if int64(len(payload)) != int64(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header says %d bytes, payload has %d",
			errs.ErrInvalidPayloadSize, header.PayloadSize, len(payload))
	}
	if digest := hash.Checksum(payload); digest != header.Checksum {
		return nil, fmt.Errorf("%w: payload digest %#x, header %#x",
			errs.ErrChecksumMismatch, digest, header.Checksum)
	}
	if totalCells*encoding.CellSize != int64(len(payload)) {
		return nil, fmt.Errorf("%w: directory describes %d cells, payload holds %d bytes",
			errs.ErrInvalidIndexSection, totalCells, len(payload))
	}

	cells, err := encoding.DecodeCells(payload, engine)
	if err != nil {
		return nil, err
	}

	idx := &Index{keyCount: keyCount}
	pos := 0
	for _, count := range cellCounts {
		idx.blobs = append(idx.blobs, blob{cells: cells[pos : pos+count]})
		pos += count
	}
	for _, count := range boundCounts {
		idx.bounds = append(idx.bounds, cells[pos:pos+count])
		pos += count
	}

	return idx, nil
}
