package compress

// ZstdCompressor provides Zstandard compression for cell payloads.
//
// Zstd is the container default: cell payloads are dominated by sorted
// character runs and small integers, which zstd compresses well at a
// decompression speed that keeps Parse cheap.
//
// Two implementations exist behind build tags. The default is the pure-Go
// klauspost/compress codec with pooled encoder/decoder state; building with
// -tags cgozstd swaps in the libzstd binding for workloads dominated by
// Marshal.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
