// Package compress provides the payload codecs of the stridx container.
//
// Four codecs are available, selected by format.CompressionType:
//
//   - CompressionNone: pass-through (NoOpCompressor)
//   - CompressionZstd: best ratio, the container default (ZstdCompressor)
//   - CompressionS2: fastest compression (S2Compressor)
//   - CompressionLZ4: balanced block compression (LZ4Compressor)
//
// All codecs are stateless values safe for concurrent use; internal pooling
// keeps repeat operations allocation-free where the underlying library
// supports it. CreateCodec and GetCodec construct codecs from the container
// header's compression tag.
//
// The zstd codec has a cgo variant: build with -tags cgozstd to use
// valyala/gozstd (libzstd) instead of the default pure-Go
// klauspost/compress implementation.
package compress
