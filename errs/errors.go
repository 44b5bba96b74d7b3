// Package errs defines the sentinel errors returned by stridx packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is even when call sites wrap them with additional context.
package errs

import "errors"

// Build-time table validation errors.
var (
	// ErrEmptyKey indicates the table contains an empty string, which the
	// trie cannot represent (an empty key consumes no decision points).
	ErrEmptyKey = errors.New("table contains an empty key")

	// ErrKeyTooLong indicates a key exceeds the maximum number of UTF-16
	// code units a skip record can span.
	ErrKeyTooLong = errors.New("key exceeds maximum code unit length")

	// ErrTableNotSorted indicates the table is not in ascending UTF-16
	// code unit order.
	ErrTableNotSorted = errors.New("table is not sorted in code unit order")

	// ErrDuplicateKey indicates the table contains the same key twice.
	ErrDuplicateKey = errors.New("table contains duplicate keys")

	// ErrBlobTooLarge indicates a packed trie grew past what its 16-bit jump
	// cells can address.
	ErrBlobTooLarge = errors.New("packed trie exceeds jump cell range")
)

// Container parsing errors.
var (
	// ErrInvalidHeaderSize indicates the data is too short to hold a header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates the header magic number is unknown.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates reserved flag bits are set or the
	// compression tag is unknown.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidChunkCount indicates the chunk count is inconsistent with
	// the key count.
	ErrInvalidChunkCount = errors.New("invalid chunk count")

	// ErrInvalidIndexSection indicates the chunk directory is truncated or
	// inconsistent with the payload.
	ErrInvalidIndexSection = errors.New("invalid chunk directory section")

	// ErrInvalidPayloadSize indicates the payload size does not match the
	// header or is not a whole number of cells.
	ErrInvalidPayloadSize = errors.New("invalid payload size")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header checksum.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)
