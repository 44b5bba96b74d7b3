package section

import (
	"github.com/arloliu/stridx/errs"
	"github.com/arloliu/stridx/format"
)

// IndexFlag is the packed flag field at the start of the container header.
type IndexFlag struct {
	// Options is a packed field for format options.
	// Bit 0 is reserved for future use, must be set to 0.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the container format:
	//   - 0xEC10 (0b1110_1100_0001_0000): string index container v1
	Options uint16

	// Compression indicates the compression applied to the cell payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	Compression uint8

	// Reserved is reserved for future use, must be zero.
	Reserved uint8
}

// NewIndexFlag creates an IndexFlag with default settings: little-endian
// byte order and zstd payload compression.
func NewIndexFlag() IndexFlag {
	flag := IndexFlag{
		Options:     MagicIndexV1Opt,
		Compression: uint8(format.CompressionZstd),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the container data is little-endian.
func (f IndexFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the container data is big-endian.
func (f IndexFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *IndexFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *IndexFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f IndexFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f IndexFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicIndexV1Opt
}

// SetCompression sets the payload compression type.
func (f *IndexFlag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f IndexFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks if the flag field contains valid values.
func (f IndexFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetCompression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
